package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
)

type requisitionFixture struct {
	svc        *RequisitionService
	events     *fakeEventRepo
	txs        *fakeTransactionRepo
	reqs       *fakeRequisitionRepo
	dispatcher *recordingDispatcher
}

func newRequisitionFixture(t *testing.T) *requisitionFixture {
	t.Helper()
	eventRepo := newFakeEventRepo()
	txRepo := newFakeTransactionRepo()
	reqRepo := newFakeRequisitionRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewRequisitionService(reqRepo, txRepo, eventRepo, dispatcher)
	return &requisitionFixture{svc: svc, events: eventRepo, txs: txRepo, reqs: reqRepo, dispatcher: dispatcher}
}

func (f *requisitionFixture) seedEvent(t *testing.T, actor *domain.User) *domain.Event {
	t.Helper()
	event := &domain.Event{
		Name:      "Festival",
		StartDate: mustTime(t, "2026-06-01"),
		EndDate:   mustTime(t, "2026-06-05"),
		Status:    domain.EventStatusInProgress,
		UserID:    actor.ID,
		UnitID:    actor.UnitID,
	}
	require.NoError(t, f.events.Create(context.Background(), event))
	return event
}

func TestRequisitionCreateAssignsNumberInRange(t *testing.T) {
	f := newRequisitionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor)

	req, err := f.svc.Create(context.Background(), actor, event.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, req.Number, domain.RequisitionNumberMin)
	assert.LessOrEqual(t, req.Number, domain.RequisitionNumberMax)
	assert.Len(t, f.dispatcher.byType(events.TypeRequisitionOpened), 1)
}

func TestRequisitionCreateRetriesOnCollision(t *testing.T) {
	f := newRequisitionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor)

	f.reqs.failures = 3
	req, err := f.svc.Create(context.Background(), actor, event.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
}

func TestRequisitionCreateGivesUpAfterMaxAttempts(t *testing.T) {
	f := newRequisitionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor)

	f.reqs.failures = requisitionNumberAttempts
	_, err := f.svc.Create(context.Background(), actor, event.ID)
	requireStatus(t, err, 409)
}

func TestRequisitionCreateObserverDenied(t *testing.T) {
	f := newRequisitionFixture(t)
	owner := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, owner)

	observer := unitUser("obs-1", "unit-1", domain.RoleObserver)
	_, err := f.svc.Create(context.Background(), observer, event.ID)
	requireStatus(t, err, 403)
}

func TestRequisitionDeleteDetachesTransactions(t *testing.T) {
	f := newRequisitionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor)

	req, err := f.svc.Create(context.Background(), actor, event.ID)
	require.NoError(t, err)

	tx := &domain.Transaction{
		Description:   "Lighting",
		Amount:        800,
		Type:          domain.TransactionTypeExpense,
		Status:        domain.TransactionStatusApproved,
		Quantity:      2,
		EventID:       event.ID,
		RequisitionID: &req.ID,
	}
	require.NoError(t, f.txs.Create(context.Background(), tx))

	require.NoError(t, f.svc.Delete(context.Background(), actor, req.ID))

	survivor, err := f.txs.GetByID(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.RequisitionID)

	// Spend is unchanged: the transaction still belongs to the event.
	spend, err := f.txs.SumForEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1600.0, spend)
}

func TestRequisitionGetIncludesTransactions(t *testing.T) {
	f := newRequisitionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor)

	req, err := f.svc.Create(context.Background(), actor, event.ID)
	require.NoError(t, err)

	require.NoError(t, f.txs.Create(context.Background(), &domain.Transaction{
		Description:   "Sound",
		Amount:        400,
		Type:          domain.TransactionTypeExpense,
		Status:        domain.TransactionStatusApproved,
		Quantity:      1,
		EventID:       event.ID,
		RequisitionID: &req.ID,
	}))

	loaded, err := f.svc.Get(context.Background(), actor, req.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, 400.0, loaded.Total())
}
