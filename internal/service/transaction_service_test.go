package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
)

type transactionFixture struct {
	svc        *TransactionService
	events     *fakeEventRepo
	txs        *fakeTransactionRepo
	reqs       *fakeRequisitionRepo
	dispatcher *recordingDispatcher
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	t.Helper()
	eventRepo := newFakeEventRepo()
	txRepo := newFakeTransactionRepo()
	reqRepo := newFakeRequisitionRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTransactionService(txRepo, eventRepo, reqRepo, dispatcher,
		NewSummaryCache(nil, 0, zap.NewNop()))
	return &transactionFixture{svc: svc, events: eventRepo, txs: txRepo, reqs: reqRepo, dispatcher: dispatcher}
}

func (f *transactionFixture) seedEvent(t *testing.T, actor *domain.User, status domain.EventStatus) *domain.Event {
	t.Helper()
	event := &domain.Event{
		Name:      "Conference",
		StartDate: mustTime(t, "2026-05-01"),
		EndDate:   mustTime(t, "2026-05-02"),
		Status:    status,
		UserID:    actor.ID,
		UnitID:    actor.UnitID,
	}
	require.NoError(t, f.events.Create(context.Background(), event))
	return event
}

func TestTransactionCreateDefaults(t *testing.T) {
	f := newTransactionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor, domain.EventStatusInProgress)

	tx, err := f.svc.Create(context.Background(), actor, TransactionCreateInput{
		EventID:     event.ID,
		Description: "Stage rental",
		Amount:      1500,
		Type:        domain.TransactionTypeExpense,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusQuotation, tx.Status)
	assert.Equal(t, 1, tx.Quantity)
	assert.Len(t, f.dispatcher.byType(events.TypeTransactionRecorded), 1)
}

func TestTransactionCreateObserverDenied(t *testing.T) {
	f := newTransactionFixture(t)
	owner := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, owner, domain.EventStatusInProgress)

	observer := unitUser("obs-1", "unit-1", domain.RoleObserver)
	_, err := f.svc.Create(context.Background(), observer, TransactionCreateInput{
		EventID:     event.ID,
		Description: "Blocked",
		Amount:      10,
		Type:        domain.TransactionTypeExpense,
	})
	requireStatus(t, err, 403)
}

func TestTransactionCreateOnCompletedEventMasterOnly(t *testing.T) {
	f := newTransactionFixture(t)
	manager := unitUser("mgr-1", "unit-1", domain.RoleManager)
	event := f.seedEvent(t, manager, domain.EventStatusCompleted)

	input := TransactionCreateInput{
		EventID:     event.ID,
		Description: "Late invoice",
		Amount:      300,
		Type:        domain.TransactionTypeExpense,
	}
	_, err := f.svc.Create(context.Background(), manager, input)
	requireStatus(t, err, 403)

	_, err = f.svc.Create(context.Background(), masterUser("m-1"), input)
	require.NoError(t, err)
}

func TestTransactionCreateRejectsForeignRequisition(t *testing.T) {
	f := newTransactionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor, domain.EventStatusInProgress)
	otherEvent := f.seedEvent(t, actor, domain.EventStatusInProgress)

	req := &domain.Requisition{Number: 123456, EventID: otherEvent.ID}
	require.NoError(t, f.reqs.Create(context.Background(), req))

	_, err := f.svc.Create(context.Background(), actor, TransactionCreateInput{
		EventID:       event.ID,
		Description:   "Mismatched",
		Amount:        10,
		Type:          domain.TransactionTypeExpense,
		RequisitionID: &req.ID,
	})
	requireStatus(t, err, 400)
}

func TestTransactionUpdatePartial(t *testing.T) {
	f := newTransactionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor, domain.EventStatusInProgress)

	tx, err := f.svc.Create(context.Background(), actor, TransactionCreateInput{
		EventID:     event.ID,
		Description: "Catering",
		Amount:      200,
		Type:        domain.TransactionTypeExpense,
		Quantity:    intPtr(3),
	})
	require.NoError(t, err)

	approved := domain.TransactionStatusApproved
	updated, err := f.svc.Update(context.Background(), actor, tx.ID, TransactionUpdateInput{
		Status: &approved,
		Amount: floatPtr(250),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusApproved, updated.Status)
	assert.Equal(t, 250.0, updated.Amount)
	assert.Equal(t, "Catering", updated.Description)
	assert.Equal(t, 3, updated.Quantity)
}

func TestTransactionUpdateReassignsRequisition(t *testing.T) {
	f := newTransactionFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event := f.seedEvent(t, actor, domain.EventStatusInProgress)

	req := &domain.Requisition{Number: 654321, EventID: event.ID}
	require.NoError(t, f.reqs.Create(context.Background(), req))

	tx, err := f.svc.Create(context.Background(), actor, TransactionCreateInput{
		EventID:     event.ID,
		Description: "Sound system",
		Amount:      800,
		Type:        domain.TransactionTypeExpense,
	})
	require.NoError(t, err)
	require.Nil(t, tx.RequisitionID)

	updated, err := f.svc.Update(context.Background(), actor, tx.ID, TransactionUpdateInput{
		RequisitionID: &req.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RequisitionID)
	assert.Equal(t, req.ID, *updated.RequisitionID)

	// The reassignment must survive a fresh read, not just the returned copy.
	stored, err := f.txs.GetByID(context.Background(), tx.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RequisitionID)
	assert.Equal(t, req.ID, *stored.RequisitionID)
	assert.Equal(t, "Sound system", stored.Description)
}

func TestTransactionDeleteCrossUnitDenied(t *testing.T) {
	f := newTransactionFixture(t)
	owner := unitUser("a-1", "unit-a", domain.RoleStandard)
	event := f.seedEvent(t, owner, domain.EventStatusInProgress)

	tx, err := f.svc.Create(context.Background(), owner, TransactionCreateInput{
		EventID:     event.ID,
		Description: "Flyers",
		Amount:      50,
		Type:        domain.TransactionTypeExpense,
	})
	require.NoError(t, err)

	outsider := unitUser("b-1", "unit-b", domain.RoleStandard)
	err = f.svc.Delete(context.Background(), outsider, tx.ID)
	requireStatus(t, err, 403)

	require.NoError(t, f.svc.Delete(context.Background(), owner, tx.ID))
}
