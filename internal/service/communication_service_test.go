package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
)

type communicationFixture struct {
	svc        *CommunicationService
	events     *fakeEventRepo
	services   *fakeServiceRepo
	operators  *fakeOperatorRepo
	dispatcher *recordingDispatcher
}

func newCommunicationFixture(t *testing.T) *communicationFixture {
	t.Helper()
	eventRepo := newFakeEventRepo()
	svcRepo := newFakeServiceRepo()
	opRepo := newFakeOperatorRepo()
	itemRepo := newFakeCommunicationRepo(svcRepo, opRepo)
	dispatcher := &recordingDispatcher{}
	svc := NewCommunicationService(itemRepo, eventRepo, svcRepo, opRepo, dispatcher)
	return &communicationFixture{svc: svc, events: eventRepo, services: svcRepo, operators: opRepo, dispatcher: dispatcher}
}

func (f *communicationFixture) seed(t *testing.T, actor *domain.User) (*domain.Event, *domain.Service, *domain.Operator) {
	t.Helper()
	event := &domain.Event{
		Name:      "Expo",
		StartDate: mustTime(t, "2026-07-01"),
		EndDate:   mustTime(t, "2026-07-03"),
		Status:    domain.EventStatusInProgress,
		UserID:    actor.ID,
		UnitID:    actor.UnitID,
	}
	require.NoError(t, f.events.Create(context.Background(), event))

	svc := &domain.Service{Name: "Banner design"}
	require.NoError(t, f.services.Create(context.Background(), svc))
	op := &domain.Operator{Name: "Studio X"}
	require.NoError(t, f.operators.Create(context.Background(), op))
	return event, svc, op
}

func TestCommunicationCreateLoadsJoins(t *testing.T) {
	f := newCommunicationFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event, svc, _ := f.seed(t, actor)

	item, err := f.svc.Create(context.Background(), actor, CommunicationCreateInput{
		EventID:      event.ID,
		ServiceID:    svc.ID,
		DeliveryDate: mustTime(t, "2026-06-20"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CommunicationStatusAguardando, item.Status)
	assert.Equal(t, 1, item.Quantity)
	require.NotNil(t, item.Service)
	assert.Equal(t, "Banner design", item.Service.Name)
	assert.Nil(t, item.Operator)
	assert.Len(t, f.dispatcher.byType(events.TypeCommunicationRequested), 1)
}

func TestCommunicationMasterMustAssignOperator(t *testing.T) {
	f := newCommunicationFixture(t)
	master := masterUser("m-1")
	event, svc, op := f.seed(t, master)

	_, err := f.svc.Create(context.Background(), master, CommunicationCreateInput{
		EventID:      event.ID,
		ServiceID:    svc.ID,
		DeliveryDate: mustTime(t, "2026-06-20"),
	})
	requireStatus(t, err, 400)

	item, err := f.svc.Create(context.Background(), master, CommunicationCreateInput{
		EventID:      event.ID,
		ServiceID:    svc.ID,
		OperatorID:   &op.ID,
		DeliveryDate: mustTime(t, "2026-06-20"),
	})
	require.NoError(t, err)
	require.NotNil(t, item.Operator)
	assert.Equal(t, "Studio X", item.Operator.Name)
}

func TestCommunicationCreateUnknownService(t *testing.T) {
	f := newCommunicationFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event, _, _ := f.seed(t, actor)

	_, err := f.svc.Create(context.Background(), actor, CommunicationCreateInput{
		EventID:      event.ID,
		ServiceID:    "missing",
		DeliveryDate: mustTime(t, "2026-06-20"),
	})
	requireStatus(t, err, 400)
}

func TestCommunicationUpdateStatus(t *testing.T) {
	f := newCommunicationFixture(t)
	actor := unitUser("std-1", "unit-1", domain.RoleStandard)
	event, svc, op := f.seed(t, actor)

	item, err := f.svc.Create(context.Background(), actor, CommunicationCreateInput{
		EventID:      event.ID,
		ServiceID:    svc.ID,
		DeliveryDate: mustTime(t, "2026-06-20"),
	})
	require.NoError(t, err)

	approved := domain.CommunicationStatusAprovado
	updated, err := f.svc.Update(context.Background(), actor, item.ID, CommunicationUpdateInput{
		Status:     &approved,
		OperatorID: &op.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CommunicationStatusAprovado, updated.Status)
	require.NotNil(t, updated.Operator)
	assert.Equal(t, "Studio X", updated.Operator.Name)
}

func TestCommunicationObserverDenied(t *testing.T) {
	f := newCommunicationFixture(t)
	owner := unitUser("std-1", "unit-1", domain.RoleStandard)
	event, svc, _ := f.seed(t, owner)

	observer := unitUser("obs-1", "unit-1", domain.RoleObserver)
	_, err := f.svc.Create(context.Background(), observer, CommunicationCreateInput{
		EventID:      event.ID,
		ServiceID:    svc.ID,
		DeliveryDate: mustTime(t, "2026-06-20"),
	})
	requireStatus(t, err, 403)

	items, err := f.svc.ListByEvent(context.Background(), observer, event.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
