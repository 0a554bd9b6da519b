package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/events"
	"github.com/spec-kit/event-budget-service/internal/repository"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("user-%d", r.seq)
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return uniqueViolation()
		}
	}
	if user.ID == "" {
		user.ID = r.nextID()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return uniqueViolation()
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeUnitRepo struct {
	mu    sync.Mutex
	seq   int
	units map[string]*domain.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[string]*domain.Unit)}
}

func (r *fakeUnitRepo) Create(_ context.Context, unit *domain.Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.units {
		if existing.Name == unit.Name {
			return uniqueViolation()
		}
	}
	r.seq++
	if unit.ID == "" {
		unit.ID = fmt.Sprintf("unit-%d", r.seq)
	}
	clone := *unit
	r.units[unit.ID] = &clone
	return nil
}

func (r *fakeUnitRepo) GetByID(_ context.Context, id string) (*domain.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	unit, ok := r.units[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *unit
	return &clone, nil
}

func (r *fakeUnitRepo) List(_ context.Context) ([]domain.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Unit, 0, len(r.units))
	for _, unit := range r.units {
		out = append(out, *unit)
	}
	return out, nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	seq    int
	events map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if event.ID == "" {
		event.ID = fmt.Sprintf("event-%d", r.seq)
	}
	clone := *event
	r.events[event.ID] = &clone
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.events[event.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	clone := *event
	clone.UnitID = stored.UnitID
	r.events[event.ID] = &clone
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *event
	return &clone, nil
}

func (r *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, 0, len(r.events))
	for _, event := range r.events {
		if filter.UnitID != nil {
			if event.UnitID == nil || *event.UnitID != *filter.UnitID {
				continue
			}
		}
		if filter.OwnerID != nil && event.UserID != *filter.OwnerID {
			continue
		}
		out = append(out, *event)
	}
	return out, nil
}

type fakeTransactionRepo struct {
	mu  sync.Mutex
	seq int
	txs map[string]*domain.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[string]*domain.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if tx.ID == "" {
		tx.ID = fmt.Sprintf("tx-%d", r.seq)
	}
	clone := *tx
	r.txs[tx.ID] = &clone
	return nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.txs[tx.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	// Mirror the UPDATE column list: type and event_id stay as created.
	stored.Description = tx.Description
	stored.Amount = tx.Amount
	stored.Status = tx.Status
	stored.Quantity = tx.Quantity
	stored.RequisitionNum = tx.RequisitionNum
	stored.ServiceOrderNum = tx.ServiceOrderNum
	stored.DeliveryDate = tx.DeliveryDate
	stored.RequisitionID = tx.RequisitionID
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.txs, id)
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *tx
	return &clone, nil
}

func (r *fakeTransactionRepo) ListByEvent(_ context.Context, eventID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Transaction{}
	for _, tx := range r.txs {
		if tx.EventID == eventID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListByRequisition(_ context.Context, requisitionID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Transaction{}
	for _, tx := range r.txs {
		if tx.RequisitionID != nil && *tx.RequisitionID == requisitionID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) SumForEvent(_ context.Context, eventID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := 0.0
	for _, tx := range r.txs {
		if tx.EventID == eventID && tx.Status != domain.TransactionStatusRejected {
			sum += tx.Amount * float64(tx.Quantity)
		}
	}
	return sum, nil
}

func (r *fakeTransactionRepo) DetachFromRequisition(_ context.Context, requisitionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range r.txs {
		if tx.RequisitionID != nil && *tx.RequisitionID == requisitionID {
			tx.RequisitionID = nil
		}
	}
	return nil
}

type fakeRequisitionRepo struct {
	mu   sync.Mutex
	seq  int
	reqs map[string]*domain.Requisition
	// failures counts down unique violations to return before accepting.
	failures int
}

func newFakeRequisitionRepo() *fakeRequisitionRepo {
	return &fakeRequisitionRepo{reqs: make(map[string]*domain.Requisition)}
}

func (r *fakeRequisitionRepo) Create(_ context.Context, req *domain.Requisition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures > 0 {
		r.failures--
		return uniqueViolation()
	}
	for _, existing := range r.reqs {
		if existing.Number == req.Number {
			return uniqueViolation()
		}
	}
	r.seq++
	if req.ID == "" {
		req.ID = fmt.Sprintf("req-%d", r.seq)
	}
	clone := *req
	r.reqs[req.ID] = &clone
	return nil
}

func (r *fakeRequisitionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reqs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.reqs, id)
	return nil
}

func (r *fakeRequisitionRepo) GetByID(_ context.Context, id string) (*domain.Requisition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *req
	return &clone, nil
}

func (r *fakeRequisitionRepo) ListByEvent(_ context.Context, eventID string) ([]domain.Requisition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Requisition{}
	for _, req := range r.reqs {
		if req.EventID == eventID {
			out = append(out, *req)
		}
	}
	return out, nil
}

type fakeOperatorRepo struct {
	mu  sync.Mutex
	seq int
	ops map[string]*domain.Operator
}

func newFakeOperatorRepo() *fakeOperatorRepo {
	return &fakeOperatorRepo{ops: make(map[string]*domain.Operator)}
}

func (r *fakeOperatorRepo) Create(_ context.Context, op *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.ops {
		if existing.Name == op.Name {
			return uniqueViolation()
		}
	}
	r.seq++
	if op.ID == "" {
		op.ID = fmt.Sprintf("op-%d", r.seq)
	}
	clone := *op
	r.ops[op.ID] = &clone
	return nil
}

func (r *fakeOperatorRepo) Update(_ context.Context, op *domain.Operator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[op.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *op
	r.ops[op.ID] = &clone
	return nil
}

func (r *fakeOperatorRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.ops, id)
	return nil
}

func (r *fakeOperatorRepo) GetByID(_ context.Context, id string) (*domain.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.ops[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *op
	return &clone, nil
}

func (r *fakeOperatorRepo) List(_ context.Context) ([]domain.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Operator, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, *op)
	}
	return out, nil
}

type fakeServiceRepo struct {
	mu   sync.Mutex
	seq  int
	svcs map[string]*domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{svcs: make(map[string]*domain.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.svcs {
		if existing.Name == svc.Name {
			return uniqueViolation()
		}
	}
	r.seq++
	if svc.ID == "" {
		svc.ID = fmt.Sprintf("svc-%d", r.seq)
	}
	clone := *svc
	r.svcs[svc.ID] = &clone
	return nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.svcs[svc.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *svc
	r.svcs[svc.ID] = &clone
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.svcs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.svcs, id)
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.svcs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *svc
	return &clone, nil
}

func (r *fakeServiceRepo) List(_ context.Context) ([]domain.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Service, 0, len(r.svcs))
	for _, svc := range r.svcs {
		out = append(out, *svc)
	}
	return out, nil
}

type fakeCommunicationRepo struct {
	mu    sync.Mutex
	seq   int
	items map[string]*domain.CommunicationItem
	// catalogs are consulted so GetByID can fill the joined rows.
	services  *fakeServiceRepo
	operators *fakeOperatorRepo
}

func newFakeCommunicationRepo(services *fakeServiceRepo, operators *fakeOperatorRepo) *fakeCommunicationRepo {
	return &fakeCommunicationRepo{
		items:     make(map[string]*domain.CommunicationItem),
		services:  services,
		operators: operators,
	}
}

func (r *fakeCommunicationRepo) Create(_ context.Context, item *domain.CommunicationItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if item.ID == "" {
		item.ID = fmt.Sprintf("comm-%d", r.seq)
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCommunicationRepo) Update(_ context.Context, item *domain.CommunicationItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeCommunicationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCommunicationRepo) GetByID(ctx context.Context, id string) (*domain.CommunicationItem, error) {
	r.mu.Lock()
	item, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return nil, pgx.ErrNoRows
	}
	clone := *item
	r.mu.Unlock()

	if svc, err := r.services.GetByID(ctx, clone.ServiceID); err == nil {
		clone.Service = svc
	}
	if clone.OperatorID != nil {
		if op, err := r.operators.GetByID(ctx, *clone.OperatorID); err == nil {
			clone.Operator = op
		}
	}
	return &clone, nil
}

func (r *fakeCommunicationRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.CommunicationItem, error) {
	r.mu.Lock()
	ids := []string{}
	for id, item := range r.items {
		if item.EventID == eventID {
			ids = append(ids, id)
		}
	}
	r.mu.Unlock()

	out := []domain.CommunicationItem{}
	for _, id := range ids {
		item, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Envelope
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Envelope) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.Type, events.Handler) {}

func (d *recordingDispatcher) byType(t events.Type) []events.Envelope {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := []events.Envelope{}
	for _, e := range d.published {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func masterUser(id string) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleMaster}
}

func unitUser(id, unitID string, role domain.Role) *domain.User {
	return &domain.User{ID: id, Role: role, UnitID: &unitID}
}
