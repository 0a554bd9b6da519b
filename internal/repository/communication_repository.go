package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// CommunicationRepository manages communication items. Reads eagerly join
// the service and operator catalog rows for display.
type CommunicationRepository interface {
	Create(ctx context.Context, item *domain.CommunicationItem) error
	Update(ctx context.Context, item *domain.CommunicationItem) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.CommunicationItem, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.CommunicationItem, error)
}

type communicationRepository struct {
	pool *pgxpool.Pool
}

// NewCommunicationRepository builds the repository.
func NewCommunicationRepository(pool *pgxpool.Pool) CommunicationRepository {
	return &communicationRepository{pool: pool}
}

const communicationSelect = `
        SELECT ci.id, ci.event_id, ci.service_id, ci.operator_id, ci.delivery_date,
               ci.quantity, ci.status, ci.created_at,
               s.id, s.name, s.description, s.created_at, s.updated_at,
               o.id, o.name, o.created_at, o.updated_at
        FROM communication_items ci
        JOIN services s ON s.id = ci.service_id
        LEFT JOIN operators o ON o.id = ci.operator_id`

func (r *communicationRepository) Create(ctx context.Context, item *domain.CommunicationItem) error {
	const query = `
        INSERT INTO communication_items (event_id, service_id, operator_id, delivery_date, quantity, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		item.EventID,
		item.ServiceID,
		item.OperatorID,
		item.DeliveryDate,
		item.Quantity,
		item.Status,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *communicationRepository) Update(ctx context.Context, item *domain.CommunicationItem) error {
	// event_id is fixed at creation, mirroring the event unit rule.
	const query = `
        UPDATE communication_items SET service_id=$1, operator_id=$2, delivery_date=$3,
            quantity=$4, status=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		item.ServiceID,
		item.OperatorID,
		item.DeliveryDate,
		item.Quantity,
		item.Status,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *communicationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM communication_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *communicationRepository) GetByID(ctx context.Context, id string) (*domain.CommunicationItem, error) {
	query := communicationSelect + ` WHERE ci.id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	item, err := scanCommunicationItem(row)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *communicationRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.CommunicationItem, error) {
	query := communicationSelect + ` WHERE ci.event_id=$1 ORDER BY ci.delivery_date DESC`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CommunicationItem
	for rows.Next() {
		item, err := scanCommunicationItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return result, rows.Err()
}

func scanCommunicationItem(row pgx.Row) (*domain.CommunicationItem, error) {
	var (
		item        domain.CommunicationItem
		svc         domain.Service
		opID        *string
		opName      *string
		opCreatedAt *time.Time
		opUpdatedAt *time.Time
	)
	if err := row.Scan(
		&item.ID,
		&item.EventID,
		&item.ServiceID,
		&item.OperatorID,
		&item.DeliveryDate,
		&item.Quantity,
		&item.Status,
		&item.CreatedAt,
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.CreatedAt,
		&svc.UpdatedAt,
		&opID,
		&opName,
		&opCreatedAt,
		&opUpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Service = &svc
	if opID != nil && opName != nil {
		op := domain.Operator{ID: *opID, Name: *opName}
		if opCreatedAt != nil {
			op.CreatedAt = *opCreatedAt
		}
		if opUpdatedAt != nil {
			op.UpdatedAt = *opUpdatedAt
		}
		item.Operator = &op
	}
	return &item, nil
}
