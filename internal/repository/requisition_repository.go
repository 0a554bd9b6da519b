package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// RequisitionRepository encapsulates requisition persistence. Number
// uniqueness is guaranteed by a global unique constraint; Create surfaces
// the violation so the caller can retry with a fresh number.
type RequisitionRepository interface {
	Create(ctx context.Context, req *domain.Requisition) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Requisition, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Requisition, error)
}

type requisitionRepository struct {
	pool *pgxpool.Pool
}

// NewRequisitionRepository instantiates repository.
func NewRequisitionRepository(pool *pgxpool.Pool) RequisitionRepository {
	return &requisitionRepository{pool: pool}
}

func (r *requisitionRepository) Create(ctx context.Context, req *domain.Requisition) error {
	const query = `
        INSERT INTO requisitions (number, event_id)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		req.Number,
		req.EventID,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *requisitionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM requisitions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *requisitionRepository) GetByID(ctx context.Context, id string) (*domain.Requisition, error) {
	const query = `
        SELECT id, number, event_id, created_at, updated_at
        FROM requisitions WHERE id=$1`
	var req domain.Requisition
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.Number,
		&req.EventID,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requisitionRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Requisition, error) {
	const query = `
        SELECT id, number, event_id, created_at, updated_at
        FROM requisitions WHERE event_id=$1 ORDER BY number DESC`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Requisition
	for rows.Next() {
		var req domain.Requisition
		if err := rows.Scan(&req.ID, &req.Number, &req.EventID, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}
