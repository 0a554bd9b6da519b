package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// TransactionRepository encapsulates transaction persistence and the
// single spend formula used by every view: SUM(amount * quantity) over
// non-REJECTED rows.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Transaction, error)
	ListByRequisition(ctx context.Context, requisitionID string) ([]domain.Transaction, error)
	SumForEvent(ctx context.Context, eventID string) (float64, error)
	DetachFromRequisition(ctx context.Context, requisitionID string) error
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository instantiates repository.
func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

const transactionColumns = `id, description, amount, type, status, quantity, requisition_num,
               service_order_num, delivery_date, event_id, requisition_id, created_at, updated_at`

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	const query = `
        INSERT INTO transactions (description, amount, type, status, quantity, requisition_num,
                                  service_order_num, delivery_date, event_id, requisition_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		tx.Description,
		tx.Amount,
		tx.Type,
		tx.Status,
		tx.Quantity,
		tx.RequisitionNum,
		tx.ServiceOrderNum,
		tx.DeliveryDate,
		tx.EventID,
		tx.RequisitionID,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	// type and event_id are fixed at creation; requisition_id is writable so
	// a transaction can be reassigned between requisitions.
	const query = `
        UPDATE transactions SET description=$1, amount=$2, status=$3, quantity=$4,
            requisition_num=$5, service_order_num=$6, delivery_date=$7, requisition_id=$8,
            updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		tx.Description,
		tx.Amount,
		tx.Status,
		tx.Quantity,
		tx.RequisitionNum,
		tx.ServiceOrderNum,
		tx.DeliveryDate,
		tx.RequisitionID,
		tx.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id=$1`, transactionColumns)
	var tx domain.Transaction
	if err := r.pool.QueryRow(ctx, query, id).Scan(transactionFields(&tx)...); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE event_id=$1 ORDER BY created_at ASC`, transactionColumns)
	return r.list(ctx, query, eventID)
}

func (r *transactionRepository) ListByRequisition(ctx context.Context, requisitionID string) ([]domain.Transaction, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM transactions WHERE requisition_id=$1 ORDER BY created_at ASC`, transactionColumns)
	return r.list(ctx, query, requisitionID)
}

func (r *transactionRepository) list(ctx context.Context, query string, arg any) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(transactionFields(&tx)...); err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

func (r *transactionRepository) SumForEvent(ctx context.Context, eventID string) (float64, error) {
	const query = `
        SELECT COALESCE(SUM(amount * quantity), 0)
        FROM transactions WHERE event_id=$1 AND status <> $2`
	var sum float64
	err := r.pool.QueryRow(ctx, query, eventID, domain.TransactionStatusRejected).Scan(&sum)
	return sum, err
}

func (r *transactionRepository) DetachFromRequisition(ctx context.Context, requisitionID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE transactions SET requisition_id=NULL, updated_at=NOW() WHERE requisition_id=$1`,
		requisitionID)
	return err
}

func transactionFields(tx *domain.Transaction) []any {
	return []any{
		&tx.ID,
		&tx.Description,
		&tx.Amount,
		&tx.Type,
		&tx.Status,
		&tx.Quantity,
		&tx.RequisitionNum,
		&tx.ServiceOrderNum,
		&tx.DeliveryDate,
		&tx.EventID,
		&tx.RequisitionID,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	}
}
