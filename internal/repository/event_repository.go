package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-budget-service/internal/domain"
)

// EventFilter narrows event listings to the actor's visibility scope.
type EventFilter struct {
	UnitID  *string
	OwnerID *string
}

// EventRepository encapsulates event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

const eventColumns = `id, name, event_code, start_date, end_date, location, description, budget,
               status, cancellation_reason, user_id, unit_id, project, action,
               responsible_unit, responsible_email, responsible_phone, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (name, event_code, start_date, end_date, location, description, budget,
                            status, user_id, unit_id, project, action,
                            responsible_unit, responsible_email, responsible_phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		event.Name,
		event.EventCode,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Description,
		event.Budget,
		event.Status,
		event.UserID,
		event.UnitID,
		event.Project,
		event.Action,
		event.ResponsibleUnit,
		event.ResponsibleEmail,
		event.ResponsiblePhone,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	// unit_id is intentionally absent: an event's unit is fixed at creation.
	const query = `
        UPDATE events SET name=$1, event_code=$2, start_date=$3, end_date=$4, location=$5,
            description=$6, budget=$7, status=$8, cancellation_reason=$9, project=$10,
            action=$11, responsible_unit=$12, responsible_email=$13, responsible_phone=$14,
            updated_at=NOW()
        WHERE id=$15`
	cmd, err := r.pool.Exec(ctx, query,
		event.Name,
		event.EventCode,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Description,
		event.Budget,
		event.Status,
		event.CancellationReason,
		event.Project,
		event.Action,
		event.ResponsibleUnit,
		event.ResponsibleEmail,
		event.ResponsiblePhone,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id=$1`, eventColumns)
	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(eventFields(&event)...); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]domain.Event, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.UnitID != nil {
		args = append(args, *filter.UnitID)
		clauses = append(clauses, fmt.Sprintf("unit_id=$%d", len(args)))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM events WHERE %s ORDER BY start_date ASC`,
		eventColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(eventFields(&event)...); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

func eventFields(event *domain.Event) []any {
	return []any{
		&event.ID,
		&event.Name,
		&event.EventCode,
		&event.StartDate,
		&event.EndDate,
		&event.Location,
		&event.Description,
		&event.Budget,
		&event.Status,
		&event.CancellationReason,
		&event.UserID,
		&event.UnitID,
		&event.Project,
		&event.Action,
		&event.ResponsibleUnit,
		&event.ResponsibleEmail,
		&event.ResponsiblePhone,
		&event.CreatedAt,
		&event.UpdatedAt,
	}
}
