package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dermaconnect/derma-api/internal/model"
)

func (r *eventRepository) Append(ctx context.Context, event *model.ConsultationEvent) error {
	query := `
		INSERT INTO consultation_events (
			id, consultation_id, actor_id, actor_role,
			from_status, to_status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	event.ID = uuid.New()
	event.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.ConsultationID,
		event.ActorID,
		event.ActorRole,
		event.FromStatus,
		event.ToStatus,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append consultation event: %w", err)
	}
	return nil
}

func (r *eventRepository) ListByConsultation(ctx context.Context, consultationID uuid.UUID) ([]*model.ConsultationEvent, error) {
	query := `
		SELECT id, consultation_id, actor_id, actor_role,
			   from_status, to_status, created_at
		FROM consultation_events
		WHERE consultation_id = $1
		ORDER BY created_at ASC
	`
	var events []*model.ConsultationEvent
	if err := r.db.SelectContext(ctx, &events, query, consultationID); err != nil {
		return nil, fmt.Errorf("failed to list consultation events: %w", err)
	}
	return events, nil
}
