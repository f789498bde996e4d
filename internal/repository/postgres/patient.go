package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (r *patientRepository) EnsureProfile(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO patient_profiles (user_id, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to ensure patient profile: %w", err)
	}
	return nil
}
