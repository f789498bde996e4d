package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
)

func (r *doctorRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error) {
	query := `
		SELECT user_id, bio, specialty, is_available, created_at, updated_at
		FROM doctor_profiles
		WHERE user_id = $1
	`
	var profile model.DoctorProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	return &profile, nil
}

func (r *doctorRepository) UpsertProfile(ctx context.Context, profile *model.DoctorProfile) error {
	query := `
		INSERT INTO doctor_profiles (user_id, bio, specialty, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET bio = $2, specialty = $3, updated_at = $4
	`
	now := time.Now()
	profile.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		profile.UserID,
		profile.Bio,
		profile.Specialty,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert doctor profile: %w", err)
	}
	return nil
}

func (r *doctorRepository) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	query := `
		INSERT INTO doctor_profiles (user_id, bio, specialty, is_available, created_at, updated_at)
		VALUES ($1, '', '', $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET is_available = $2, updated_at = $3
	`
	_, err := r.db.ExecContext(ctx, query, userID, available, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set doctor availability: %w", err)
	}
	return nil
}
