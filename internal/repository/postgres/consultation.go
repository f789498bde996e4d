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

const consultationColumns = `
	id, patient_id, doctor_id, status, description, symptoms,
	duration, requested_specialty, notes, images, created_at, updated_at
`

func (r *consultationRepository) Create(ctx context.Context, consultation *model.Consultation) error {
	query := `
		INSERT INTO consultations (
			id, patient_id, status, description, symptoms,
			duration, requested_specialty, notes, images,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	consultation.ID = uuid.New()
	consultation.CreatedAt = time.Now()
	consultation.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		consultation.ID,
		consultation.PatientID,
		consultation.Status,
		consultation.Description,
		consultation.Symptoms,
		consultation.Duration,
		consultation.RequestedSpecialty,
		consultation.Notes,
		consultation.Images,
		consultation.CreatedAt,
		consultation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

func (r *consultationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	query := `
		SELECT ` + consultationColumns + `
		FROM consultations
		WHERE id = $1
	`
	var consultation model.Consultation
	err := r.db.GetContext(ctx, &consultation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	return &consultation, nil
}

// Accept assigns the consultation to the doctor only if it is still
// pending. Two doctors racing the same request cannot both win: the
// status check and the write are one statement.
func (r *consultationRepository) Accept(ctx context.Context, id, doctorID uuid.UUID) (bool, error) {
	query := `
		UPDATE consultations
		SET status = $1, doctor_id = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		model.ConsultationStatusAssigned,
		doctorID,
		time.Now(),
		id,
		model.ConsultationStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to accept consultation: %w", err)
	}
	return affected(result)
}

func (r *consultationRepository) Complete(ctx context.Context, id, doctorID uuid.UUID) (bool, error) {
	query := `
		UPDATE consultations
		SET status = $1, updated_at = $2
		WHERE id = $3 AND doctor_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		model.ConsultationStatusCompleted,
		time.Now(),
		id,
		doctorID,
		model.ConsultationStatusAssigned,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete consultation: %w", err)
	}
	return affected(result)
}

func (r *consultationRepository) Release(ctx context.Context, id, doctorID uuid.UUID) (bool, error) {
	query := `
		UPDATE consultations
		SET status = $1, doctor_id = NULL, updated_at = $2
		WHERE id = $3 AND doctor_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		model.ConsultationStatusPending,
		time.Now(),
		id,
		doctorID,
		model.ConsultationStatusAssigned,
	)
	if err != nil {
		return false, fmt.Errorf("failed to release consultation: %w", err)
	}
	return affected(result)
}

func (r *consultationRepository) Cancel(ctx context.Context, id, patientID uuid.UUID) (bool, error) {
	query := `
		UPDATE consultations
		SET status = $1, updated_at = $2
		WHERE id = $3 AND patient_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		model.ConsultationStatusCancelled,
		time.Now(),
		id,
		patientID,
		model.ConsultationStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cancel consultation: %w", err)
	}
	return affected(result)
}

func (r *consultationRepository) UpdateNotes(ctx context.Context, id, doctorID uuid.UUID, notes string) (bool, error) {
	query := `
		UPDATE consultations
		SET notes = $1, updated_at = $2
		WHERE id = $3 AND doctor_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		notes,
		time.Now(),
		id,
		doctorID,
		model.ConsultationStatusAssigned,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update consultation notes: %w", err)
	}
	return affected(result)
}

func (r *consultationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.ConsultationWithDoctor, error) {
	query := `
		SELECT c.id, c.patient_id, c.doctor_id, c.status, c.description, c.symptoms,
			   c.duration, c.requested_specialty, c.notes, c.images, c.created_at, c.updated_at,
			   u.name AS doctor_name, u.email AS doctor_email, dp.specialty AS doctor_specialty
		FROM consultations c
		LEFT JOIN users u ON u.id = c.doctor_id
		LEFT JOIN doctor_profiles dp ON dp.user_id = c.doctor_id
		WHERE c.patient_id = $1
		ORDER BY c.created_at DESC
	`
	var consultations []*model.ConsultationWithDoctor
	if err := r.db.SelectContext(ctx, &consultations, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list patient consultations: %w", err)
	}
	return consultations, nil
}

// ListPending returns the open queue oldest first, so the earliest
// requester is served first.
func (r *consultationRepository) ListPending(ctx context.Context) ([]*model.ConsultationWithPatient, error) {
	query := `
		SELECT c.id, c.patient_id, c.doctor_id, c.status, c.description, c.symptoms,
			   c.duration, c.requested_specialty, c.notes, c.images, c.created_at, c.updated_at,
			   u.name AS patient_name, u.email AS patient_email
		FROM consultations c
		JOIN users u ON u.id = c.patient_id
		WHERE c.status = $1
		ORDER BY c.created_at ASC
	`
	var consultations []*model.ConsultationWithPatient
	if err := r.db.SelectContext(ctx, &consultations, query, model.ConsultationStatusPending); err != nil {
		return nil, fmt.Errorf("failed to list pending consultations: %w", err)
	}
	return consultations, nil
}

func (r *consultationRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.ConsultationWithPatient, error) {
	query := `
		SELECT c.id, c.patient_id, c.doctor_id, c.status, c.description, c.symptoms,
			   c.duration, c.requested_specialty, c.notes, c.images, c.created_at, c.updated_at,
			   u.name AS patient_name, u.email AS patient_email
		FROM consultations c
		JOIN users u ON u.id = c.patient_id
		WHERE c.doctor_id = $1
		ORDER BY c.created_at DESC
	`
	var consultations []*model.ConsultationWithPatient
	if err := r.db.SelectContext(ctx, &consultations, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list doctor consultations: %w", err)
	}
	return consultations, nil
}

func (r *consultationRepository) ListAll(ctx context.Context) ([]*model.ConsultationWithPatient, error) {
	query := `
		SELECT c.id, c.patient_id, c.doctor_id, c.status, c.description, c.symptoms,
			   c.duration, c.requested_specialty, c.notes, c.images, c.created_at, c.updated_at,
			   u.name AS patient_name, u.email AS patient_email
		FROM consultations c
		JOIN users u ON u.id = c.patient_id
		ORDER BY c.created_at DESC
	`
	var consultations []*model.ConsultationWithPatient
	if err := r.db.SelectContext(ctx, &consultations, query); err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consultations, nil
}

func (r *consultationRepository) ListRecent(ctx context.Context, limit int) ([]*model.ConsultationWithDoctor, error) {
	query := `
		SELECT c.id, c.patient_id, c.doctor_id, c.status, c.description, c.symptoms,
			   c.duration, c.requested_specialty, c.notes, c.images, c.created_at, c.updated_at,
			   u.name AS doctor_name, u.email AS doctor_email, dp.specialty AS doctor_specialty
		FROM consultations c
		LEFT JOIN users u ON u.id = c.doctor_id
		LEFT JOIN doctor_profiles dp ON dp.user_id = c.doctor_id
		ORDER BY c.created_at DESC
		LIMIT $1
	`
	var consultations []*model.ConsultationWithDoctor
	if err := r.db.SelectContext(ctx, &consultations, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent consultations: %w", err)
	}
	return consultations, nil
}

func (r *consultationRepository) CountByStatus(ctx context.Context) (map[model.ConsultationStatus]int, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM consultations
		GROUP BY status
	`
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count consultations: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.ConsultationStatus]int)
	for rows.Next() {
		var status model.ConsultationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}
	return counts, nil
}

func affected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
