package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dermaconnect/derma-api/internal/model"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	CountByRole(ctx context.Context) (map[model.Role]int, error)
}

type PatientRepository interface {
	// EnsureProfile creates the patient profile if it does not exist yet.
	EnsureProfile(ctx context.Context, userID uuid.UUID) error
}

type DoctorRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error)
	UpsertProfile(ctx context.Context, profile *model.DoctorProfile) error
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error
}

// ConsultationRepository persists the consultation lifecycle. The guarded
// transitions are single conditional UPDATEs: the bool result reports
// whether the precondition still held when the write landed.
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *model.Consultation) error
	Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error)

	Accept(ctx context.Context, id, doctorID uuid.UUID) (bool, error)
	Complete(ctx context.Context, id, doctorID uuid.UUID) (bool, error)
	Release(ctx context.Context, id, doctorID uuid.UUID) (bool, error)
	Cancel(ctx context.Context, id, patientID uuid.UUID) (bool, error)
	UpdateNotes(ctx context.Context, id, doctorID uuid.UUID, notes string) (bool, error)

	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.ConsultationWithDoctor, error)
	ListPending(ctx context.Context) ([]*model.ConsultationWithPatient, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.ConsultationWithPatient, error)
	ListAll(ctx context.Context) ([]*model.ConsultationWithPatient, error)
	ListRecent(ctx context.Context, limit int) ([]*model.ConsultationWithDoctor, error)
	CountByStatus(ctx context.Context) (map[model.ConsultationStatus]int, error)
}

// EventRepository is the append-only consultation transition log.
type EventRepository interface {
	Append(ctx context.Context, event *model.ConsultationEvent) error
	ListByConsultation(ctx context.Context, consultationID uuid.UUID) ([]*model.ConsultationEvent, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMessage string) error
}
