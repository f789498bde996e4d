package consultation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
	"github.com/dermaconnect/derma-api/pkg/apperror"
	"github.com/dermaconnect/derma-api/pkg/logger"
)

// Event types queued to the outbox on each successful transition.
const (
	EventRequested = "consultation.requested"
	EventAccepted  = "consultation.accepted"
	EventCompleted = "consultation.completed"
	EventReleased  = "consultation.released"
	EventCancelled = "consultation.cancelled"
)

// Service drives the consultation lifecycle:
//
//	pending -> assigned  (doctor accept, availability gated)
//	assigned -> completed (owning doctor)
//	assigned -> pending   (owning doctor release, doctor cleared)
//	pending -> cancelled  (owning patient)
//
// completed and cancelled are terminal. Every guarded transition is one
// conditional write in the store; a stale precondition surfaces as a
// typed error, never as a silent no-op.
type Service struct {
	consultations repository.ConsultationRepository
	patients      repository.PatientRepository
	doctors       repository.DoctorRepository
	events        repository.EventRepository
	outbox        repository.OutboxRepository
	logger        *logger.Logger
}

func NewService(
	consultations repository.ConsultationRepository,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	events repository.EventRepository,
	outbox repository.OutboxRepository,
	logger *logger.Logger,
) *Service {
	return &Service{
		consultations: consultations,
		patients:      patients,
		doctors:       doctors,
		events:        events,
		outbox:        outbox,
		logger:        logger,
	}
}

func (s *Service) Request(ctx context.Context, sess model.Session, req *model.CreateConsultationRequest) (*model.Consultation, error) {
	if sess.Role != model.RolePatient {
		return nil, apperror.Forbidden("only patients can request consultations")
	}
	if !model.ValidSpecialty(req.RequestedSpecialty) {
		return nil, apperror.Validation(fmt.Sprintf("unknown specialty %q", req.RequestedSpecialty))
	}

	if err := s.patients.EnsureProfile(ctx, sess.UserID); err != nil {
		return nil, fmt.Errorf("failed to ensure patient profile: %w", err)
	}

	description := req.Description
	if description == "" {
		description = model.DefaultDescription
	}

	consultation := &model.Consultation{
		PatientID:          sess.UserID,
		Status:             model.ConsultationStatusPending,
		Description:        description,
		Symptoms:           req.Symptoms,
		Duration:           req.Duration,
		RequestedSpecialty: req.RequestedSpecialty,
		Images:             model.ImageList(req.Images),
	}
	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	s.record(ctx, sess, consultation.ID, EventRequested, "", model.ConsultationStatusPending)
	return consultation, nil
}

func (s *Service) Accept(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors can accept consultations")
	}

	profile, err := s.doctors.GetProfile(ctx, sess.UserID)
	if err != nil && err != repository.ErrNotFound {
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	if profile == nil || !profile.IsAvailable {
		return nil, apperror.Forbidden("go online before accepting consultations")
	}

	ok, err := s.consultations.Accept(ctx, id, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept consultation: %w", err)
	}
	if !ok {
		// The conditional update lost: either the row is gone or another
		// doctor got there first.
		if _, err := s.mustGet(ctx, id); err != nil {
			return nil, err
		}
		return nil, apperror.InvalidState("consultation is not pending")
	}

	s.record(ctx, sess, id, EventAccepted, model.ConsultationStatusPending, model.ConsultationStatusAssigned)
	return s.mustGet(ctx, id)
}

func (s *Service) Complete(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors can complete consultations")
	}

	ok, err := s.consultations.Complete(ctx, id, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete consultation: %w", err)
	}
	if !ok {
		return nil, s.classifyOwned(ctx, sess, id)
	}

	s.record(ctx, sess, id, EventCompleted, model.ConsultationStatusAssigned, model.ConsultationStatusCompleted)
	return s.mustGet(ctx, id)
}

func (s *Service) Release(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors can release consultations")
	}

	ok, err := s.consultations.Release(ctx, id, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to release consultation: %w", err)
	}
	if !ok {
		return nil, s.classifyOwned(ctx, sess, id)
	}

	s.record(ctx, sess, id, EventReleased, model.ConsultationStatusAssigned, model.ConsultationStatusPending)
	return s.mustGet(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error) {
	if sess.Role != model.RolePatient {
		return nil, apperror.Forbidden("only patients can cancel consultations")
	}

	ok, err := s.consultations.Cancel(ctx, id, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel consultation: %w", err)
	}
	if !ok {
		consultation, err := s.mustGet(ctx, id)
		if err != nil {
			return nil, err
		}
		if consultation.PatientID != sess.UserID {
			return nil, apperror.Forbidden("consultation belongs to another patient")
		}
		return nil, apperror.InvalidState("consultation is not pending")
	}

	s.record(ctx, sess, id, EventCancelled, model.ConsultationStatusPending, model.ConsultationStatusCancelled)
	return s.mustGet(ctx, id)
}

func (s *Service) UpdateNotes(ctx context.Context, sess model.Session, id uuid.UUID, notes string) (*model.Consultation, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors can update notes")
	}

	ok, err := s.consultations.UpdateNotes(ctx, id, sess.UserID, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to update notes: %w", err)
	}
	if !ok {
		return nil, s.classifyOwned(ctx, sess, id)
	}
	return s.mustGet(ctx, id)
}

func (s *Service) Get(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error) {
	consultation, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Role == model.RolePatient && consultation.PatientID != sess.UserID {
		return nil, apperror.Forbidden("consultation belongs to another patient")
	}
	return consultation, nil
}

// ListForPatient is the patient slice of the read endpoint: own
// consultations, newest first, joined with the assigned doctor.
func (s *Service) ListForPatient(ctx context.Context, sess model.Session) ([]*model.ConsultationWithDoctor, error) {
	consultations, err := s.consultations.ListByPatient(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consultations, nil
}

// ListAll backs the doctor/admin slice of the read endpoint.
func (s *Service) ListAll(ctx context.Context, sess model.Session) ([]*model.ConsultationWithPatient, error) {
	if sess.Role == model.RolePatient {
		return nil, apperror.Forbidden("patients may only list their own consultations")
	}
	consultations, err := s.consultations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consultations, nil
}

// History returns the transition log for one consultation.
func (s *Service) History(ctx context.Context, sess model.Session, id uuid.UUID) ([]*model.ConsultationEvent, error) {
	if _, err := s.Get(ctx, sess, id); err != nil {
		return nil, err
	}
	events, err := s.events.ListByConsultation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultation events: %w", err)
	}
	return events, nil
}

func (s *Service) mustGet(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	consultation, err := s.consultations.Get(ctx, id)
	if err == repository.ErrNotFound {
		return nil, apperror.NotFound("consultation")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}
	return consultation, nil
}

// classifyOwned turns a lost conditional update on a doctor-owned
// operation into the precise failure: missing row, foreign ownership,
// or a status the operation does not apply to.
func (s *Service) classifyOwned(ctx context.Context, sess model.Session, id uuid.UUID) error {
	consultation, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	if consultation.DoctorID == nil || *consultation.DoctorID != sess.UserID {
		return apperror.Forbidden("consultation is not assigned to you")
	}
	return apperror.InvalidState(fmt.Sprintf("consultation is %s", consultation.Status))
}

// record appends the transition to the audit log and queues the outbox
// event. Both are auxiliary to the guarded write: failures are logged,
// not surfaced.
func (s *Service) record(ctx context.Context, sess model.Session, id uuid.UUID, eventType string, from, to model.ConsultationStatus) {
	event := &model.ConsultationEvent{
		ConsultationID: id,
		ActorID:        sess.UserID,
		ActorRole:      sess.Role,
		FromStatus:     from,
		ToStatus:       to,
	}
	if err := s.events.Append(ctx, event); err != nil {
		s.logger.Error(err, "failed to append consultation event", "consultation_id", id.String())
	}

	payload, err := json.Marshal(map[string]interface{}{
		"consultation_id": id,
		"actor_id":        sess.UserID,
		"actor_role":      sess.Role,
		"from_status":     from,
		"to_status":       to,
		"occurred_at":     time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error(err, "failed to marshal outbox payload", "consultation_id", id.String())
		return
	}
	if err := s.outbox.Create(ctx, &model.OutboxEvent{EventType: eventType, Payload: payload}); err != nil {
		s.logger.Error(err, "failed to queue outbox event", "consultation_id", id.String())
	}
}
