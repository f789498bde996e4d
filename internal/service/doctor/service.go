package doctor

import (
	"context"
	"fmt"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
	"github.com/dermaconnect/derma-api/pkg/apperror"
)

// Service manages doctor profiles and the availability flag.
type Service struct {
	doctors repository.DoctorRepository
}

func NewService(doctors repository.DoctorRepository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) GetProfile(ctx context.Context, sess model.Session) (*model.DoctorProfile, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors have a doctor profile")
	}
	profile, err := s.doctors.GetProfile(ctx, sess.UserID)
	if err == repository.ErrNotFound {
		return nil, apperror.NotFound("doctor profile")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile creates the profile on first write and updates it after,
// keyed by the doctor's user id.
func (s *Service) UpsertProfile(ctx context.Context, sess model.Session, req *model.UpsertDoctorProfileRequest) (*model.DoctorProfile, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors can update a doctor profile")
	}
	if !model.ValidSpecialty(req.Specialty) {
		return nil, apperror.Validation(fmt.Sprintf("unknown specialty %q", req.Specialty))
	}

	profile := &model.DoctorProfile{
		UserID:    sess.UserID,
		Bio:       req.Bio,
		Specialty: req.Specialty,
	}
	if err := s.doctors.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to upsert doctor profile: %w", err)
	}

	updated, err := s.doctors.GetProfile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload doctor profile: %w", err)
	}
	return updated, nil
}

// SetAvailability flips the flag. Going online requires a specialty on
// the profile; going offline never touches assigned consultations, it
// only hides the pending queue and blocks new accepts.
func (s *Service) SetAvailability(ctx context.Context, sess model.Session, desired string) (*model.DoctorProfile, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("only doctors can set availability")
	}

	var available bool
	switch desired {
	case model.AvailabilityOnline:
		available = true
	case model.AvailabilityOffline:
		available = false
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown availability %q", desired))
	}

	if available {
		profile, err := s.doctors.GetProfile(ctx, sess.UserID)
		if err != nil && err != repository.ErrNotFound {
			return nil, fmt.Errorf("failed to get doctor profile: %w", err)
		}
		if profile == nil || profile.Specialty == "" {
			return nil, apperror.Validation("set your specialty before going online")
		}
	}

	if err := s.doctors.SetAvailability(ctx, sess.UserID, available); err != nil {
		return nil, fmt.Errorf("failed to set availability: %w", err)
	}

	updated, err := s.doctors.GetProfile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload doctor profile: %w", err)
	}
	return updated, nil
}
