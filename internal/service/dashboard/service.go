package dashboard

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
	"github.com/dermaconnect/derma-api/pkg/apperror"
)

const (
	adminStatsKey = "admin_stats"
	adminStatsTTL = 30 * time.Second
	recentLimit   = 20
)

// Service assembles the role-scoped read views. Pure projections of the
// store; nothing here mutates.
type Service struct {
	consultations repository.ConsultationRepository
	doctors       repository.DoctorRepository
	users         repository.UserRepository
	cache         *gocache.Cache
}

func NewService(
	consultations repository.ConsultationRepository,
	doctors repository.DoctorRepository,
	users repository.UserRepository,
) *Service {
	return &Service{
		consultations: consultations,
		doctors:       doctors,
		users:         users,
		cache:         gocache.New(adminStatsTTL, 2*adminStatsTTL),
	}
}

// PatientView lists the caller's consultations newest first, each joined
// with the assigned doctor and specialty.
func (s *Service) PatientView(ctx context.Context, sess model.Session) ([]*model.ConsultationWithDoctor, error) {
	if sess.Role != model.RolePatient {
		return nil, apperror.Forbidden("patient dashboard requires the patient role")
	}
	consultations, err := s.consultations.ListByPatient(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient view: %w", err)
	}
	return consultations, nil
}

// DoctorView returns the pending queue (oldest first, hidden while the
// caller is offline) plus everything assigned to the caller.
func (s *Service) DoctorView(ctx context.Context, sess model.Session) (*model.DoctorDashboard, error) {
	if sess.Role != model.RoleDoctor {
		return nil, apperror.Forbidden("doctor dashboard requires the doctor role")
	}

	profile, err := s.doctors.GetProfile(ctx, sess.UserID)
	if err != nil && err != repository.ErrNotFound {
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	available := profile != nil && profile.IsAvailable

	view := &model.DoctorDashboard{
		Available: available,
		Pending:   []*model.ConsultationWithPatient{},
	}

	if available {
		pending, err := s.consultations.ListPending(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load pending queue: %w", err)
		}
		view.Pending = pending
	}

	assigned, err := s.consultations.ListByDoctor(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned consultations: %w", err)
	}
	view.Assigned = assigned

	return view, nil
}

// AdminView aggregates store-wide counts and the most recent
// consultations. The result is cached briefly; the admin dashboard
// tolerates slightly stale numbers.
func (s *Service) AdminView(ctx context.Context, sess model.Session) (*model.AdminStats, error) {
	if sess.Role != model.RoleAdmin {
		return nil, apperror.Forbidden("admin dashboard requires the admin role")
	}

	if cached, ok := s.cache.Get(adminStatsKey); ok {
		return cached.(*model.AdminStats), nil
	}

	byStatus, err := s.consultations.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count consultations: %w", err)
	}
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	recent, err := s.consultations.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent consultations: %w", err)
	}

	stats := &model.AdminStats{
		ConsultationsByStatus: byStatus,
		UsersByRole:           byRole,
		Recent:                recent,
	}
	s.cache.Set(adminStatsKey, stats, gocache.DefaultExpiration)
	return stats, nil
}
