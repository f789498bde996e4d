package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
	"github.com/dermaconnect/derma-api/pkg/apperror"
)

type mockConsultationRepo struct {
	mock.Mock
}

func (m *mockConsultationRepo) Create(ctx context.Context, consultation *model.Consultation) error {
	return m.Called(ctx, consultation).Error(0)
}

func (m *mockConsultationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Consultation, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Consultation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) Accept(ctx context.Context, id, doctorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, doctorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsultationRepo) Complete(ctx context.Context, id, doctorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, doctorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsultationRepo) Release(ctx context.Context, id, doctorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, doctorID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsultationRepo) Cancel(ctx context.Context, id, patientID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsultationRepo) UpdateNotes(ctx context.Context, id, doctorID uuid.UUID, notes string) (bool, error) {
	args := m.Called(ctx, id, doctorID, notes)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsultationRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.ConsultationWithDoctor, error) {
	args := m.Called(ctx, patientID)
	if c := args.Get(0); c != nil {
		return c.([]*model.ConsultationWithDoctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) ListPending(ctx context.Context) ([]*model.ConsultationWithPatient, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*model.ConsultationWithPatient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.ConsultationWithPatient, error) {
	args := m.Called(ctx, doctorID)
	if c := args.Get(0); c != nil {
		return c.([]*model.ConsultationWithPatient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) ListAll(ctx context.Context) ([]*model.ConsultationWithPatient, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*model.ConsultationWithPatient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) ListRecent(ctx context.Context, limit int) ([]*model.ConsultationWithDoctor, error) {
	args := m.Called(ctx, limit)
	if c := args.Get(0); c != nil {
		return c.([]*model.ConsultationWithDoctor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockConsultationRepo) CountByStatus(ctx context.Context) (map[model.ConsultationStatus]int, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(map[model.ConsultationStatus]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDoctorRepo struct {
	mock.Mock
}

func (m *mockDoctorRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*model.DoctorProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDoctorRepo) UpsertProfile(ctx context.Context, profile *model.DoctorProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockDoctorRepo) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	return m.Called(ctx, userID, available).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) CountByRole(ctx context.Context) (map[model.Role]int, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.(map[model.Role]int), args.Error(1)
	}
	return nil, args.Error(1)
}

func newService() (*Service, *mockConsultationRepo, *mockDoctorRepo, *mockUserRepo) {
	consultations := new(mockConsultationRepo)
	doctors := new(mockDoctorRepo)
	users := new(mockUserRepo)
	return NewService(consultations, doctors, users), consultations, doctors, users
}

func TestDoctorViewHidesQueueWhileOffline(t *testing.T) {
	svc, consultations, doctors, _ := newService()
	sess := model.Session{UserID: uuid.New(), Role: model.RoleDoctor}

	doctors.On("GetProfile", mock.Anything, sess.UserID).Return(&model.DoctorProfile{
		UserID:      sess.UserID,
		Specialty:   "Teledermatology",
		IsAvailable: false,
	}, nil)
	consultations.On("ListByDoctor", mock.Anything, sess.UserID).Return([]*model.ConsultationWithPatient{
		{Consultation: model.Consultation{Status: model.ConsultationStatusAssigned}},
	}, nil)

	view, err := svc.DoctorView(context.Background(), sess)

	require.NoError(t, err)
	assert.False(t, view.Available)
	assert.Empty(t, view.Pending)
	assert.Len(t, view.Assigned, 1)
	consultations.AssertNotCalled(t, "ListPending", mock.Anything)
}

func TestDoctorViewShowsQueueWhileOnline(t *testing.T) {
	svc, consultations, doctors, _ := newService()
	sess := model.Session{UserID: uuid.New(), Role: model.RoleDoctor}

	doctors.On("GetProfile", mock.Anything, sess.UserID).Return(&model.DoctorProfile{
		UserID:      sess.UserID,
		Specialty:   "Teledermatology",
		IsAvailable: true,
	}, nil)
	consultations.On("ListPending", mock.Anything).Return([]*model.ConsultationWithPatient{
		{Consultation: model.Consultation{Status: model.ConsultationStatusPending}},
		{Consultation: model.Consultation{Status: model.ConsultationStatusPending}},
	}, nil)
	consultations.On("ListByDoctor", mock.Anything, sess.UserID).Return([]*model.ConsultationWithPatient{}, nil)

	view, err := svc.DoctorView(context.Background(), sess)

	require.NoError(t, err)
	assert.True(t, view.Available)
	assert.Len(t, view.Pending, 2)
}

func TestDoctorViewWithoutProfile(t *testing.T) {
	svc, consultations, doctors, _ := newService()
	sess := model.Session{UserID: uuid.New(), Role: model.RoleDoctor}

	doctors.On("GetProfile", mock.Anything, sess.UserID).Return(nil, repository.ErrNotFound)
	consultations.On("ListByDoctor", mock.Anything, sess.UserID).Return([]*model.ConsultationWithPatient{}, nil)

	view, err := svc.DoctorView(context.Background(), sess)

	require.NoError(t, err)
	assert.False(t, view.Available)
	assert.Empty(t, view.Pending)
}

func TestPatientViewRequiresPatientRole(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.PatientView(context.Background(), model.Session{Role: model.RoleDoctor})

	assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
}

func TestAdminViewAggregatesAndCaches(t *testing.T) {
	svc, consultations, _, users := newService()
	sess := model.Session{UserID: uuid.New(), Role: model.RoleAdmin}

	consultations.On("CountByStatus", mock.Anything).Return(map[model.ConsultationStatus]int{
		model.ConsultationStatusPending:   3,
		model.ConsultationStatusCompleted: 7,
	}, nil).Once()
	users.On("CountByRole", mock.Anything).Return(map[model.Role]int{
		model.RolePatient: 10,
		model.RoleDoctor:  2,
	}, nil).Once()
	consultations.On("ListRecent", mock.Anything, recentLimit).Return([]*model.ConsultationWithDoctor{}, nil).Once()

	first, err := svc.AdminView(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, 3, first.ConsultationsByStatus[model.ConsultationStatusPending])
	assert.Equal(t, 10, first.UsersByRole[model.RolePatient])

	// Second call is served from cache; the Once expectations would fail
	// if the repositories were hit again.
	second, err := svc.AdminView(context.Background(), sess)
	require.NoError(t, err)
	assert.Same(t, first, second)

	consultations.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestAdminViewRequiresAdminRole(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.AdminView(context.Background(), model.Session{Role: model.RoleDoctor})

	assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
}
