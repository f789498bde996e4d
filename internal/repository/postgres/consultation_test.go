package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestConsultationAcceptWinsRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	id := uuid.New()
	doctorID := uuid.New()

	mock.ExpectExec("UPDATE consultations").
		WithArgs(model.ConsultationStatusAssigned, doctorID, sqlmock.AnyArg(), id, model.ConsultationStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Accept(context.Background(), id, doctorID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationAcceptLosesRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	id := uuid.New()
	doctorID := uuid.New()

	// Another doctor already flipped the row out of pending; the guarded
	// update touches nothing.
	mock.ExpectExec("UPDATE consultations").
		WithArgs(model.ConsultationStatusAssigned, doctorID, sqlmock.AnyArg(), id, model.ConsultationStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Accept(context.Background(), id, doctorID)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConsultationCancelGuardsOwnerAndStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	id := uuid.New()
	patientID := uuid.New()

	mock.ExpectExec("UPDATE consultations").
		WithArgs(model.ConsultationStatusCancelled, sqlmock.AnyArg(), id, patientID, model.ConsultationStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Cancel(context.Background(), id, patientID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationReleaseClearsDoctor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	id := uuid.New()
	doctorID := uuid.New()

	mock.ExpectExec(`UPDATE consultations\s+SET status = \$1, doctor_id = NULL`).
		WithArgs(model.ConsultationStatusPending, sqlmock.AnyArg(), id, doctorID, model.ConsultationStatusAssigned).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Release(context.Background(), id, doctorID)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM consultations").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), id)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConsultationGetScansImages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	id := uuid.New()
	patientID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "patient_id", "doctor_id", "status", "description", "symptoms",
		"duration", "requested_specialty", "notes", "images", "created_at", "updated_at",
	}).AddRow(
		id, patientID, nil, "pending", "itchy rash", "redness",
		"2 weeks", "", "", `["http://img.example/1.png"]`, now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM consultations").WithArgs(id).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, model.ConsultationStatusPending, got.Status)
	assert.Equal(t, model.ImageList{"http://img.example/1.png"}, got.Images)
	assert.Nil(t, got.DoctorID)
}

func TestConsultationCreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	mock.ExpectExec("INSERT INTO consultations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	consultation := &model.Consultation{
		PatientID:   uuid.New(),
		Status:      model.ConsultationStatusPending,
		Description: model.DefaultDescription,
	}
	err := repo.Create(context.Background(), consultation)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, consultation.ID)
	assert.False(t, consultation.CreatedAt.IsZero())
}

func TestCountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationRepository(db)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("pending", 4).
		AddRow("completed", 9)
	mock.ExpectQuery("SELECT status, COUNT").WillReturnRows(rows)

	counts, err := repo.CountByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, counts[model.ConsultationStatusPending])
	assert.Equal(t, 9, counts[model.ConsultationStatusCompleted])
}
