package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusAssigned  ConsultationStatus = "assigned"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s ConsultationStatus) Terminal() bool {
	return s == ConsultationStatusCompleted || s == ConsultationStatusCancelled
}

// DefaultDescription is stored when a request carries no description.
const DefaultDescription = "New consultation request"

// ImageList is an ordered list of image URLs persisted as a JSON-encoded
// array in a text column. An empty list is stored as NULL, not "[]".
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to encode image list: %w", err)
	}
	return string(b), nil
}

func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported image list source type %T", src)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}

	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return fmt.Errorf("failed to decode image list: %w", err)
	}
	*l = urls
	return nil
}

// Consultation is a patient's care request tracked through the
// pending/assigned/completed/cancelled lifecycle.
type Consultation struct {
	Base
	PatientID          uuid.UUID          `json:"patient_id" db:"patient_id"`
	DoctorID           *uuid.UUID         `json:"doctor_id,omitempty" db:"doctor_id"`
	Status             ConsultationStatus `json:"status" db:"status"`
	Description        string             `json:"description" db:"description"`
	Symptoms           string             `json:"symptoms" db:"symptoms"`
	Duration           string             `json:"duration" db:"duration"`
	RequestedSpecialty string             `json:"requested_specialty" db:"requested_specialty"`
	Notes              string             `json:"notes" db:"notes"`
	Images             ImageList          `json:"images" db:"images"`
}

// ConsultationWithDoctor joins a consultation with its assigned doctor,
// for the patient-facing views.
type ConsultationWithDoctor struct {
	Consultation
	DoctorName      *string `json:"doctor_name,omitempty" db:"doctor_name"`
	DoctorEmail     *string `json:"doctor_email,omitempty" db:"doctor_email"`
	DoctorSpecialty *string `json:"doctor_specialty,omitempty" db:"doctor_specialty"`
}

// ConsultationWithPatient joins a consultation with the requesting
// patient, for the doctor-facing views.
type ConsultationWithPatient struct {
	Consultation
	PatientName  string `json:"patient_name" db:"patient_name"`
	PatientEmail string `json:"patient_email" db:"patient_email"`
}

type CreateConsultationRequest struct {
	Description        string   `json:"description" binding:"max=4000"`
	Symptoms           string   `json:"symptoms" binding:"max=4000"`
	Duration           string   `json:"duration" binding:"max=200"`
	RequestedSpecialty string   `json:"requested_specialty" binding:"omitempty,specialty"`
	Images             []string `json:"images" binding:"omitempty,dive,url"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" binding:"required,max=8000"`
}

// ConsultationEvent is one row of the append-only transition log.
type ConsultationEvent struct {
	ID             uuid.UUID          `json:"id" db:"id"`
	ConsultationID uuid.UUID          `json:"consultation_id" db:"consultation_id"`
	ActorID        uuid.UUID          `json:"actor_id" db:"actor_id"`
	ActorRole      Role               `json:"actor_role" db:"actor_role"`
	FromStatus     ConsultationStatus `json:"from_status" db:"from_status"`
	ToStatus       ConsultationStatus `json:"to_status" db:"to_status"`
	CreatedAt      time.Time          `json:"created_at" db:"created_at"`
}

// AdminStats aggregates store-wide counts for the admin dashboard.
type AdminStats struct {
	ConsultationsByStatus map[ConsultationStatus]int `json:"consultations_by_status"`
	UsersByRole           map[Role]int               `json:"users_by_role"`
	Recent                []*ConsultationWithDoctor  `json:"recent"`
}

// DoctorDashboard is the doctor's role-scoped view of the store.
type DoctorDashboard struct {
	Available bool                       `json:"available"`
	Pending   []*ConsultationWithPatient `json:"pending"`
	Assigned  []*ConsultationWithPatient `json:"assigned"`
}
