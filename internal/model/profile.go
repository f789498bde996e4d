package model

import (
	"time"

	"github.com/google/uuid"
)

// Specialties is the fixed enumeration of practice areas. A doctor's
// profile and a consultation's requested specialty both draw from it.
var Specialties = []string{
	"General dermatology",
	"Pediatric dermatology",
	"Acne & rosacea",
	"Eczema & psoriasis",
	"Hair & scalp",
	"Skin cancer / Mohs",
	"Cosmetic dermatology",
	"Teledermatology",
}

// ValidSpecialty reports whether s names a known specialty.
// The empty string means "no preference" and is always valid.
func ValidSpecialty(s string) bool {
	if s == "" {
		return true
	}
	for _, known := range Specialties {
		if known == s {
			return true
		}
	}
	return false
}

// PatientProfile links a patient user to their consultations. It carries
// no fields of its own yet; created lazily on the first request.
type PatientProfile struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DoctorProfile holds a doctor's public bio and availability flag.
type DoctorProfile struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Bio         string    `json:"bio" db:"bio"`
	Specialty   string    `json:"specialty" db:"specialty"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Availability states accepted by the availability endpoint.
const (
	AvailabilityOnline  = "online"
	AvailabilityOffline = "offline"
)

type UpsertDoctorProfileRequest struct {
	Bio       string `json:"bio" binding:"max=2000"`
	Specialty string `json:"specialty" binding:"omitempty,specialty"`
}

type SetAvailabilityRequest struct {
	Status string `json:"status" binding:"required,oneof=online offline"`
}
