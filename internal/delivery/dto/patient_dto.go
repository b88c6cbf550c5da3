package dto

import "clinic-manager/internal/domain/entity"

// PatientForm is the create/edit form of a patient. DateOfBirth accepts
// YYYY-MM-DD or DD/MM/YYYY.
type PatientForm struct {
	FirstName   string `json:"first_name" validate:"min=3,max=254"`
	LastName    string `json:"last_name" validate:"min=3,max=254"`
	Email       string `json:"email" validate:"loose_email"`
	Phone       string `json:"phone" validate:"len=10"`
	Address     string `json:"address" validate:"min=6"`
	DateOfBirth string `json:"date_of_birth" validate:"calendar_date"`
}

type PatientResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
}

// PatientPayload is the body sent to the API, dates in canonical form.
type PatientPayload struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	DateOfBirth entity.Date `json:"date_of_birth"`
}
