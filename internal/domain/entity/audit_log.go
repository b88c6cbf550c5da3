package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEvent records one mutation issued against the clinic API, or a
// session change. Events live in memory only.
type AuditEvent struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject,omitempty"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity,omitempty"`
	EntityID  int64     `json:"entity_id,omitempty"`
	Outcome   string    `json:"outcome"`
	Metadata  JSON      `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// JSON is free-form event metadata.
type JSON map[string]interface{}

const (
	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// Common audit actions
const (
	AuditActionUserLogin         = "user.login"
	AuditActionUserLogout        = "user.logout"
	AuditActionUserRegister      = "user.register"
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionDoctorUpdate      = "doctor.update"
	AuditActionDoctorDelete      = "doctor.delete"
	AuditActionPatientCreate     = "patient.create"
	AuditActionPatientUpdate     = "patient.update"
	AuditActionPatientDelete     = "patient.delete"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentDelete = "appointment.delete"
	AuditActionCascadeStep       = "doctor.cascade.step"
)
