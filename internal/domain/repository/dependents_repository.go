package repository

import (
	"context"

	"clinic-manager/internal/domain/entity"
)

// DependentsRepository reads the records the API itself associates with a
// doctor through its nested per-doctor endpoints.
type DependentsRepository interface {
	AppointmentsOfDoctor(ctx context.Context, doctorID int64) ([]entity.Appointment, error)
	PatientsOfDoctor(ctx context.Context, doctorID int64) ([]entity.Patient, error)
}
