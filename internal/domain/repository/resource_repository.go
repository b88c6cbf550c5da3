package repository

import (
	"context"

	"clinic-manager/internal/domain/entity"
)

// Resource is the CRUD surface of one API collection. Failures are
// *apperror.Error values.
type Resource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, payload any) (*T, error)
	Update(ctx context.Context, id int64, patch any) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type DoctorRepository interface {
	Resource[entity.Doctor]
}

type PatientRepository interface {
	Resource[entity.Patient]
}

type AppointmentRepository interface {
	Resource[entity.Appointment]
}
