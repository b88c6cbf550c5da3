package usecase

import (
	"context"
	"testing"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordUsecase() (RecordUsecase, *mockDoctorRepository, *mockPatientRepository, *mockAppointmentRepository) {
	doctors, patients := newEnricherRepos()
	appointments := &mockAppointmentRepository{}
	log := newTestLogger()
	enricher := NewAppointmentEnricher(log, doctors, patients)
	return NewRecordUsecase(log, doctors, patients, appointments, enricher), doctors, patients, appointments
}

func TestRecordUsecase_AppointmentFormOptions(t *testing.T) {
	uc, doctors, patients, _ := newRecordUsecase()
	doctors.ListFunc = func(ctx context.Context) ([]entity.Doctor, error) {
		return []entity.Doctor{{ID: 5, FirstName: "Gregory", LastName: "House"}}, nil
	}
	patients.ListFunc = func(ctx context.Context) ([]entity.Patient, error) {
		return []entity.Patient{{ID: 20, FirstName: "Ada", LastName: "Byron"}}, nil
	}

	options, err := uc.AppointmentFormOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.Option{{Value: 5, Label: "Dr. Gregory House"}}, options.Doctors)
	assert.Equal(t, []dto.Option{{Value: 20, Label: "Ada Byron"}}, options.Patients)
}

func TestRecordUsecase_AppointmentFormOptionsFailure(t *testing.T) {
	uc, doctors, patients, _ := newRecordUsecase()
	doctors.ListFunc = func(ctx context.Context) ([]entity.Doctor, error) {
		return []entity.Doctor{}, nil
	}
	patients.ListFunc = func(ctx context.Context) ([]entity.Patient, error) {
		return nil, apperror.New(apperror.KindUnauthenticated, "GET /patients/", "")
	}

	_, err := uc.AppointmentFormOptions(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
}

func TestRecordUsecase_AppointmentFormPrefill(t *testing.T) {
	uc, _, _, appointments := newRecordUsecase()
	appointments.GetFunc = func(ctx context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{
			ID:              id,
			AppointmentDate: entity.NewDate(2024, 3, 9),
			DoctorID:        int64Ptr(5),
		}, nil
	}

	form, err := uc.AppointmentForm(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, &dto.AppointmentForm{AppointmentDate: "2024-03-09", DoctorID: 5}, form)
}

func TestRecordUsecase_GetAppointmentIsEnriched(t *testing.T) {
	uc, _, _, appointments := newRecordUsecase()
	appointments.GetFunc = func(ctx context.Context, id int64) (*entity.Appointment, error) {
		return &entity.Appointment{ID: id, DoctorID: int64Ptr(5), PatientID: int64Ptr(99)}, nil
	}

	res, err := uc.GetAppointment(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Gregory House", res.DoctorName)
	assert.Equal(t, UnknownPatient, res.PatientName)
}

func TestRecordUsecase_GetDoctorNotFound(t *testing.T) {
	uc, _, _, _ := newRecordUsecase()
	_, err := uc.GetDoctor(context.Background(), 99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
