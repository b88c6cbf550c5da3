package usecase

import (
	"context"

	"clinic-manager/internal/converter"
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RecordUsecase serves the single-record views and the prefilled edit forms.
type RecordUsecase interface {
	GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error)
	DoctorForm(ctx context.Context, id int64) (*dto.DoctorForm, error)
	PatientForm(ctx context.Context, id int64) (*dto.PatientForm, error)
	AppointmentForm(ctx context.Context, id int64) (*dto.AppointmentForm, error)
	AppointmentFormOptions(ctx context.Context) (*dto.AppointmentFormOptions, error)
}

type recordUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	enricher        *AppointmentEnricher
}

func NewRecordUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	enricher *AppointmentEnricher,
) RecordUsecase {
	return &recordUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		enricher:        enricher,
	}
}

func (u *recordUsecase) GetDoctor(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *recordUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

// GetAppointment returns the appointment with its doctor and patient names.
func (u *recordUsecase) GetAppointment(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	enriched := u.enricher.EnrichOne(ctx, *appointment)
	return converter.AppointmentToResponse(&enriched), nil
}

func (u *recordUsecase) DoctorForm(ctx context.Context, id int64) (*dto.DoctorForm, error) {
	doctor, err := u.doctorRepo.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to prefill doctor form %d: %+v", id, err)
		return nil, err
	}
	return converter.DoctorToForm(doctor), nil
}

func (u *recordUsecase) PatientForm(ctx context.Context, id int64) (*dto.PatientForm, error) {
	patient, err := u.patientRepo.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to prefill patient form %d: %+v", id, err)
		return nil, err
	}
	return converter.PatientToForm(patient), nil
}

func (u *recordUsecase) AppointmentForm(ctx context.Context, id int64) (*dto.AppointmentForm, error) {
	appointment, err := u.appointmentRepo.Get(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to prefill appointment form %d: %+v", id, err)
		return nil, err
	}
	return converter.AppointmentToForm(appointment), nil
}

// AppointmentFormOptions lists doctors and patients for the pickers.
func (u *recordUsecase) AppointmentFormOptions(ctx context.Context) (*dto.AppointmentFormOptions, error) {
	var (
		doctors  []entity.Doctor
		patients []entity.Patient
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctors, err = u.doctorRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = u.patientRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load appointment form options: %+v", err)
		return nil, err
	}

	return &dto.AppointmentFormOptions{
		Doctors:  converter.DoctorsToOptions(doctors),
		Patients: converter.PatientsToOptions(patients),
	}, nil
}
