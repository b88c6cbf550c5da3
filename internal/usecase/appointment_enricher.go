package usecase

import (
	"context"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"
)

const (
	UnknownDoctor  = "Unknown Doctor"
	UnknownPatient = "Unknown Patient"
)

// AppointmentEnricher resolves the doctor and patient names of appointments.
// It never fails: a lookup that errors, or a missing reference, yields the
// Unknown placeholder for that name only.
type AppointmentEnricher struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewAppointmentEnricher(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) *AppointmentEnricher {
	return &AppointmentEnricher{
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

// Enrich returns one EnrichedAppointment per input, in input order. All
// appointments are resolved at once.
func (e *AppointmentEnricher) Enrich(ctx context.Context, appointments []entity.Appointment) []entity.EnrichedAppointment {
	if len(appointments) == 0 {
		return []entity.EnrichedAppointment{}
	}

	mapper := iter.Mapper[entity.Appointment, entity.EnrichedAppointment]{
		MaxGoroutines: len(appointments),
	}
	return mapper.Map(appointments, func(appointment *entity.Appointment) entity.EnrichedAppointment {
		return e.EnrichOne(ctx, *appointment)
	})
}

// EnrichOne looks up the doctor and the patient of one appointment in
// parallel.
func (e *AppointmentEnricher) EnrichOne(ctx context.Context, appointment entity.Appointment) entity.EnrichedAppointment {
	enriched := entity.EnrichedAppointment{
		Appointment: appointment,
		DoctorName:  UnknownDoctor,
		PatientName: UnknownPatient,
	}

	var wg conc.WaitGroup
	if appointment.DoctorID != nil {
		doctorID := *appointment.DoctorID
		wg.Go(func() {
			doctor, err := e.doctorRepo.Get(ctx, doctorID)
			if err != nil {
				e.log.WithField("appointment_id", appointment.ID).Warnf("Failed to resolve doctor %d: %v", doctorID, err)
				return
			}
			enriched.DoctorName = doctor.DisplayName()
		})
	}
	if appointment.PatientID != nil {
		patientID := *appointment.PatientID
		wg.Go(func() {
			patient, err := e.patientRepo.Get(ctx, patientID)
			if err != nil {
				e.log.WithField("appointment_id", appointment.ID).Warnf("Failed to resolve patient %d: %v", patientID, err)
				return
			}
			enriched.PatientName = patient.DisplayName()
		})
	}
	if recovered := wg.WaitAndRecover(); recovered != nil {
		e.log.WithField("appointment_id", appointment.ID).Errorf("Lookup panicked: %v", recovered.Value)
	}

	return enriched
}
