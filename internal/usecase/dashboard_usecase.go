package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-manager/internal/converter"
	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"
	"clinic-manager/internal/service"
	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var ErrDeleteFailed = errors.New("delete failed")

type DashboardUsecase interface {
	Load(ctx context.Context, message string) (*dto.DashboardResponse, error)
	DeleteRecord(ctx context.Context, collection entity.Collection, id int64) (*dto.CascadeReport, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	session         *session.Session
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	enricher        *AppointmentEnricher
	cascade         CascadeDeleteUsecase
	listing         *service.ListingStore
	auditService    service.AuditService
}

func NewDashboardUsecase(
	log *logrus.Logger,
	sess *session.Session,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	enricher *AppointmentEnricher,
	cascade CascadeDeleteUsecase,
	listing *service.ListingStore,
	auditService service.AuditService,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		session:         sess,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		enricher:        enricher,
		cascade:         cascade,
		listing:         listing,
		auditService:    auditService,
	}
}

// Load fetches the three listings at once. Patients and appointments need a
// session and are left empty without one.
func (u *dashboardUsecase) Load(ctx context.Context, message string) (*dto.DashboardResponse, error) {
	var (
		doctors      []entity.Doctor
		patients     = []entity.Patient{}
		appointments = []entity.Appointment{}
	)
	authenticated := u.session.Authenticated()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctors, err = u.doctorRepo.List(gctx)
		return err
	})
	if authenticated {
		g.Go(func() error {
			var err error
			patients, err = u.patientRepo.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			appointments, err = u.appointmentRepo.List(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard: %+v", err)
		return nil, err
	}

	enriched := u.enricher.Enrich(ctx, appointments)
	u.listing.Replace(service.Listing{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: enriched,
	})

	return listingToResponse(u.listing.Snapshot(), message, authenticated), nil
}

// DeleteRecord deletes one record. Doctors go through the cascade and get a
// report back; other collections return a nil report.
func (u *dashboardUsecase) DeleteRecord(ctx context.Context, collection entity.Collection, id int64) (*dto.CascadeReport, error) {
	if collection == entity.CollectionDoctors {
		result, err := u.cascade.DeleteDoctor(ctx, id)
		report := cascadeToReport(result)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
		}
		return report, nil
	}

	var err error
	switch collection {
	case entity.CollectionPatients:
		err = u.patientRepo.Delete(ctx, id)
	case entity.CollectionAppointments:
		err = u.appointmentRepo.Delete(ctx, id)
	default:
		return nil, fmt.Errorf("%w: unknown collection %q", ErrDeleteFailed, collection)
	}
	u.auditService.LogDelete(ctx, deleteAction(collection), collection.Singular(), id, err)
	if err != nil {
		u.log.Warnf("Failed to delete %s %d: %+v", collection.Singular(), id, err)
		return nil, fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	if collection == entity.CollectionPatients {
		u.listing.RemovePatients(id)
	} else {
		u.listing.RemoveAppointments(id)
	}
	return nil, nil
}

func listingToResponse(listing service.Listing, message string, authenticated bool) *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Message:       message,
		Authenticated: authenticated,
		Doctors:       converter.DoctorsToResponses(listing.Doctors),
		Patients:      converter.PatientsToResponses(listing.Patients),
		Appointments:  converter.AppointmentsToResponses(listing.Appointments),
	}
}

func cascadeToReport(result *CascadeResult) *dto.CascadeReport {
	if result == nil {
		return nil
	}
	report := &dto.CascadeReport{
		DoctorID:            result.DoctorID,
		State:               string(result.State),
		FailedStep:          string(result.FailedStep),
		AppointmentIDs:      result.Dependents.AppointmentIDs,
		PatientIDs:          result.Dependents.PatientIDs,
		DeletedAppointments: result.DeletedAppointments,
		DeletedPatients:     result.DeletedPatients,
	}
	if report.AppointmentIDs == nil {
		report.AppointmentIDs = []int64{}
	}
	if report.PatientIDs == nil {
		report.PatientIDs = []int64{}
	}
	if result.Err != nil {
		report.Error = DeleteFailedMessage(entity.CollectionDoctors)
	}
	return report
}
