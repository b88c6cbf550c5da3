package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"
	"clinic-manager/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

var ErrCascadeIncomplete = errors.New("cascade delete incomplete")

// CascadeStep is a state of the cascading doctor deletion.
type CascadeStep string

const (
	StepFetchDependents    CascadeStep = "fetch_dependents"
	StepDeleteAppointments CascadeStep = "delete_appointments"
	StepDeletePatients     CascadeStep = "delete_patients"
	StepDeleteDoctor       CascadeStep = "delete_doctor"
	StepDone               CascadeStep = "done"
	StepAborted            CascadeStep = "aborted"
)

// CascadeResult tells how far a cascade got. FailedStep and Err are set
// only when State is StepAborted.
type CascadeResult struct {
	DoctorID            int64
	State               CascadeStep
	FailedStep          CascadeStep
	Dependents          Dependents
	DeletedAppointments []int64
	DeletedPatients     []int64
	Err                 error
}

type CascadeDeleteUsecase interface {
	DeleteDoctor(ctx context.Context, doctorID int64) (*CascadeResult, error)
}

type cascadeDeleteUsecase struct {
	log             *logrus.Logger
	resolver        DependentsResolver
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	listing         *service.ListingStore
	auditService    service.AuditService
}

func NewCascadeDeleteUsecase(
	log *logrus.Logger,
	resolver DependentsResolver,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	listing *service.ListingStore,
	auditService service.AuditService,
) CascadeDeleteUsecase {
	return &cascadeDeleteUsecase{
		log:             log,
		resolver:        resolver,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		listing:         listing,
		auditService:    auditService,
	}
}

// DeleteDoctor removes the doctor's appointments, then its patients, then
// the doctor. Each batch runs concurrently and settles fully before the
// next step starts. A failure stops the cascade where it is; nothing
// already deleted is restored.
func (u *cascadeDeleteUsecase) DeleteDoctor(ctx context.Context, doctorID int64) (*CascadeResult, error) {
	result := &CascadeResult{
		DoctorID:            doctorID,
		State:               StepFetchDependents,
		DeletedAppointments: []int64{},
		DeletedPatients:     []int64{},
	}
	entry := u.log.WithField("doctor_id", doctorID)

	dependents, err := u.resolver.Resolve(ctx, doctorID)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		entry.Warnf("Failed to fetch dependents: %+v", err)
		return u.abort(result, err)
	}
	result.Dependents = *dependents
	fetched := make([]int64, 0, len(dependents.AppointmentIDs)+len(dependents.PatientIDs))
	fetched = append(append(fetched, dependents.AppointmentIDs...), dependents.PatientIDs...)
	u.auditService.LogCascadeStep(ctx, doctorID, string(StepFetchDependents), fetched, nil)

	// past this point the caller can no longer stop the cascade
	ctx = context.WithoutCancel(ctx)

	result.State = StepDeleteAppointments
	deleted, err := u.deleteBatch(ctx, entity.CollectionAppointments, dependents.AppointmentIDs, u.appointmentRepo.Delete)
	result.DeletedAppointments = deleted
	u.listing.RemoveAppointments(deleted...)
	u.auditService.LogCascadeStep(ctx, doctorID, string(StepDeleteAppointments), deleted, err)
	if err != nil {
		entry.Warnf("Failed to delete appointments: %+v", err)
		return u.abort(result, err)
	}

	result.State = StepDeletePatients
	deleted, err = u.deleteBatch(ctx, entity.CollectionPatients, dependents.PatientIDs, u.patientRepo.Delete)
	result.DeletedPatients = deleted
	u.listing.RemovePatients(deleted...)
	u.auditService.LogCascadeStep(ctx, doctorID, string(StepDeletePatients), deleted, err)
	if err != nil {
		entry.Warnf("Failed to delete patients: %+v", err)
		return u.abort(result, err)
	}

	result.State = StepDeleteDoctor
	err = u.doctorRepo.Delete(ctx, doctorID)
	u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, entity.CollectionDoctors.Singular(), doctorID, err)
	if err != nil {
		entry.Warnf("Failed to delete doctor: %+v", err)
		return u.abort(result, err)
	}
	u.listing.RemoveDoctor(doctorID)

	result.State = StepDone
	entry.WithFields(logrus.Fields{
		"appointments": len(result.DeletedAppointments),
		"patients":     len(result.DeletedPatients),
	}).Info("Doctor deleted")
	return result, nil
}

func (u *cascadeDeleteUsecase) abort(result *CascadeResult, err error) (*CascadeResult, error) {
	result.FailedStep = result.State
	result.State = StepAborted
	result.Err = fmt.Errorf("%w at %s: %w", ErrCascadeIncomplete, result.FailedStep, err)
	return result, result.Err
}

// deleteBatch issues every delete at once and waits for all of them. It
// returns the ids that were deleted, sorted, and the joined failures.
func (u *cascadeDeleteUsecase) deleteBatch(
	ctx context.Context,
	collection entity.Collection,
	ids []int64,
	remove func(ctx context.Context, id int64) error,
) ([]int64, error) {
	var (
		mu      sync.Mutex
		deleted = make([]int64, 0, len(ids))
	)

	p := pool.New().WithErrors()
	for _, id := range ids {
		id := id
		p.Go(func() error {
			err := remove(ctx, id)
			u.auditService.LogDelete(ctx, deleteAction(collection), collection.Singular(), id, err)
			if err != nil {
				return fmt.Errorf("delete %s %d: %w", collection.Singular(), id, err)
			}
			mu.Lock()
			deleted = append(deleted, id)
			mu.Unlock()
			return nil
		})
	}
	err := p.Wait()

	sort.Slice(deleted, func(i, j int) bool { return deleted[i] < deleted[j] })
	return deleted, err
}

func deleteAction(collection entity.Collection) string {
	switch collection {
	case entity.CollectionDoctors:
		return entity.AuditActionDoctorDelete
	case entity.CollectionPatients:
		return entity.AuditActionPatientDelete
	default:
		return entity.AuditActionAppointmentDelete
	}
}
