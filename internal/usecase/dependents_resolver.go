package usecase

import (
	"context"

	"clinic-manager/config"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"

	"golang.org/x/sync/errgroup"
)

// Dependents are the records deleted along with a doctor, in the order the
// API listed them.
type Dependents struct {
	AppointmentIDs []int64
	PatientIDs     []int64
}

// DependentsResolver decides which records depend on a doctor.
type DependentsResolver interface {
	Resolve(ctx context.Context, doctorID int64) (*Dependents, error)
}

// NewDependentsResolver picks the resolver named by the cascade config.
func NewDependentsResolver(
	cfg config.CascadeConfig,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dependentsRepo repository.DependentsRepository,
) DependentsResolver {
	if cfg.Dependents == config.DependentsNested {
		return &nestedDependentsResolver{
			dependentsRepo:  dependentsRepo,
			includePatients: cfg.PatientPolicy != config.PatientPolicyNone,
		}
	}
	return &filterDependentsResolver{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		includePatients: cfg.PatientPolicy != config.PatientPolicyNone,
	}
}

// filterDependentsResolver derives dependents from the full listings. A
// patient depends on the doctor only when every appointment referencing
// them belongs to that doctor.
type filterDependentsResolver struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	includePatients bool
}

func (r *filterDependentsResolver) Resolve(ctx context.Context, doctorID int64) (*Dependents, error) {
	var (
		appointments []entity.Appointment
		patients     []entity.Patient
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = r.appointmentRepo.List(gctx)
		return err
	})
	if r.includePatients {
		g.Go(func() error {
			var err error
			patients, err = r.patientRepo.List(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dependents := &Dependents{AppointmentIDs: []int64{}, PatientIDs: []int64{}}
	var referenced []int64
	seen := make(map[int64]bool)
	shared := make(map[int64]bool)
	for i := range appointments {
		appointment := &appointments[i]
		if appointment.BelongsToDoctor(doctorID) {
			dependents.AppointmentIDs = append(dependents.AppointmentIDs, appointment.ID)
			if appointment.PatientID != nil && !seen[*appointment.PatientID] {
				seen[*appointment.PatientID] = true
				referenced = append(referenced, *appointment.PatientID)
			}
			continue
		}
		if appointment.PatientID != nil {
			shared[*appointment.PatientID] = true
		}
	}

	if !r.includePatients {
		return dependents, nil
	}

	listed := make(map[int64]bool, len(patients))
	for _, patient := range patients {
		listed[patient.ID] = true
	}
	for _, id := range referenced {
		if listed[id] && !shared[id] {
			dependents.PatientIDs = append(dependents.PatientIDs, id)
		}
	}
	return dependents, nil
}

// nestedDependentsResolver trusts the API's per-doctor endpoints.
type nestedDependentsResolver struct {
	dependentsRepo  repository.DependentsRepository
	includePatients bool
}

func (r *nestedDependentsResolver) Resolve(ctx context.Context, doctorID int64) (*Dependents, error) {
	dependents := &Dependents{AppointmentIDs: []int64{}, PatientIDs: []int64{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appointments, err := r.dependentsRepo.AppointmentsOfDoctor(gctx, doctorID)
		if err != nil {
			return err
		}
		for _, appointment := range appointments {
			dependents.AppointmentIDs = append(dependents.AppointmentIDs, appointment.ID)
		}
		return nil
	})
	if r.includePatients {
		g.Go(func() error {
			patients, err := r.dependentsRepo.PatientsOfDoctor(gctx, doctorID)
			if err != nil {
				return err
			}
			for _, patient := range patients {
				dependents.PatientIDs = append(dependents.PatientIDs, patient.ID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dependents, nil
}
