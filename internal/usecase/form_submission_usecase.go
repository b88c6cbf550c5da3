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
	"clinic-manager/pkg/apperror"
	"clinic-manager/pkg/validator"

	"github.com/sirupsen/logrus"
)

// formMessages are keyed by JSON field name, shared by every form.
var formMessages = map[string]string{
	"first_name":       "First name must be between 2 and 255 characters",
	"last_name":        "Last name must be between 2 and 255 characters",
	"email":            "Invalid email",
	"phone":            "Phone number must be 10 digits",
	"address":          "Address must be at least 5 characters",
	"date_of_birth":    "Invalid date",
	"appointment_date": "Invalid date",
	"specialisation":   "Invalid specialisation",
	"doctor_id":        "Doctor selection is required",
	"patient_id":       "Patient selection is required",
}

// uniqueMessages override whatever else was reported on the field.
var uniqueMessages = map[string]string{
	"email": "Email must be unique.",
	"phone": "Phone number must be unique.",
}

// FormSubmissionUsecase validates a form locally, sends it to the API and
// folds any failure into a SubmissionResult. A nil id creates, otherwise
// the record is updated. The returned error is nil only on success and
// carries the apperror kind of the failure.
type FormSubmissionUsecase interface {
	SubmitDoctor(ctx context.Context, id *int64, form *dto.DoctorForm) (*dto.SubmissionResult, error)
	SubmitPatient(ctx context.Context, id *int64, form *dto.PatientForm) (*dto.SubmissionResult, error)
	SubmitAppointment(ctx context.Context, id *int64, form *dto.AppointmentForm) (*dto.SubmissionResult, error)
}

type formSubmissionUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewFormSubmissionUsecase(
	log *logrus.Logger,
	v *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) FormSubmissionUsecase {
	v.RegisterMessages(formMessages)
	return &formSubmissionUsecase{
		log:             log,
		validator:       v,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *formSubmissionUsecase) SubmitDoctor(ctx context.Context, id *int64, form *dto.DoctorForm) (*dto.SubmissionResult, error) {
	if result, err := u.validate(form); err != nil {
		return result, err
	}
	return submit[entity.Doctor](ctx, u, u.doctorRepo, entity.CollectionDoctors, id, form,
		func(d *entity.Doctor) int64 { return d.ID })
}

func (u *formSubmissionUsecase) SubmitPatient(ctx context.Context, id *int64, form *dto.PatientForm) (*dto.SubmissionResult, error) {
	if result, err := u.validate(form); err != nil {
		return result, err
	}
	payload, err := converter.PatientFormToPayload(form)
	if err != nil {
		return u.localFailure("date_of_birth", err)
	}
	return submit[entity.Patient](ctx, u, u.patientRepo, entity.CollectionPatients, id, payload,
		func(p *entity.Patient) int64 { return p.ID })
}

func (u *formSubmissionUsecase) SubmitAppointment(ctx context.Context, id *int64, form *dto.AppointmentForm) (*dto.SubmissionResult, error) {
	if result, err := u.validate(form); err != nil {
		return result, err
	}
	payload, err := converter.AppointmentFormToPayload(form)
	if err != nil {
		return u.localFailure("appointment_date", err)
	}
	return submit[entity.Appointment](ctx, u, u.appointmentRepo, entity.CollectionAppointments, id, payload,
		func(a *entity.Appointment) int64 { return a.ID })
}

// validate reports every failing field at once.
func (u *formSubmissionUsecase) validate(form interface{}) (*dto.SubmissionResult, error) {
	if err := u.validator.Validate(form); err != nil {
		fieldErrors := u.validator.FormatValidationErrors(err)
		if len(fieldErrors) == 0 {
			u.log.Warnf("Failed to validate form: %+v", err)
			return &dto.SubmissionResult{Notification: MsgUnexpected}, &apperror.Error{Kind: apperror.KindUnexpected, Op: "validate form", Err: err}
		}
		return &dto.SubmissionResult{FieldErrors: fieldErrors}, &apperror.Error{Kind: apperror.KindValidation, Op: "validate form", Err: err}
	}
	return nil, nil
}

func (u *formSubmissionUsecase) localFailure(field string, err error) (*dto.SubmissionResult, error) {
	return &dto.SubmissionResult{FieldErrors: map[string]string{field: formMessages[field]}},
		&apperror.Error{Kind: apperror.KindValidation, Op: "validate form", Field: field, Err: err}
}

func submit[T any](
	ctx context.Context,
	u *formSubmissionUsecase,
	repo repository.Resource[T],
	collection entity.Collection,
	id *int64,
	payload any,
	idOf func(*T) int64,
) (*dto.SubmissionResult, error) {
	var (
		saved  *T
		err    error
		action string
	)
	if id == nil {
		action = collection.Singular() + ".create"
		saved, err = repo.Create(ctx, payload)
	} else {
		action = collection.Singular() + ".update"
		saved, err = repo.Update(ctx, *id, payload)
	}

	var savedID int64
	if err == nil {
		savedID = idOf(saved)
	} else if id != nil {
		savedID = *id
	}
	if id == nil {
		u.auditService.LogCreate(ctx, action, collection.Singular(), savedID, saved, err)
	} else {
		u.auditService.LogUpdate(ctx, action, collection.Singular(), savedID, saved, err)
	}

	if err != nil {
		u.log.Warnf("Failed to save %s: %+v", collection.Singular(), err)
		return serverFailure(err), err
	}

	return &dto.SubmissionResult{
		ID:       savedID,
		Redirect: fmt.Sprintf("/%s/%d", collection, savedID),
	}, nil
}

// serverFailure maps a rejected save onto the form. Field-scoped failures
// only touch the fields the server named.
func serverFailure(err error) *dto.SubmissionResult {
	result := &dto.SubmissionResult{}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) || !apperror.IsFieldScoped(err) {
		result.Notification = Notification(err)
		return result
	}

	fieldErrors := make(map[string]string)
	for _, issue := range appErr.Issues {
		if issue.Field == "" {
			result.Notification = issue.Message
			continue
		}
		fieldErrors[issue.Field] = issue.Message
	}
	if appErr.Kind == apperror.KindUniqueViolation && appErr.Field != "" {
		if msg, ok := uniqueMessages[appErr.Field]; ok {
			fieldErrors[appErr.Field] = msg
		} else {
			fieldErrors[appErr.Field] = appErr.Field + " must be unique."
		}
	}

	if len(fieldErrors) > 0 {
		result.FieldErrors = fieldErrors
	} else if result.Notification == "" {
		result.Notification = MsgUnexpected
	}
	return result
}
