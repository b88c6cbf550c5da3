package usecase

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/service"
	"clinic-manager/pkg/apperror"
	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func int64Ptr(v int64) *int64 {
	return &v
}

// mockResource is a func-field fake of repository.Resource. Unset funcs
// fail with an unexpected error.
type mockResource[T any] struct {
	ListFunc   func(ctx context.Context) ([]T, error)
	GetFunc    func(ctx context.Context, id int64) (*T, error)
	CreateFunc func(ctx context.Context, payload any) (*T, error)
	UpdateFunc func(ctx context.Context, id int64, patch any) (*T, error)
	DeleteFunc func(ctx context.Context, id int64) error

	listCalls   atomic.Int32
	getCalls    atomic.Int32
	createCalls atomic.Int32
	updateCalls atomic.Int32
	deleteCalls atomic.Int32
}

func (m *mockResource[T]) List(ctx context.Context) ([]T, error) {
	m.listCalls.Add(1)
	if m.ListFunc == nil {
		return nil, apperror.New(apperror.KindUnexpected, "list", "not stubbed")
	}
	return m.ListFunc(ctx)
}

func (m *mockResource[T]) Get(ctx context.Context, id int64) (*T, error) {
	m.getCalls.Add(1)
	if m.GetFunc == nil {
		return nil, apperror.New(apperror.KindUnexpected, "get", "not stubbed")
	}
	return m.GetFunc(ctx, id)
}

func (m *mockResource[T]) Create(ctx context.Context, payload any) (*T, error) {
	m.createCalls.Add(1)
	if m.CreateFunc == nil {
		return nil, apperror.New(apperror.KindUnexpected, "create", "not stubbed")
	}
	return m.CreateFunc(ctx, payload)
}

func (m *mockResource[T]) Update(ctx context.Context, id int64, patch any) (*T, error) {
	m.updateCalls.Add(1)
	if m.UpdateFunc == nil {
		return nil, apperror.New(apperror.KindUnexpected, "update", "not stubbed")
	}
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockResource[T]) Delete(ctx context.Context, id int64) error {
	m.deleteCalls.Add(1)
	if m.DeleteFunc == nil {
		return apperror.New(apperror.KindUnexpected, "delete", "not stubbed")
	}
	return m.DeleteFunc(ctx, id)
}

type mockDoctorRepository struct {
	mockResource[entity.Doctor]
}

type mockPatientRepository struct {
	mockResource[entity.Patient]
}

type mockAppointmentRepository struct {
	mockResource[entity.Appointment]
}

type mockDependentsRepository struct {
	AppointmentsOfDoctorFunc func(ctx context.Context, doctorID int64) ([]entity.Appointment, error)
	PatientsOfDoctorFunc     func(ctx context.Context, doctorID int64) ([]entity.Patient, error)
}

func (m *mockDependentsRepository) AppointmentsOfDoctor(ctx context.Context, doctorID int64) ([]entity.Appointment, error) {
	return m.AppointmentsOfDoctorFunc(ctx, doctorID)
}

func (m *mockDependentsRepository) PatientsOfDoctor(ctx context.Context, doctorID int64) ([]entity.Patient, error) {
	return m.PatientsOfDoctorFunc(ctx, doctorID)
}

type mockAuthRepository struct {
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
	RegisterFunc func(ctx context.Context, email, password string) error
}

func (m *mockAuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthRepository) Register(ctx context.Context, email, password string) error {
	return m.RegisterFunc(ctx, email, password)
}

// callLog records the API calls made across mocks, in completion order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.calls...)
}

func newTestAudit(log *logrus.Logger) (service.AuditService, *session.Session) {
	sess := session.New(log)
	return service.NewAuditService(log, sess), sess
}
