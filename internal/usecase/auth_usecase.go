package usecase

import (
	"context"
	"errors"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/domain/repository"
	"clinic-manager/internal/service"
	"clinic-manager/pkg/apperror"
	"clinic-manager/pkg/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Logout(ctx context.Context)
	Current() *dto.SessionResponse
}

type authUsecase struct {
	log          *logrus.Logger
	session      *session.Session
	authRepo     repository.AuthRepository
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	sess *session.Session,
	authRepo repository.AuthRepository,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		session:      sess,
		authRepo:     authRepo,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	token, err := u.authRepo.Login(ctx, req.Email, req.Password)
	if err != nil {
		u.auditService.LogSession(ctx, entity.AuditActionUserLogin, req.Email, err)
		if errors.Is(err, apperror.ErrUnauthenticated) || errors.Is(err, apperror.ErrValidation) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to log in: %+v", err)
		return nil, err
	}

	if err := u.session.Login(token); err != nil {
		u.log.Warnf("Failed to start session: %+v", err)
		return nil, err
	}
	u.auditService.LogSession(ctx, entity.AuditActionUserLogin, req.Email, nil)

	return u.Current(), nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) error {
	err := u.authRepo.Register(ctx, req.Email, req.Password)
	u.auditService.LogSession(ctx, entity.AuditActionUserRegister, req.Email, err)
	if err != nil {
		if errors.Is(err, apperror.ErrUniqueViolation) {
			return ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to register: %+v", err)
		return err
	}
	return nil
}

// Logout records the event before the credential is dropped so the
// subject is still known.
func (u *authUsecase) Logout(ctx context.Context) {
	if !u.session.Authenticated() {
		return
	}
	u.auditService.LogSession(ctx, entity.AuditActionUserLogout, u.session.Subject(), nil)
	u.session.Logout()
}

func (u *authUsecase) Current() *dto.SessionResponse {
	return &dto.SessionResponse{
		Authenticated: u.session.Authenticated(),
		Subject:       u.session.Subject(),
	}
}
