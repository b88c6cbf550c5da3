package repository

import (
	"context"
	"net/http"

	domainRepo "clinic-manager/internal/domain/repository"
	"clinic-manager/pkg/apperror"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type authRepository struct {
	client       *Client
	loginPath    string
	registerPath string
}

func NewAuthRepository(client *Client, loginPath, registerPath string) domainRepo.AuthRepository {
	return &authRepository{
		client:       client,
		loginPath:    loginPath,
		registerPath: registerPath,
	}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (string, error) {
	var res tokenResponse
	err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   r.loginPath,
		body:   credentials{Email: email, Password: password},
		public: true,
	}, &res)
	if err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", apperror.New(apperror.KindUnexpected, http.MethodPost+" "+r.loginPath, "response carried no token")
	}
	return res.Token, nil
}

func (r *authRepository) Register(ctx context.Context, email, password string) error {
	return r.client.do(ctx, request{
		method: http.MethodPost,
		path:   r.registerPath,
		body:   credentials{Email: email, Password: password},
		public: true,
	}, nil)
}
