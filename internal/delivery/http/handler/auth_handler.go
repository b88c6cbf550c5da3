package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/response"
	"clinic-manager/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles sign in against the clinic API
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", session)
}

// Register handles account creation against the clinic API
// @Summary Register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.Register(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			response.Error(w, http.StatusConflict, "Email already exists", nil)
			return
		}
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Registration successful", nil)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authUsecase.Logout(r.Context())
	response.Redirect(w, r, "/login")
}
