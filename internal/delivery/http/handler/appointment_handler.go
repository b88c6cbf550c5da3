package handler

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/response"
)

type AppointmentHandler struct {
	formUsecase      usecase.FormSubmissionUsecase
	recordUsecase    usecase.RecordUsecase
	dashboardUsecase usecase.DashboardUsecase
}

func NewAppointmentHandler(
	formUsecase usecase.FormSubmissionUsecase,
	recordUsecase usecase.RecordUsecase,
	dashboardUsecase usecase.DashboardUsecase,
) *AppointmentHandler {
	return &AppointmentHandler{
		formUsecase:      formUsecase,
		recordUsecase:    recordUsecase,
		dashboardUsecase: dashboardUsecase,
	}
}

// GetFormOptions lists the doctors and patients an appointment can reference.
func (h *AppointmentHandler) GetFormOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.recordUsecase.AppointmentFormOptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment form options retrieved successfully", options)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.formUsecase.SubmitAppointment(r.Context(), nil, &req)
	writeSubmission(w, result, err, http.StatusCreated, "Appointment created successfully")
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.recordUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) EditAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	form, err := h.recordUsecase.AppointmentForm(r.Context(), appointmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment form retrieved successfully", form)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.AppointmentForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.formUsecase.SubmitAppointment(r.Context(), &appointmentID, &req)
	writeSubmission(w, result, err, http.StatusOK, "Appointment updated successfully")
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if _, err := h.dashboardUsecase.DeleteRecord(r.Context(), entity.CollectionAppointments, appointmentID); err != nil {
		response.Error(w, statusOf(err), usecase.DeleteFailedMessage(entity.CollectionAppointments), nil)
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
