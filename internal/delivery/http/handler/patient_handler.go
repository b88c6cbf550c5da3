package handler

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/response"
)

type PatientHandler struct {
	formUsecase      usecase.FormSubmissionUsecase
	recordUsecase    usecase.RecordUsecase
	dashboardUsecase usecase.DashboardUsecase
}

func NewPatientHandler(
	formUsecase usecase.FormSubmissionUsecase,
	recordUsecase usecase.RecordUsecase,
	dashboardUsecase usecase.DashboardUsecase,
) *PatientHandler {
	return &PatientHandler{
		formUsecase:      formUsecase,
		recordUsecase:    recordUsecase,
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.formUsecase.SubmitPatient(r.Context(), nil, &req)
	writeSubmission(w, result, err, http.StatusCreated, "Patient created successfully")
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.recordUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) EditPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	form, err := h.recordUsecase.PatientForm(r.Context(), patientID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient form retrieved successfully", form)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.PatientForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.formUsecase.SubmitPatient(r.Context(), &patientID, &req)
	writeSubmission(w, result, err, http.StatusOK, "Patient updated successfully")
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if _, err := h.dashboardUsecase.DeleteRecord(r.Context(), entity.CollectionPatients, patientID); err != nil {
		response.Error(w, statusOf(err), usecase.DeleteFailedMessage(entity.CollectionPatients), nil)
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
