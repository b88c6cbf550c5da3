package handler

import (
	"encoding/json"
	"net/http"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/domain/entity"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/response"
)

type DoctorHandler struct {
	formUsecase      usecase.FormSubmissionUsecase
	recordUsecase    usecase.RecordUsecase
	dashboardUsecase usecase.DashboardUsecase
}

func NewDoctorHandler(
	formUsecase usecase.FormSubmissionUsecase,
	recordUsecase usecase.RecordUsecase,
	dashboardUsecase usecase.DashboardUsecase,
) *DoctorHandler {
	return &DoctorHandler{
		formUsecase:      formUsecase,
		recordUsecase:    recordUsecase,
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.formUsecase.SubmitDoctor(r.Context(), nil, &req)
	writeSubmission(w, result, err, http.StatusCreated, "Doctor created successfully")
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.recordUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// EditDoctor returns the edit form prefilled with the stored doctor.
func (h *DoctorHandler) EditDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	form, err := h.recordUsecase.DoctorForm(r.Context(), doctorID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor form retrieved successfully", form)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.DoctorForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.formUsecase.SubmitDoctor(r.Context(), &doctorID, &req)
	writeSubmission(w, result, err, http.StatusOK, "Doctor updated successfully")
}

// DeleteDoctor runs the cascading delete and returns its report either way.
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := parseID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	report, err := h.dashboardUsecase.DeleteRecord(r.Context(), entity.CollectionDoctors, doctorID)
	if err != nil {
		response.Error(w, statusOf(err), usecase.DeleteFailedMessage(entity.CollectionDoctors), report)
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", report)
}
