package handler

import (
	"net/http"
	"strconv"

	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/response"
)

type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
}

func NewActivityHandler(activityUsecase usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
	}
}

func (h *ActivityHandler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	events := h.activityUsecase.Recent(r.Context(), limit)
	response.Success(w, http.StatusOK, "Activity retrieved successfully", events)
}
