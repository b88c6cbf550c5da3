package handler

import (
	"net/http"

	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Home serves the dashboard. A msg query parameter, set by the route guard,
// is echoed back.
func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.Load(r.Context(), r.URL.Query().Get("msg"))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
