package handler

import (
	"net/http"
	"strconv"

	"clinic-manager/internal/delivery/dto"
	"clinic-manager/internal/usecase"
	"clinic-manager/pkg/apperror"
	"clinic-manager/pkg/response"

	"github.com/gorilla/mux"
)

// statusOf maps a classified failure onto the status returned to the
// browser.
func statusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperror.KindNetwork:
		return http.StatusBadGateway
	case apperror.KindValidation, apperror.KindUniqueViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	response.Error(w, statusOf(err), usecase.Notification(err), nil)
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeSubmission answers a form submit. Field errors and the notification
// travel in the error payload so the form can show them in place.
func writeSubmission(w http.ResponseWriter, result *dto.SubmissionResult, err error, status int, message string) {
	if err != nil {
		if apperror.IsFieldScoped(err) && len(result.FieldErrors) > 0 {
			response.Error(w, http.StatusUnprocessableEntity, "Validation failed", result)
			return
		}
		response.Error(w, statusOf(err), result.Notification, result)
		return
	}
	response.Success(w, status, message, result)
}
