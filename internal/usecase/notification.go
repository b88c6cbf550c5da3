package usecase

import (
	"fmt"

	"clinic-manager/internal/domain/entity"
	"clinic-manager/pkg/apperror"
)

const (
	MsgNetwork         = "Unable to reach the clinic service. Please try again."
	MsgUnauthenticated = "Please log in to continue."
	MsgNotFound        = "The record no longer exists."
	MsgUnexpected      = "An unexpected error occurred. Please try again."
)

// Notification is the single top-level message shown for a failure that
// does not belong to a form field.
func Notification(err error) string {
	switch apperror.KindOf(err) {
	case apperror.KindNetwork:
		return MsgNetwork
	case apperror.KindUnauthenticated:
		return MsgUnauthenticated
	case apperror.KindNotFound:
		return MsgNotFound
	default:
		return MsgUnexpected
	}
}

// DeleteFailedMessage is the alert shown when deleting a record fails,
// cascades included.
func DeleteFailedMessage(collection entity.Collection) string {
	return fmt.Sprintf("Failed to delete %s. Please try again.", collection.Singular())
}
