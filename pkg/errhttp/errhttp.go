// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/thientruong51/asms-booking/pkg/httpx"
	bookingdomain "github.com/thientruong51/asms-booking/services/booking/domain"
	notificationdomain "github.com/thientruong51/asms-booking/services/notification/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, bookingdomain.ErrBookingNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, bookingdomain.ErrOfferingNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, notificationdomain.ErrNotificationNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, bookingdomain.ErrEmptySelection):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
