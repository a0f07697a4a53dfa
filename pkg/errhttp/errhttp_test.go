package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingdomain "github.com/thientruong51/asms-booking/services/booking/domain"
	notificationdomain "github.com/thientruong51/asms-booking/services/notification/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrBookingNotFound", bookingdomain.ErrBookingNotFound, http.StatusNotFound},
		{"ErrOfferingNotFound", bookingdomain.ErrOfferingNotFound, http.StatusNotFound},
		{"ErrNotificationNotFound", notificationdomain.ErrNotificationNotFound, http.StatusNotFound},
		{"ErrEmptySelection", bookingdomain.ErrEmptySelection, http.StatusUnprocessableEntity},
		{"wrapped ErrBookingNotFound", fmt.Errorf("get booking: %w", bookingdomain.ErrBookingNotFound), http.StatusNotFound},
		{"wrapped ErrEmptySelection", fmt.Errorf("%w: no items", bookingdomain.ErrEmptySelection), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, bookingdomain.ErrBookingNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, notificationdomain.ErrNotificationNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
