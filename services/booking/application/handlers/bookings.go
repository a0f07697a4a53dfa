package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/pkg/errhttp"
	"github.com/thientruong51/asms-booking/pkg/httpx"
	appsvcs "github.com/thientruong51/asms-booking/services/booking/application/services"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
	"github.com/thientruong51/asms-booking/services/booking/domain/repositories"
)

// BookingLineResponse is one offering line within a booking response.
type BookingLineResponse struct {
	OfferingID       string   `json:"offering_id"        example:"off-small-unit"`
	Quantity         int      `json:"quantity"           example:"2"`
	UnitPrice        int64    `json:"unit_price"         example:"150000"`
	GoodsCategoryIDs []string `json:"goods_category_ids" example:"gc-fragile"`
} // @name BookingLineResponse

// BookingResponse is the representation of a submitted booking.
type BookingResponse struct {
	ID        uuid.UUID             `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	OrderCode string                `json:"order_code" example:"ORD-1A2B3C4D"`
	Lines     []BookingLineResponse `json:"lines"`
	Total     int64                 `json:"total"      example:"300000"`
	CreatedAt time.Time             `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name BookingResponse

// BookingListResponse wraps a paginated booking list.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"  example:"7"`
	Limit    int               `json:"limit"  example:"20"`
	Offset   int               `json:"offset" example:"0"`
} // @name BookingListResponse

// BookingHandler handles booking submission and retrieval.
type BookingHandler struct {
	svc *appsvcs.Services
}

// NewBookingHandler returns a BookingHandler backed by the given services.
func NewBookingHandler(svc *appsvcs.Services) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Submit freezes the session's draft into a booking.
//
//	@Summary		Submit booking
//	@Description	Freezes the current selection draft into a booking with its price snapshots, then clears the draft
//	@Tags			booking
//	@Produce		json
//	@Success		201	{object}	BookingResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/booking [post]
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	booking, err := h.svc.Booking.Submit(r.Context(), customerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toBookingResponse(booking))
}

// Get returns one of the session's bookings by id.
//
//	@Summary		Get booking
//	@Description	Returns a single booking owned by the session customer
//	@Tags			booking
//	@Produce		json
//	@Param			bookingID	path		string	true	"Booking id"
//	@Success		200			{object}	BookingResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/booking/{bookingID} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "bookingID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.svc.Booking.GetByID(r.Context(), customerID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBookingResponse(booking))
}

// List returns the session's bookings, newest first.
//
//	@Summary		List bookings
//	@Description	Returns a paginated list of the session customer's bookings, newest first
//	@Tags			booking
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{object}	BookingListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/booking [get]
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	opts := queryOptsFromRequest(r)
	bookings, total, err := h.svc.Booking.List(r.Context(), customerID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    total,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(b))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func queryOptsFromRequest(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: 20, Offset: 0}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		opts.Limit = min(v, 100)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}

func toBookingResponse(b *models.Booking) BookingResponse {
	lines := make([]BookingLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BookingLineResponse{
			OfferingID:       l.OfferingID,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			GoodsCategoryIDs: l.GoodsCategoryIDs,
		})
	}
	return BookingResponse{
		ID:        b.ID,
		OrderCode: b.OrderCode,
		Lines:     lines,
		Total:     b.Total,
		CreatedAt: b.CreatedAt,
	}
}
