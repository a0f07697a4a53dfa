package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/pkg/errhttp"
	"github.com/thientruong51/asms-booking/pkg/httpx"
	pkgvalidator "github.com/thientruong51/asms-booking/pkg/validator"
	appsvcs "github.com/thientruong51/asms-booking/services/booking/application/services"
)

// ChangeQuantityRequest is the request body for the quantity endpoint.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" example:"1"`
} // @name ChangeQuantityRequest

// SetGoodsCategoriesRequest is the request body for the goods-categories endpoint.
type SetGoodsCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" validate:"required" example:"gc-fragile,gc-documents"`
} // @name SetGoodsCategoriesRequest

// SelectionHandler handles the per-session booking draft endpoints.
// All operations resolve the draft through the session customer id; mutations
// on offerings that are not selected are defined as no-ops, so these
// endpoints never fail on a stale UI click.
type SelectionHandler struct {
	svc *appsvcs.Services
}

// NewSelectionHandler returns a SelectionHandler backed by the given services.
func NewSelectionHandler(svc *appsvcs.Services) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

// Get returns the current draft.
//
//	@Summary		Get selection draft
//	@Description	Returns the session's current selections and running total
//	@Tags			booking
//	@Produce		json
//	@Success		200	{object}	appsvcs.SelectionView
//	@Failure		401	{object}	ErrorResponse
//	@Router			/booking/selection [get]
func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	view, err := h.svc.Selection.View(r.Context(), customerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Toggle flips the presence of an offering in the draft.
//
//	@Summary		Toggle offering
//	@Description	Adds the offering to the draft with quantity 1, or removes it when already selected
//	@Tags			booking
//	@Produce		json
//	@Param			offeringID	path		string	true	"Offering id"
//	@Success		200			{object}	appsvcs.SelectionView
//	@Failure		401			{object}	ErrorResponse
//	@Router			/booking/selection/{offeringID}/toggle [post]
func (h *SelectionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	view, err := h.svc.Selection.Toggle(r.Context(), customerID, chi.URLParam(r, "offeringID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// ChangeQuantity adjusts the quantity of a selected offering.
//
//	@Summary		Change quantity
//	@Description	Adjusts a selection's quantity by delta, flooring at 1; a no-op when the offering is not selected
//	@Tags			booking
//	@Accept			json
//	@Produce		json
//	@Param			offeringID	path		string					true	"Offering id"
//	@Param			request		body		ChangeQuantityRequest	true	"Quantity delta"
//	@Success		200			{object}	appsvcs.SelectionView
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/booking/selection/{offeringID}/quantity [post]
func (h *SelectionHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ChangeQuantityRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Selection.ChangeQuantity(r.Context(), customerID, chi.URLParam(r, "offeringID"), req.Delta)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// SetGoodsCategories replaces the goods-category tags of a selected offering.
//
//	@Summary		Set goods categories
//	@Description	Replaces the goods-category id set of a selection wholesale; a no-op when the offering is not selected
//	@Tags			booking
//	@Accept			json
//	@Produce		json
//	@Param			offeringID	path		string						true	"Offering id"
//	@Param			request		body		SetGoodsCategoriesRequest	true	"Goods-category ids"
//	@Success		200			{object}	appsvcs.SelectionView
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/booking/selection/{offeringID}/goods-categories [put]
func (h *SelectionHandler) SetGoodsCategories(w http.ResponseWriter, r *http.Request) {
	customerID, err := auth.CustomerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "session required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SetGoodsCategoriesRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Selection.SetGoodsCategories(r.Context(), customerID, chi.URLParam(r, "offeringID"), req.CategoryIDs)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}
