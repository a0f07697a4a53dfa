package handlers

import (
	"net/http"

	"github.com/thientruong51/asms-booking/pkg/errhttp"
	"github.com/thientruong51/asms-booking/pkg/httpx"
	appsvcs "github.com/thientruong51/asms-booking/services/booking/application/services"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// OfferingResponse is one catalog offering as returned to the booking UI.
type OfferingResponse struct {
	ID         string `json:"id"          example:"box-small"`
	Label      string `json:"label"       example:"Small Box"`
	UnitPrice  int64  `json:"unit_price"  example:"100000"`
	PreviewURL string `json:"preview_url,omitempty"`
} // @name OfferingResponse

// GoodsCategoryResponse is one goods category as returned to the booking UI.
type GoodsCategoryResponse struct {
	ID          string `json:"id"   example:"gc-fragile"`
	Name        string `json:"name" example:"Fragile goods"`
	Description string `json:"description,omitempty"`
	Fragile     bool   `json:"fragile"`
	Stackable   bool   `json:"stackable"`
} // @name GoodsCategoryResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"booking not found"`
} // @name ErrorResponse

// CatalogHandler handles catalog read endpoints.
type CatalogHandler struct {
	svc *appsvcs.Services
}

// NewCatalogHandler returns a CatalogHandler backed by the given services.
func NewCatalogHandler(svc *appsvcs.Services) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Offerings lists all rentable storage-box offerings.
//
//	@Summary		List offerings
//	@Description	Lists all rentable storage-box offerings with current prices
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		OfferingResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/catalog/offerings [get]
func (h *CatalogHandler) Offerings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.svc.Catalog.Offerings(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, offeringResponse(o))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GoodsCategories lists all goods categories.
//
//	@Summary		List goods categories
//	@Description	Lists the goods categories a customer can tag a selection with
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		GoodsCategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/catalog/goods-categories [get]
func (h *CatalogHandler) GoodsCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Catalog.GoodsCategories(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]GoodsCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, GoodsCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Fragile:     c.Fragile,
			Stackable:   c.Stackable,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
}

func offeringResponse(o models.Offering) OfferingResponse {
	return OfferingResponse{
		ID:         o.ID,
		Label:      o.Label,
		UnitPrice:  o.UnitPrice,
		PreviewURL: o.PreviewURL,
	}
}
