package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thientruong51/asms-booking/pkg/auth"
	"github.com/thientruong51/asms-booking/pkg/config"
	"github.com/thientruong51/asms-booking/pkg/logger"
	appsvcs "github.com/thientruong51/asms-booking/services/booking/application/services"
	"github.com/thientruong51/asms-booking/services/booking/domain/models"
)

// stubCatalogRepo serves a fixed catalog without a database.
type stubCatalogRepo struct{}

func (s *stubCatalogRepo) FindOfferings(_ context.Context) ([]models.Offering, error) {
	return []models.Offering{
		{ID: "box-small", Label: "Small Box", UnitPrice: 100000},
		{ID: "box-large", Label: "Large Box", UnitPrice: 250000},
	}, nil
}

func (s *stubCatalogRepo) GetOfferingByID(_ context.Context, id string) (*models.Offering, error) {
	return nil, errors.New("not found")
}

func (s *stubCatalogRepo) FindGoodsCategories(_ context.Context) ([]models.GoodsCategory, error) {
	return []models.GoodsCategory{
		{ID: "gc-fragile", Name: "Fragile goods", Fragile: true},
	}, nil
}

// newTestRouter mounts the selection routes over a stub catalog, with the
// session middleware replaced by direct context injection.
func newTestRouter(t *testing.T, customerID uuid.UUID) chi.Router {
	t.Helper()

	log := logger.New(&config.Config{LogLevel: "error"})
	catalog := appsvcs.NewCatalogService(&stubCatalogRepo{})
	svcs := &appsvcs.Services{
		Catalog:   catalog,
		Selection: appsvcs.NewSelectionService(catalog, nil, log),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithCustomerID(req.Context(), customerID)))
		})
	})

	selection := NewSelectionHandler(svcs)
	r.Route("/booking/selection", func(r chi.Router) {
		r.Get("/", selection.Get)
		r.Post("/{offeringID}/toggle", selection.Toggle)
		r.Post("/{offeringID}/quantity", selection.ChangeQuantity)
		r.Put("/{offeringID}/goods-categories", selection.SetGoodsCategories)
	})
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path, body string) (*httptest.ResponseRecorder, appsvcs.SelectionView) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var view appsvcs.SelectionView
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
			t.Fatalf("decode view: %v. Body: %s", err, w.Body.String())
		}
	}
	return w, view
}

func TestSelectionHandler_BookingFlow(t *testing.T) {
	router := newTestRouter(t, uuid.New())

	w, view := doJSON(t, router, http.MethodPost, "/booking/selection/box-small/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	if len(view.Items) != 1 || view.Total != 100000 {
		t.Fatalf("after toggle: items=%d total=%d, want 1 and 100000", len(view.Items), view.Total)
	}

	w, view = doJSON(t, router, http.MethodPost, "/booking/selection/box-small/quantity", `{"delta":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("quantity status = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	if view.Total != 300000 {
		t.Fatalf("after +2: total=%d, want 300000", view.Total)
	}

	w, view = doJSON(t, router, http.MethodPut, "/booking/selection/box-small/goods-categories", `{"category_ids":["gc-fragile","gc-unknown"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("categories status = %d, want 200. Body: %s", w.Code, w.Body.String())
	}
	if got := view.Items[0].GoodsCategoryIDs; len(got) != 2 {
		t.Errorf("category ids = %v, want both kept", got)
	}
	if got := view.Items[0].GoodsCategoryNames; len(got) != 1 || got[0] != "Fragile goods" {
		t.Errorf("category names = %v, want only the known name", got)
	}

	w, view = doJSON(t, router, http.MethodPost, "/booking/selection/box-small/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle off status = %d", w.Code)
	}
	if len(view.Items) != 0 || view.Total != 0 {
		t.Fatalf("after toggle off: items=%d total=%d, want empty and 0", len(view.Items), view.Total)
	}
}

func TestSelectionHandler_NoOpsOverHTTP(t *testing.T) {
	router := newTestRouter(t, uuid.New())

	// Mutations on an unselected offering succeed and leave the draft empty.
	w, view := doJSON(t, router, http.MethodPost, "/booking/selection/box-large/quantity", `{"delta":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("quantity on unselected status = %d, want 200", w.Code)
	}
	if len(view.Items) != 0 {
		t.Errorf("quantity on unselected mutated the draft: %v", view.Items)
	}

	w, view = doJSON(t, router, http.MethodPut, "/booking/selection/box-large/goods-categories", `{"category_ids":["gc-fragile"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("categories on unselected status = %d, want 200", w.Code)
	}
	if len(view.Items) != 0 {
		t.Errorf("categories on unselected mutated the draft: %v", view.Items)
	}

	// Unknown offering toggles in at price 0.
	w, view = doJSON(t, router, http.MethodPost, "/booking/selection/no-such-box/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle unknown status = %d, want 200", w.Code)
	}
	if len(view.Items) != 1 || view.Total != 0 {
		t.Errorf("unknown offering: items=%d total=%d, want 1 at price 0", len(view.Items), view.Total)
	}
}

func TestSelectionHandler_InvalidBody(t *testing.T) {
	router := newTestRouter(t, uuid.New())

	w, _ := doJSON(t, router, http.MethodPost, "/booking/selection/box-small/quantity", "{bad json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status = %d, want 400", w.Code)
	}
}

func TestSelectionHandler_NoSession(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	catalog := appsvcs.NewCatalogService(&stubCatalogRepo{})
	svcs := &appsvcs.Services{
		Catalog:   catalog,
		Selection: appsvcs.NewSelectionService(catalog, nil, log),
	}
	selection := NewSelectionHandler(svcs)

	w := httptest.NewRecorder()
	selection.Get(w, httptest.NewRequest(http.MethodGet, "/booking/selection", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without session = %d, want 401", w.Code)
	}
}
