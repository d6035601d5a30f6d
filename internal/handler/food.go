package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alimenta/alimenta/internal/handler/dto"
	"github.com/alimenta/alimenta/internal/model"
)

// FoodService is the business surface the food handler depends on.
type FoodService interface {
	ListFoodItems(ctx context.Context, nameFilter string) ([]*model.FoodItem, error)
}

// FoodHandler handles HTTP requests for food lookups.
type FoodHandler struct {
	svc    FoodService
	logger *slog.Logger
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(svc FoodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/alimentos.
// The auth gate runs before this handler; an optional nome query
// parameter narrows the catalog by case-sensitive substring match.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	nameFilter := r.URL.Query().Get("nome")

	items, err := h.svc.ListFoodItems(r.Context(), nameFilter)
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFoodItemsResponse(items))
}
