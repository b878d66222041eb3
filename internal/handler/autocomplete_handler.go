package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/samrahim8/curbappeal/internal/dto"
	"github.com/samrahim8/curbappeal/internal/metrics"
	"github.com/samrahim8/curbappeal/internal/middleware"
)

// PlaceSearcher suggests establishments for partial input.
type PlaceSearcher interface {
	Autocomplete(ctx context.Context, input string) ([]dto.Prediction, error)
}

// AutocompleteHandler passes search input through to the places provider.
type AutocompleteHandler struct {
	searcher PlaceSearcher
}

// NewAutocompleteHandler creates a new handler instance.
func NewAutocompleteHandler(searcher PlaceSearcher) *AutocompleteHandler {
	return &AutocompleteHandler{searcher: searcher}
}

// Search handles GET /api/places/autocomplete requests. Empty input is not an
// error; the caller simply gets no predictions.
func (h *AutocompleteHandler) Search(c echo.Context) error {
	input := strings.TrimSpace(c.QueryParam("input"))
	if input == "" {
		return Success(c, http.StatusOK, "no input", dto.AutocompleteResponse{Predictions: []dto.Prediction{}})
	}

	metrics.AutocompleteRequests.Inc()

	predictions, err := h.searcher.Autocomplete(c.Request().Context(), input)
	if err != nil {
		logrus.WithField("request_id", middleware.RequestIDFromContext(c)).
			WithError(err).Error("autocomplete lookup failed")
		return Error(c, http.StatusBadGateway, "failed to search")
	}

	return Success(c, http.StatusOK, "predictions retrieved", dto.AutocompleteResponse{Predictions: predictions})
}
