package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/samrahim8/curbappeal/internal/cache"
	"github.com/samrahim8/curbappeal/internal/dto"
	"github.com/samrahim8/curbappeal/internal/entity"
	"github.com/samrahim8/curbappeal/internal/metrics"
	"github.com/samrahim8/curbappeal/internal/middleware"
	"github.com/samrahim8/curbappeal/internal/places"
	"github.com/samrahim8/curbappeal/internal/service/scoring"
)

// PlaceFetcher supplies normalized place records by identifier.
type PlaceFetcher interface {
	Details(ctx context.Context, placeID string) (entity.PlaceRecord, error)
}

// AuditHandler fetches a place record, runs the scoring engine and serves the
// result, caching it per place identifier.
type AuditHandler struct {
	fetcher PlaceFetcher
	cache   cache.Cache
	ttl     time.Duration
	now     func() time.Time
}

// NewAuditHandler creates an audit handler with the given cache TTL.
func NewAuditHandler(fetcher PlaceFetcher, store cache.Cache, ttl time.Duration) *AuditHandler {
	return &AuditHandler{
		fetcher: fetcher,
		cache:   store,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get handles GET /api/audit?placeId=… requests.
func (h *AuditHandler) Get(c echo.Context) error {
	placeID := strings.TrimSpace(c.QueryParam("placeId"))
	return h.audit(c, placeID)
}

// Run handles POST /api/audit requests carrying a JSON body.
func (h *AuditHandler) Run(c echo.Context) error {
	var req dto.AuditRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	return h.audit(c, strings.TrimSpace(req.PlaceID))
}

func (h *AuditHandler) audit(c echo.Context, placeID string) error {
	if placeID == "" {
		return Error(c, http.StatusBadRequest, "placeId is required")
	}

	start := h.now()
	defer func() {
		metrics.AuditDuration.Observe(h.now().Sub(start).Seconds())
	}()

	ctx := c.Request().Context()
	rid := middleware.RequestIDFromContext(c)

	if cached, err := h.cache.Get(ctx, placeID); err == nil {
		var result entity.AuditResult
		if err := json.Unmarshal(cached, &result); err == nil {
			metrics.AuditsTotal.WithLabelValues("cache").Inc()
			return Success(c, http.StatusOK, "audit retrieved", result)
		}
		// Unreadable entry: fall through and recompute.
		logrus.WithFields(logrus.Fields{"request_id": rid, "place_id": placeID}).
			Warn("discarding malformed cache entry")
	} else if !errors.Is(err, cache.ErrMiss) {
		logrus.WithFields(logrus.Fields{"request_id": rid, "place_id": placeID}).
			WithError(err).Warn("audit cache read failed")
	}

	record, err := h.fetcher.Details(ctx, placeID)
	if err != nil {
		if errors.Is(err, places.ErrNotFound) {
			metrics.AuditFailures.WithLabelValues("not_found").Inc()
			return Error(c, http.StatusNotFound, "business not found")
		}
		metrics.AuditFailures.WithLabelValues("provider").Inc()
		logrus.WithFields(logrus.Fields{"request_id": rid, "place_id": placeID}).
			WithError(err).Error("failed to fetch business details")
		return Error(c, http.StatusBadGateway, "failed to fetch business details")
	}

	result := scoring.Calculate(record, h.now())
	metrics.AuditsTotal.WithLabelValues("provider").Inc()

	if encoded, err := json.Marshal(result); err == nil {
		if err := h.cache.Set(ctx, placeID, encoded, h.ttl); err != nil {
			logrus.WithFields(logrus.Fields{"request_id": rid, "place_id": placeID}).
				WithError(err).Warn("audit cache write failed")
		}
	}

	return Success(c, http.StatusOK, "audit computed", result)
}
