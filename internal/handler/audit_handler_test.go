package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/samrahim8/curbappeal/internal/cache"
	"github.com/samrahim8/curbappeal/internal/entity"
	"github.com/samrahim8/curbappeal/internal/places"
)

type fakeFetcher struct {
	record entity.PlaceRecord
	err    error
	calls  int
}

func (f *fakeFetcher) Details(_ context.Context, placeID string) (entity.PlaceRecord, error) {
	f.calls++
	if f.err != nil {
		return entity.PlaceRecord{}, f.err
	}
	record := f.record
	record.PlaceID = placeID
	return record, nil
}

func newAuditContext(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeAudit(t *testing.T, rec *httptest.ResponseRecorder) entity.AuditResult {
	t.Helper()
	var envelope struct {
		Data entity.AuditResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope.Data
}

func TestAuditHandlerMissingPlaceID(t *testing.T) {
	e := echo.New()
	h := NewAuditHandler(&fakeFetcher{}, cache.NewMemory(), time.Hour)

	c, rec := newAuditContext(e, "/api/audit")
	_ = h.Get(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuditHandlerComputesAndCaches(t *testing.T) {
	e := echo.New()
	fetcher := &fakeFetcher{record: entity.PlaceRecord{
		Name:        "Blue Door Cafe",
		Address:     "12 High Street",
		RatingCount: 40,
		Rating:      4.5,
	}}
	h := NewAuditHandler(fetcher, cache.NewMemory(), time.Hour)

	c, rec := newAuditContext(e, "/api/audit?placeId=ChIJ123")
	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	result := decodeAudit(t, rec)
	if result.PlaceID != "ChIJ123" || result.BusinessName != "Blue Door Cafe" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.TotalScore <= 0 || result.TotalScore > 100 {
		t.Fatalf("total score out of range: %d", result.TotalScore)
	}

	// Second call must be served from cache.
	c2, rec2 := newAuditContext(e, "/api/audit?placeId=ChIJ123")
	if err := h.Get(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected single provider call, got %d", fetcher.calls)
	}
	if got := decodeAudit(t, rec2); got.TotalScore != result.TotalScore {
		t.Fatalf("cached result diverged: %d vs %d", got.TotalScore, result.TotalScore)
	}
}

func TestAuditHandlerPost(t *testing.T) {
	e := echo.New()
	fetcher := &fakeFetcher{record: entity.PlaceRecord{Name: "Solo"}}
	h := NewAuditHandler(fetcher, cache.NewMemory(), time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/api/audit", strings.NewReader(`{"placeId":"ChIJ456"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Run(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if result := decodeAudit(t, rec); result.PlaceID != "ChIJ456" {
		t.Fatalf("unexpected result: %+v", result)
	}

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/audit", strings.NewReader("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = h.Run(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("empty place id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/audit", strings.NewReader(`{"placeId":"  "}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = h.Run(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAuditHandlerNotFound(t *testing.T) {
	e := echo.New()
	h := NewAuditHandler(&fakeFetcher{err: places.ErrNotFound}, cache.NewMemory(), time.Hour)

	c, rec := newAuditContext(e, "/api/audit?placeId=nope")
	_ = h.Get(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuditHandlerProviderFailure(t *testing.T) {
	e := echo.New()
	h := NewAuditHandler(&fakeFetcher{err: errors.New("upstream down")}, cache.NewMemory(), time.Hour)

	c, rec := newAuditContext(e, "/api/audit?placeId=ChIJ123")
	_ = h.Get(c)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "upstream down") {
		t.Fatalf("provider error detail must not leak to clients: %s", rec.Body.String())
	}
}
