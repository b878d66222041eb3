// Package places fetches and normalizes business profiles from the Google
// Places directory.
package places

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/samrahim8/curbappeal/internal/dto"
	"github.com/samrahim8/curbappeal/internal/entity"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultTimeout = 15 * time.Second
)

// ErrNotFound reports that the provider has no listing for the identifier.
var ErrNotFound = errors.New("places: place not found")

// StatusError is returned for any other non-success provider status. The
// provider message stays inside the error for logging; handlers must not
// forward it to clients.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places: provider status %s", e.Status)
}

// detailsFields is the exact field set requested from the details endpoint.
// Anything not listed here is never seen by the scoring engine.
var detailsFields = strings.Join([]string{
	"place_id",
	"name",
	"formatted_address",
	"formatted_phone_number",
	"international_phone_number",
	"website",
	"opening_hours",
	"business_status",
	"url",
	"types",
	"price_level",
	"editorial_summary",
	"photos",
	"rating",
	"user_ratings_total",
	"reviews",
	"delivery",
	"dine_in",
	"takeout",
	"curbside_pickup",
	"reservable",
	"serves_beer",
	"serves_wine",
	"serves_breakfast",
	"serves_brunch",
	"serves_lunch",
	"serves_dinner",
	"serves_vegetarian_food",
	"wheelchair_accessible_entrance",
}, ",")

// Client calls the places provider over HTTP.
type Client struct {
	http   *resty.Client
	apiKey string
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the provider base URL, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// NewClient builds a provider client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		http:   resty.New().SetBaseURL(defaultBaseURL).SetTimeout(defaultTimeout),
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Details fetches the full profile for a place and normalizes it into a
// PlaceRecord.
func (c *Client) Details(ctx context.Context, placeID string) (entity.PlaceRecord, error) {
	var out detailsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id": placeID,
			"fields":   detailsFields,
			"key":      c.apiKey,
		}).
		SetResult(&out).
		Get("/details/json")
	if err != nil {
		return entity.PlaceRecord{}, fmt.Errorf("places: details request: %w", err)
	}
	if resp.IsError() {
		return entity.PlaceRecord{}, fmt.Errorf("places: details returned http %d", resp.StatusCode())
	}

	switch out.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return entity.PlaceRecord{}, ErrNotFound
	default:
		logrus.WithFields(logrus.Fields{
			"place_id":        placeID,
			"provider_status": out.Status,
		}).Warn("places details returned non-success status")
		return entity.PlaceRecord{}, &StatusError{Status: out.Status, Message: out.ErrorMessage}
	}

	return out.Result.toRecord(), nil
}

// Autocomplete suggests establishments matching the input text. Zero results
// is not an error; the caller gets an empty slice.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]dto.Prediction, error) {
	var out autocompleteResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"input": input,
			"types": "establishment",
			"key":   c.apiKey,
		}).
		SetResult(&out).
		Get("/autocomplete/json")
	if err != nil {
		return nil, fmt.Errorf("places: autocomplete request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("places: autocomplete returned http %d", resp.StatusCode())
	}

	switch out.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []dto.Prediction{}, nil
	default:
		logrus.WithField("provider_status", out.Status).Warn("places autocomplete returned non-success status")
		return nil, &StatusError{Status: out.Status, Message: out.ErrorMessage}
	}

	predictions := make([]dto.Prediction, 0, len(out.Predictions))
	for _, p := range out.Predictions {
		predictions = append(predictions, dto.Prediction{
			PlaceID:     p.PlaceID,
			Description: p.Description,
			StructuredFormatting: dto.StructuredFormatting{
				MainText:      p.StructuredFormatting.MainText,
				SecondaryText: p.StructuredFormatting.SecondaryText,
			},
		})
	}
	return predictions, nil
}
