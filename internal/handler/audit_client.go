package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/samrahim8/curbappeal/internal/dto"
)

// AuditFetcher retrieves a previously computed audit through the service's
// own HTTP interface.
type AuditFetcher interface {
	FetchAudit(ctx context.Context, placeID, requestID string) (dto.AuditSummary, error)
}

// AuditClient calls the audit endpoint the same way an external consumer does,
// so the social card always reflects what the API actually serves.
type AuditClient struct {
	client  *http.Client
	baseURL string
}

// NewAuditClient builds an audit client, auto-configuring an ID token client
// when no explicit client is provided (Cloud Run service-to-service calls).
func NewAuditClient(client *http.Client, baseURL string) *AuditClient {
	if baseURL == "" {
		panic("baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 10 * time.Second}
		} else {
			client = idc
		}
	}
	return &AuditClient{client: client, baseURL: baseURL}
}

// FetchAudit fetches the audit for a place and returns the summary fields.
func (c *AuditClient) FetchAudit(ctx context.Context, placeID, requestID string) (dto.AuditSummary, error) {
	target := c.baseURL + "/api/audit?placeId=" + url.QueryEscape(placeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return dto.AuditSummary{}, fmt.Errorf("failed to create audit request: %w", err)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return dto.AuditSummary{}, fmt.Errorf("audit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return dto.AuditSummary{}, fmt.Errorf("audit error: %s", extractAuditError(resp.Body))
	}

	var envelope struct {
		Data    dto.AuditSummary `json:"data"`
		Message string           `json:"message"`
		Status  string           `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil && err != io.EOF {
		return dto.AuditSummary{}, fmt.Errorf("could not decode audit response: %w", err)
	}
	if envelope.Status == "error" {
		return dto.AuditSummary{}, fmt.Errorf("audit error: %s", envelope.Message)
	}
	return envelope.Data, nil
}

func extractAuditError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "audit endpoint returned an error"
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(data)
}

var _ AuditFetcher = (*AuditClient)(nil)
