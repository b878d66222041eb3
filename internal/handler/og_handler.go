package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/samrahim8/curbappeal/internal/middleware"
)

// Fallback card values when no audit can be fetched.
const (
	placeholderName  = "Your Business Name"
	placeholderScore = 75
	placeholderLabel = "Good"
)

var cardTemplate = template.Must(template.New("card").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="630" viewBox="0 0 1200 630">
  <rect width="1200" height="630" fill="#FDFBF8"/>
  <text x="600" y="150" text-anchor="middle" font-family="system-ui, sans-serif" font-size="44" font-weight="700" fill="#1C1917">{{.BusinessName}}</text>
  <circle cx="600" cy="340" r="120" fill="none" stroke="#E7E5E4" stroke-width="18"/>
  <circle cx="600" cy="340" r="120" fill="none" stroke="{{.Color}}" stroke-width="18" stroke-linecap="round" stroke-dasharray="{{.Dash}} 754" transform="rotate(-90 600 340)"/>
  <text x="600" y="360" text-anchor="middle" font-family="system-ui, sans-serif" font-size="84" font-weight="800" fill="#1C1917">{{.Score}}</text>
  <text x="600" y="520" text-anchor="middle" font-family="system-ui, sans-serif" font-size="36" fill="{{.Color}}">{{.Label}}</text>
  <text x="600" y="580" text-anchor="middle" font-family="system-ui, sans-serif" font-size="24" fill="#78716C">Curb Appeal — Google presence audit</text>
</svg>
`))

type cardData struct {
	BusinessName string
	Score        int
	Label        string
	Color        string
	Dash         int
}

// OGHandler renders the shareable social-preview score card.
type OGHandler struct {
	audits AuditFetcher
}

// NewOGHandler creates a card handler backed by the audit endpoint.
func NewOGHandler(audits AuditFetcher) *OGHandler {
	return &OGHandler{audits: audits}
}

// Card handles GET /api/og requests. Any failure to fetch the audit falls back
// to placeholder values; the card itself always renders.
func (h *OGHandler) Card(c echo.Context) error {
	data := cardData{
		BusinessName: placeholderName,
		Score:        placeholderScore,
		Label:        placeholderLabel,
	}

	if placeID := strings.TrimSpace(c.QueryParam("placeId")); placeID != "" {
		summary, err := h.audits.FetchAudit(c.Request().Context(), placeID, middleware.RequestIDFromContext(c))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.RequestIDFromContext(c),
				"place_id":   placeID,
			}).WithError(err).Warn("falling back to placeholder score card")
		} else {
			data.BusinessName = summary.BusinessName
			data.Score = summary.TotalScore
			data.Label = summary.ScoreLabel
		}
	}

	data.Color = cardColor(data.Score)
	// Arc length over a circumference of 2*pi*120 ≈ 754.
	data.Dash = data.Score * 754 / 100

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return Error(c, http.StatusInternalServerError, "failed to render card")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func cardColor(score int) string {
	switch {
	case score <= 40:
		return "#EF4444"
	case score <= 60:
		return "#F59E0B"
	default:
		return "#22C55E"
	}
}
