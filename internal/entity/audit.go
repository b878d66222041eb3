package entity

import "time"

// Severity orders action items from most to least urgent.
type Severity string

const (
	SeverityCritical   Severity = "critical"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Category names the five audited areas.
type Category string

const (
	CategoryCompleteness Category = "completeness"
	CategoryPhotos       Category = "photos"
	CategoryReviews      Category = "reviews"
	CategoryResponses    Category = "responses"
	CategoryActivity     Category = "activity"
)

// Score labels, keyed on the total-score bands.
const (
	LabelNeedsWork    = "Needs work"
	LabelGettingThere = "Getting there"
	LabelGood         = "Good"
	LabelExcellent    = "Excellent"
)

// CompletenessDetails records which of the eight profile fields are present.
type CompletenessDetails struct {
	HasName        bool `json:"hasName"`
	HasAddress     bool `json:"hasAddress"`
	HasPhone       bool `json:"hasPhone"`
	HasWebsite     bool `json:"hasWebsite"`
	HasHours       bool `json:"hasHours"`
	HasCategory    bool `json:"hasCategory"`
	HasDescription bool `json:"hasDescription"`
	HasPriceLevel  bool `json:"hasPriceLevel"`
}

// CompletenessBreakdown is the profile-completeness sub-score.
type CompletenessBreakdown struct {
	Score      int                 `json:"score"`
	MaxScore   int                 `json:"maxScore"`
	Percentage int                 `json:"percentage"`
	Details    CompletenessDetails `json:"details"`
}

// PhotosBreakdown is the photo-count sub-score.
type PhotosBreakdown struct {
	Score          int    `json:"score"`
	MaxScore       int    `json:"maxScore"`
	Percentage     int    `json:"percentage"`
	Count          int    `json:"count"`
	Recommendation string `json:"recommendation"`
}

// ReviewsBreakdown is the review sub-score (count, rating and recency signals).
type ReviewsBreakdown struct {
	Score          int     `json:"score"`
	MaxScore       int     `json:"maxScore"`
	Percentage     int     `json:"percentage"`
	Count          int     `json:"count"`
	AverageRating  float64 `json:"averageRating"`
	Recommendation string  `json:"recommendation"`
}

// ResponsesBreakdown is the review-response sub-score. The provider exposes no
// response data, so the score is fixed neutral credit.
type ResponsesBreakdown struct {
	Score          int     `json:"score"`
	MaxScore       int     `json:"maxScore"`
	Percentage     int     `json:"percentage"`
	ResponseRate   float64 `json:"responseRate"`
	Recommendation string  `json:"recommendation"`
}

// ActivityBreakdown is the posting-activity sub-score, also fixed neutral
// credit for lack of a provider signal.
type ActivityBreakdown struct {
	Score          int    `json:"score"`
	MaxScore       int    `json:"maxScore"`
	Percentage     int    `json:"percentage"`
	Recommendation string `json:"recommendation"`
}

// ScoreBreakdown groups the five sub-scores.
type ScoreBreakdown struct {
	Completeness CompletenessBreakdown `json:"completeness"`
	Photos       PhotosBreakdown       `json:"photos"`
	Reviews      ReviewsBreakdown      `json:"reviews"`
	Responses    ResponsesBreakdown    `json:"responses"`
	Activity     ActivityBreakdown     `json:"activity"`
}

// ActionItem is one piece of prioritized remediation advice.
type ActionItem struct {
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	HowToFix    string   `json:"howToFix"`
}

// AuditAttributes echoes the service flags relevant to presentation.
type AuditAttributes struct {
	Delivery             *bool `json:"delivery,omitempty"`
	DineIn               *bool `json:"dineIn,omitempty"`
	Takeout              *bool `json:"takeout,omitempty"`
	CurbsidePickup       *bool `json:"curbsidePickup,omitempty"`
	Reservable           *bool `json:"reservable,omitempty"`
	WheelchairAccessible *bool `json:"wheelchairAccessible,omitempty"`
}

// AuditResult is the engine's complete output for one business. It is a fresh
// value on every call; nothing in it is shared or mutated afterwards.
type AuditResult struct {
	PlaceID        string          `json:"placeId"`
	BusinessName   string          `json:"businessName"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Website        string          `json:"website"`
	Category       string          `json:"category"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	PhotoCount     int             `json:"photoCount"`
	TotalScore     int             `json:"totalScore"`
	ScoreLabel     string          `json:"scoreLabel"`
	ScoreColor     string          `json:"scoreColor"`
	Breakdown      ScoreBreakdown  `json:"breakdown"`
	ActionItems    []ActionItem    `json:"actionItems"`
	Summary        string          `json:"summary"`
	GeneratedAt    time.Time       `json:"createdAt"`
	PriceLevel     *int            `json:"priceLevel,omitempty"`
	Description    string          `json:"description,omitempty"`
	BusinessStatus string          `json:"businessStatus,omitempty"`
	GoogleMapsURL  string          `json:"googleMapsUrl,omitempty"`
	Attributes     AuditAttributes `json:"attributes"`
}
