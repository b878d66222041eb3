package dto

// AuditRequest is the payload accepted by POST /api/audit.
type AuditRequest struct {
	PlaceID string `json:"placeId"`
}

// AuditSummary is the slice of an audit the social-preview card needs.
type AuditSummary struct {
	BusinessName string `json:"businessName"`
	TotalScore   int    `json:"totalScore"`
	ScoreLabel   string `json:"scoreLabel"`
}
