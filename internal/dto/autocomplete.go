package dto

// StructuredFormatting splits an autocomplete prediction into the business
// name and the trailing locality text.
type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// Prediction is one establishment suggested by the places provider.
type Prediction struct {
	PlaceID              string               `json:"place_id"`
	Description          string               `json:"description"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
}

// AutocompleteResponse is the payload returned by the autocomplete endpoint.
// Predictions is always non-nil so clients see an empty list, not null.
type AutocompleteResponse struct {
	Predictions []Prediction `json:"predictions"`
}
