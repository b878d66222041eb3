package places

import (
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/samrahim8/curbappeal/internal/entity"
)

// detailsResponse is the provider envelope for the details endpoint.
type detailsResponse struct {
	Result       placeDetails `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
}

type openingHours struct {
	WeekdayText []string `json:"weekday_text"`
	OpenNow     *bool    `json:"open_now"`
}

type editorialSummary struct {
	Overview string `json:"overview"`
}

type reviewPayload struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// placeDetails mirrors the provider's details payload. Optionals are pointers
// where the distinction between absent and false/zero matters downstream.
type placeDetails struct {
	PlaceID                      string            `json:"place_id"`
	Name                         string            `json:"name"`
	FormattedAddress             string            `json:"formatted_address"`
	FormattedPhoneNumber         string            `json:"formatted_phone_number"`
	InternationalPhoneNumber     string            `json:"international_phone_number"`
	Website                      string            `json:"website"`
	OpeningHours                 *openingHours     `json:"opening_hours"`
	Photos                       []entity.Photo    `json:"photos"`
	Rating                       float64           `json:"rating"`
	UserRatingsTotal             int               `json:"user_ratings_total"`
	Reviews                      []reviewPayload   `json:"reviews"`
	Types                        []string          `json:"types"`
	BusinessStatus               string            `json:"business_status"`
	URL                          string            `json:"url"`
	PriceLevel                   *int              `json:"price_level"`
	EditorialSummary             *editorialSummary `json:"editorial_summary"`
	Delivery                     *bool             `json:"delivery"`
	DineIn                       *bool             `json:"dine_in"`
	Takeout                      *bool             `json:"takeout"`
	CurbsidePickup               *bool             `json:"curbside_pickup"`
	Reservable                   *bool             `json:"reservable"`
	ServesBeer                   *bool             `json:"serves_beer"`
	ServesWine                   *bool             `json:"serves_wine"`
	ServesBreakfast              *bool             `json:"serves_breakfast"`
	ServesBrunch                 *bool             `json:"serves_brunch"`
	ServesLunch                  *bool             `json:"serves_lunch"`
	ServesDinner                 *bool             `json:"serves_dinner"`
	ServesVegetarianFood         *bool             `json:"serves_vegetarian_food"`
	WheelchairAccessibleEntrance *bool             `json:"wheelchair_accessible_entrance"`
}

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		PlaceID              string `json:"place_id"`
		Description          string `json:"description"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

func (d placeDetails) toRecord() entity.PlaceRecord {
	record := entity.PlaceRecord{
		PlaceID:        d.PlaceID,
		Name:           d.Name,
		Address:        strings.TrimSpace(d.FormattedAddress),
		Phone:          displayPhone(d.FormattedPhoneNumber, d.InternationalPhoneNumber),
		Website:        normalizeWebsite(d.Website),
		Categories:     d.Types,
		PriceLevel:     d.PriceLevel,
		Photos:         d.Photos,
		Rating:         d.Rating,
		RatingCount:    d.UserRatingsTotal,
		BusinessStatus: d.BusinessStatus,
		GoogleMapsURL:  d.URL,
		Attributes: entity.ServiceAttributes{
			Delivery:                     d.Delivery,
			DineIn:                       d.DineIn,
			Takeout:                      d.Takeout,
			CurbsidePickup:               d.CurbsidePickup,
			Reservable:                   d.Reservable,
			ServesBeer:                   d.ServesBeer,
			ServesWine:                   d.ServesWine,
			ServesBreakfast:              d.ServesBreakfast,
			ServesBrunch:                 d.ServesBrunch,
			ServesLunch:                  d.ServesLunch,
			ServesDinner:                 d.ServesDinner,
			ServesVegetarianFood:         d.ServesVegetarianFood,
			WheelchairAccessibleEntrance: d.WheelchairAccessibleEntrance,
		},
	}

	if d.OpeningHours != nil {
		record.WeekdayHours = d.OpeningHours.WeekdayText
	}
	if d.EditorialSummary != nil {
		record.Description = strings.TrimSpace(d.EditorialSummary.Overview)
	}

	for _, r := range d.Reviews {
		record.RecentReviews = append(record.RecentReviews, entity.Review{
			AuthorName: r.AuthorName,
			Rating:     r.Rating,
			Text:       r.Text,
			Time:       r.Time,
		})
	}

	return record
}

// displayPhone prefers the locally formatted number the provider supplies.
// When only the international form exists it is reparsed so the output uses a
// consistent international layout.
func displayPhone(formatted, international string) string {
	formatted = strings.TrimSpace(formatted)
	if formatted != "" {
		return formatted
	}
	international = strings.TrimSpace(international)
	if international == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(international, "")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return international
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}

// normalizeWebsite converts internationalized hosts to their punycode form so
// the website renders and links consistently downstream.
func normalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host, err := idna.Lookup.ToASCII(parsed.Hostname())
	if err != nil || host == parsed.Hostname() {
		return raw
	}
	if port := parsed.Port(); port != "" {
		host = host + ":" + port
	}
	parsed.Host = host
	return parsed.String()
}
