// Package scoring turns a normalized place record into a presence-quality
// audit: a 0-100 composite score, a per-category breakdown and prioritized
// action items. It is a pure function of its inputs and performs no I/O.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samrahim8/curbappeal/internal/entity"
)

// Category weights. Each sub-scorer's maximum equals its weight times 100, so
// the weighted total reduces to a plain sum of the sub-scores.
const (
	weightCompleteness = 0.25
	weightPhotos       = 0.20
	weightReviews      = 0.25
	weightResponses    = 0.15
	weightActivity     = 0.15

	maxCompleteness = 25
	maxPhotos       = 20
	maxReviews      = 25
	maxResponses    = 15
	maxActivity     = 15
)

const (
	day        = 24 * time.Hour
	thirtyDays = 30 * day
	ninetyDays = 90 * day
)

// Calculate audits the given place record. The clock is passed in so repeated
// calls over the same record produce identical results apart from GeneratedAt.
func Calculate(place entity.PlaceRecord, now time.Time) entity.AuditResult {
	breakdown := entity.ScoreBreakdown{
		Completeness: scoreCompleteness(place),
		Photos:       scorePhotos(place),
		Reviews:      scoreReviews(place, now),
		Responses:    scoreResponses(place),
		Activity:     scoreActivity(),
	}

	total := breakdown.Completeness.Score +
		breakdown.Photos.Score +
		breakdown.Reviews.Score +
		breakdown.Responses.Score +
		breakdown.Activity.Score

	items := buildActionItems(place, breakdown, now)

	return entity.AuditResult{
		PlaceID:        place.PlaceID,
		BusinessName:   place.Name,
		Address:        place.Address,
		Phone:          place.Phone,
		Website:        place.Website,
		Category:       primaryCategory(place.Categories),
		Rating:         place.Rating,
		ReviewCount:    place.RatingCount,
		PhotoCount:     len(place.Photos),
		TotalScore:     total,
		ScoreLabel:     scoreLabel(total),
		ScoreColor:     scoreColor(total),
		Breakdown:      breakdown,
		ActionItems:    items,
		Summary:        summarize(total, items),
		GeneratedAt:    now,
		PriceLevel:     place.PriceLevel,
		Description:    place.Description,
		BusinessStatus: place.BusinessStatus,
		GoogleMapsURL:  place.GoogleMapsURL,
		Attributes: entity.AuditAttributes{
			Delivery:             place.Attributes.Delivery,
			DineIn:               place.Attributes.DineIn,
			Takeout:              place.Attributes.Takeout,
			CurbsidePickup:       place.Attributes.CurbsidePickup,
			Reservable:           place.Attributes.Reservable,
			WheelchairAccessible: place.Attributes.WheelchairAccessibleEntrance,
		},
	}
}

func scoreCompleteness(place entity.PlaceRecord) entity.CompletenessBreakdown {
	details := entity.CompletenessDetails{
		HasName:        place.Name != "",
		HasAddress:     place.Address != "",
		HasPhone:       place.Phone != "",
		HasWebsite:     place.Website != "",
		HasHours:       len(place.WeekdayHours) > 0,
		HasCategory:    len(place.Categories) > 0,
		HasDescription: place.Description != "",
		HasPriceLevel:  place.PriceLevel != nil,
	}

	present := 0
	for _, ok := range []bool{
		details.HasName, details.HasAddress, details.HasPhone, details.HasWebsite,
		details.HasHours, details.HasCategory, details.HasDescription, details.HasPriceLevel,
	} {
		if ok {
			present++
		}
	}

	const fields = 8
	return entity.CompletenessBreakdown{
		Score:      roundRatio(present, fields, maxCompleteness),
		MaxScore:   maxCompleteness,
		Percentage: roundRatio(present, fields, 100),
		Details:    details,
	}
}

func scorePhotos(place entity.PlaceRecord) entity.PhotosBreakdown {
	count := len(place.Photos)

	var score int
	var recommendation string
	switch {
	case count == 0:
		score = 0
		recommendation = "You have no photos. Businesses with 10+ photos get 35% more clicks. Add photos of your team, your work, and your location."
	case count <= 2:
		score = 4
		recommendation = fmt.Sprintf("You have %d photo%s. Add at least 8 more to show customers what you're about.", count, plural(count))
	case count <= 5:
		score = 8
		recommendation = fmt.Sprintf("You have %d photos. You're getting there, but 10+ photos is the sweet spot. Show more of your work.", count)
	case count <= 10:
		score = 14
		recommendation = fmt.Sprintf("You have %d photos. Good! Consider adding a few more recent ones to keep your listing fresh.", count)
	default:
		score = 20
		recommendation = fmt.Sprintf("You have %d photos. Great job! Just make sure they're recent and high quality.", count)
	}

	return entity.PhotosBreakdown{
		Score:          score,
		MaxScore:       maxPhotos,
		Percentage:     roundRatio(score, maxPhotos, 100),
		Count:          count,
		Recommendation: recommendation,
	}
}

// reviewCountScore maps the total review count onto a 0-10 scale. The
// breakpoints follow local-search research: the average business sits near 39
// reviews, consumers want 40+ before trusting a rating, and top-ranked
// listings carry 240+.
func reviewCountScore(count int) int {
	switch {
	case count == 0:
		return 0
	case count < 10:
		return 1
	case count < 25:
		return 2
	case count < 40:
		return 4
	case count < 75:
		return 5
	case count < 150:
		return 7
	case count < 250:
		return 8
	case count < 500:
		return 9
	default:
		return 10
	}
}

func reviewRatingScore(rating float64) int {
	switch {
	case rating == 0:
		return 0
	case rating < 3:
		return 2
	case rating < 3.5:
		return 4
	case rating < 4:
		return 6
	case rating < 4.5:
		return 8
	default:
		return 10
	}
}

// recentReviewCounts tallies how many of the sampled reviews fall inside the
// 30- and 90-day windows ending at now.
func recentReviewCounts(reviews []entity.Review, now time.Time) (last30, last90 int) {
	thirtyAgo := now.Add(-thirtyDays).Unix()
	ninetyAgo := now.Add(-ninetyDays).Unix()
	for _, r := range reviews {
		if r.Time > thirtyAgo {
			last30++
		}
		if r.Time > ninetyAgo {
			last90++
		}
	}
	return last30, last90
}

func scoreReviews(place entity.PlaceRecord, now time.Time) entity.ReviewsBreakdown {
	count := place.RatingCount
	rating := place.Rating
	sample := place.RecentReviews

	countScore := reviewCountScore(count)
	ratingScore := reviewRatingScore(rating)

	// Recency is a proxy signal: the provider only exposes the last few
	// reviews, so if most of those are fresh the business likely has good
	// review velocity. Do not widen this to assume full history.
	recencyScore := 0
	recencyNote := ""
	if len(sample) > 0 {
		last30, last90 := recentReviewCounts(sample, now)
		switch {
		case last30 >= 4:
			recencyScore = 5
			recencyNote = "Your reviews are fresh — that builds trust with new customers."
		case last30 >= 2:
			recencyScore = 4
			recencyNote = "Keep the momentum going with fresh reviews every month."
		case last30 >= 1:
			recencyScore = 3
			recencyNote = "Recent reviews help — 73% of customers only trust reviews from the last month."
		case last90 >= 1:
			recencyScore = 1
			recencyNote = "Your most recent reviews are getting old. Fresh reviews build more trust."
		default:
			recencyScore = 0
			recencyNote = "No recent reviews. Your listing may look inactive to customers."
		}
	} else if count > 0 {
		// Reviews exist but the sample is empty: signal unknown, partial credit.
		recencyScore = 1
		recencyNote = "Review recency matters — 73% of customers only trust reviews from the last month."
	}

	score := countScore + ratingScore + recencyScore

	var recommendation string
	switch {
	case count == 0:
		recommendation = "You have no reviews yet. Ask your happy customers to leave a review — it's the fastest way to build trust."
	case count < 10:
		recommendation = fmt.Sprintf("You have %d reviews. Most successful local businesses have 50+. Every new review helps you show up higher in search.", count)
	case rating < 4:
		recommendation = fmt.Sprintf("Your %.1f star average could be hurting you. Most customers skip businesses under 4 stars.", rating)
	case recencyScore <= 2 && count >= 10:
		recommendation = fmt.Sprintf("%d reviews with %.1f stars is solid, but %s", count, rating, strings.ToLower(recencyNote))
	case count < 50:
		recommendation = fmt.Sprintf("%d reviews with a %.1f average is good. Aim for 50+ to dominate local search.", count, rating)
	case count < 100:
		recommendation = fmt.Sprintf("%d reviews with %.1f stars puts you ahead of most competitors. %s", count, rating, recencyNote)
	default:
		recommendation = fmt.Sprintf("%d reviews with %.1f stars is excellent! %s", count, rating, recencyNote)
	}

	return entity.ReviewsBreakdown{
		Score:          score,
		MaxScore:       maxReviews,
		Percentage:     roundRatio(score, maxReviews, 100),
		Count:          count,
		AverageRating:  rating,
		Recommendation: recommendation,
	}
}

// scoreResponses awards fixed neutral credit: the places provider exposes no
// owner-response data, so the real response rate is unknowable here. A future
// integration with the business-profile API can replace this without touching
// the aggregation.
func scoreResponses(place entity.PlaceRecord) entity.ResponsesBreakdown {
	const score = 5

	recommendation := "Once you get reviews, make sure to respond to each one. It shows customers you're engaged and builds trust."
	if len(place.RecentReviews) > 0 {
		recommendation = "We can see you have reviews but can't verify response rate. Responding to every review — good or bad — shows you care about customers."
	}

	return entity.ResponsesBreakdown{
		Score:          score,
		MaxScore:       maxResponses,
		Percentage:     roundRatio(score, maxResponses, 100),
		ResponseRate:   0,
		Recommendation: recommendation,
	}
}

// scoreActivity awards the same fixed neutral credit: post and update
// frequency is not visible through the places provider.
func scoreActivity() entity.ActivityBreakdown {
	const score = 5
	return entity.ActivityBreakdown{
		Score:          score,
		MaxScore:       maxActivity,
		Percentage:     roundRatio(score, maxActivity, 100),
		Recommendation: "Posting updates to your Google profile weekly keeps you visible in search. Share promotions, news, or behind-the-scenes content.",
	}
}

func scoreLabel(total int) string {
	switch {
	case total <= 40:
		return entity.LabelNeedsWork
	case total <= 60:
		return entity.LabelGettingThere
	case total <= 80:
		return entity.LabelGood
	default:
		return entity.LabelExcellent
	}
}

func scoreColor(total int) string {
	switch {
	case total <= 40:
		return "red"
	case total <= 60:
		return "amber"
	case total <= 80:
		return "green"
	default:
		return "bright-green"
	}
}

func summarize(total int, items []entity.ActionItem) string {
	critical := 0
	for _, item := range items {
		if item.Severity == entity.SeverityCritical {
			critical++
		}
	}

	switch {
	case total <= 40:
		if critical > 0 {
			return fmt.Sprintf("Your Google presence needs attention. You have %d critical issue%s that could be costing you customers.", critical, plural(critical))
		}
		return "Your Google presence is turning away potential customers. A few quick fixes could make a big difference."
	case total <= 60:
		return "You're on the right track, but there's room to improve. A few updates could help you stand out from competitors."
	case total <= 80:
		return "Your Google presence is solid! A few tweaks could push you to the top of local search results."
	default:
		return "Excellent! Your Google presence is helping you win customers. Keep it updated to maintain your edge."
	}
}

func primaryCategory(categories []string) string {
	if len(categories) == 0 {
		return "Business"
	}
	name := strings.ReplaceAll(categories[0], "_", " ")
	if name == "" {
		return "Business"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func roundRatio(part, whole, scale int) int {
	return int(math.Round(float64(part) / float64(whole) * float64(scale)))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
