package scoring

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/samrahim8/curbappeal/internal/entity"
)

var testNow = time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) int64 {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour).Unix()
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func photos(n int) []entity.Photo {
	out := make([]entity.Photo, n)
	for i := range out {
		out[i] = entity.Photo{Reference: "ref", Height: 400, Width: 600}
	}
	return out
}

func reviewsAt(times ...int64) []entity.Review {
	out := make([]entity.Review, 0, len(times))
	for _, ts := range times {
		out = append(out, entity.Review{AuthorName: "a", Rating: 5, Text: "great", Time: ts})
	}
	return out
}

func fullRecord() entity.PlaceRecord {
	return entity.PlaceRecord{
		PlaceID:        "ChIJtest",
		Name:           "Blue Door Cafe",
		Address:        "12 High Street, Springfield",
		Phone:          "(555) 010-2030",
		Website:        "https://bluedoorcafe.example",
		WeekdayHours:   []string{"Monday: 8AM-4PM"},
		Categories:     []string{"cafe", "food"},
		PriceLevel:     intPtr(2),
		Description:    "Neighborhood cafe.",
		Photos:         photos(15),
		Rating:         4.6,
		RatingCount:    120,
		RecentReviews:  reviewsAt(daysAgo(1), daysAgo(3), daysAgo(5), daysAgo(7), daysAgo(9)),
		BusinessStatus: entity.StatusOperational,
		Attributes: entity.ServiceAttributes{
			DineIn:  boolPtr(true),
			Takeout: boolPtr(true),
		},
	}
}

func TestWeightsMatchMaxScores(t *testing.T) {
	cases := []struct {
		weight float64
		max    int
	}{
		{weightCompleteness, maxCompleteness},
		{weightPhotos, maxPhotos},
		{weightReviews, maxReviews},
		{weightResponses, maxResponses},
		{weightActivity, maxActivity},
	}

	sum := 0
	for _, tc := range cases {
		if int(tc.weight*100) != tc.max {
			t.Fatalf("max score %d does not equal weight %.2f x 100", tc.max, tc.weight)
		}
		sum += tc.max
	}
	if sum != 100 {
		t.Fatalf("max scores sum to %d, want 100", sum)
	}
}

func TestScoreCompleteness(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		got := scoreCompleteness(entity.PlaceRecord{PlaceID: "x", Name: "Solo"})
		if got.Score != 3 {
			t.Fatalf("expected score 3 for one of eight fields, got %d", got.Score)
		}
		if got.Percentage != 13 {
			t.Fatalf("expected percentage 13, got %d", got.Percentage)
		}
		if !got.Details.HasName || got.Details.HasPhone {
			t.Fatalf("unexpected details: %+v", got.Details)
		}
	})

	t.Run("all fields", func(t *testing.T) {
		got := scoreCompleteness(fullRecord())
		if got.Score != maxCompleteness || got.Percentage != 100 {
			t.Fatalf("expected 25/100, got %d/%d", got.Score, got.Percentage)
		}
	})

	t.Run("price level zero counts as present", func(t *testing.T) {
		got := scoreCompleteness(entity.PlaceRecord{Name: "Free Museum", PriceLevel: intPtr(0)})
		if !got.Details.HasPriceLevel {
			t.Fatalf("explicit zero price level must count as present")
		}
	})
}

func TestScorePhotosBuckets(t *testing.T) {
	cases := []struct {
		count int
		score int
	}{
		{0, 0}, {1, 4}, {2, 4}, {3, 8}, {5, 8}, {6, 14}, {7, 14}, {10, 14}, {11, 20}, {40, 20},
	}
	for _, tc := range cases {
		got := scorePhotos(entity.PlaceRecord{Photos: photos(tc.count)})
		if got.Score != tc.score {
			t.Fatalf("count=%d: expected score %d, got %d", tc.count, tc.score, got.Score)
		}
		if got.Count != tc.count || got.MaxScore != maxPhotos {
			t.Fatalf("count=%d: unexpected breakdown %+v", tc.count, got)
		}
		if got.Recommendation == "" {
			t.Fatalf("count=%d: every bucket must carry a recommendation", tc.count)
		}
	}

	if got := scorePhotos(entity.PlaceRecord{Photos: photos(1)}); !strings.Contains(got.Recommendation, "1 photo.") {
		t.Fatalf("singular form expected for one photo, got %q", got.Recommendation)
	}
}

func TestReviewCountScore(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 1}, {9, 1}, {10, 2}, {24, 2}, {25, 4}, {39, 4}, {40, 5},
		{74, 5}, {75, 7}, {149, 7}, {150, 8}, {249, 8}, {250, 9}, {499, 9}, {500, 10},
	}
	for _, tc := range cases {
		if got := reviewCountScore(tc.count); got != tc.want {
			t.Fatalf("count=%d: expected %d, got %d", tc.count, tc.want, got)
		}
	}
}

func TestReviewRatingScore(t *testing.T) {
	cases := []struct {
		rating float64
		want   int
	}{
		{0, 0}, {1.5, 2}, {2.9, 2}, {3.0, 4}, {3.4, 4}, {3.5, 6}, {3.9, 6}, {4.0, 8}, {4.4, 8}, {4.5, 10}, {5.0, 10},
	}
	for _, tc := range cases {
		if got := reviewRatingScore(tc.rating); got != tc.want {
			t.Fatalf("rating=%.1f: expected %d, got %d", tc.rating, tc.want, got)
		}
	}
}

func TestScoreReviewsRecency(t *testing.T) {
	base := entity.PlaceRecord{Rating: 4.5, RatingCount: 40}

	cases := []struct {
		name    string
		reviews []entity.Review
		want    int // count(5) + rating(10) + recency
	}{
		{"four fresh", reviewsAt(daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(200)), 20},
		{"two fresh", reviewsAt(daysAgo(1), daysAgo(2), daysAgo(200)), 19},
		{"one fresh", reviewsAt(daysAgo(1), daysAgo(200)), 18},
		{"only within ninety", reviewsAt(daysAgo(45), daysAgo(80)), 16},
		{"all stale", reviewsAt(daysAgo(120), daysAgo(365)), 15},
		{"empty sample partial credit", nil, 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := base
			record.RecentReviews = tc.reviews
			got := scoreReviews(record, testNow)
			if got.Score != tc.want {
				t.Fatalf("expected score %d, got %d", tc.want, got.Score)
			}
		})
	}
}

func TestScoreReviewsZeroCount(t *testing.T) {
	// A zero rating count zeroes the count and rating components even when the
	// provider somehow still ships a review sample.
	record := entity.PlaceRecord{RecentReviews: reviewsAt(daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4))}
	got := scoreReviews(record, testNow)
	if got.Score != 5 { // recency only
		t.Fatalf("expected recency-only score 5, got %d", got.Score)
	}

	record.RecentReviews = nil
	got = scoreReviews(record, testNow)
	if got.Score != 0 {
		t.Fatalf("expected zero score with no reviews at all, got %d", got.Score)
	}
	if !strings.Contains(got.Recommendation, "no reviews yet") {
		t.Fatalf("unexpected recommendation: %q", got.Recommendation)
	}
}

func TestPlaceholderSubScores(t *testing.T) {
	records := []entity.PlaceRecord{
		{},
		fullRecord(),
		{RecentReviews: reviewsAt(daysAgo(400))},
	}
	for _, record := range records {
		if got := scoreResponses(record); got.Score != 5 || got.MaxScore != maxResponses {
			t.Fatalf("responses placeholder must be 5/15, got %d/%d", got.Score, got.MaxScore)
		}
	}
	if got := scoreActivity(); got.Score != 5 || got.MaxScore != maxActivity {
		t.Fatalf("activity placeholder must be 5/15, got %d/%d", got.Score, got.MaxScore)
	}
}

func TestResponsesRecommendationVariants(t *testing.T) {
	withSample := scoreResponses(entity.PlaceRecord{RecentReviews: reviewsAt(daysAgo(5))})
	if !strings.Contains(withSample.Recommendation, "can't verify response rate") {
		t.Fatalf("unexpected recommendation with reviews: %q", withSample.Recommendation)
	}
	withoutSample := scoreResponses(entity.PlaceRecord{})
	if !strings.Contains(withoutSample.Recommendation, "Once you get reviews") {
		t.Fatalf("unexpected recommendation without reviews: %q", withoutSample.Recommendation)
	}
}

func TestScoreLabelBoundaries(t *testing.T) {
	cases := []struct {
		score int
		label string
		color string
	}{
		{0, entity.LabelNeedsWork, "red"},
		{40, entity.LabelNeedsWork, "red"},
		{41, entity.LabelGettingThere, "amber"},
		{60, entity.LabelGettingThere, "amber"},
		{61, entity.LabelGood, "green"},
		{80, entity.LabelGood, "green"},
		{81, entity.LabelExcellent, "bright-green"},
		{100, entity.LabelExcellent, "bright-green"},
	}
	for _, tc := range cases {
		if got := scoreLabel(tc.score); got != tc.label {
			t.Fatalf("score=%d: expected label %q, got %q", tc.score, tc.label, got)
		}
		if got := scoreColor(tc.score); got != tc.color {
			t.Fatalf("score=%d: expected color %q, got %q", tc.score, tc.color, got)
		}
	}
}

func TestCalculateBoundsAndSum(t *testing.T) {
	records := []entity.PlaceRecord{
		{},
		{PlaceID: "x", Name: "Solo"},
		fullRecord(),
		{Name: "Stale", RatingCount: 300, Rating: 2.1, RecentReviews: reviewsAt(daysAgo(400))},
		{Name: "Photos", Photos: photos(3)},
	}

	for _, record := range records {
		result := Calculate(record, testNow)
		if result.TotalScore < 0 || result.TotalScore > 100 {
			t.Fatalf("total score %d out of range", result.TotalScore)
		}
		sum := result.Breakdown.Completeness.Score +
			result.Breakdown.Photos.Score +
			result.Breakdown.Reviews.Score +
			result.Breakdown.Responses.Score +
			result.Breakdown.Activity.Score
		if result.TotalScore != sum {
			t.Fatalf("total %d does not equal sub-score sum %d", result.TotalScore, sum)
		}
		for _, bounded := range []struct{ score, max int }{
			{result.Breakdown.Completeness.Score, maxCompleteness},
			{result.Breakdown.Photos.Score, maxPhotos},
			{result.Breakdown.Reviews.Score, maxReviews},
			{result.Breakdown.Responses.Score, maxResponses},
			{result.Breakdown.Activity.Score, maxActivity},
		} {
			if bounded.score < 0 || bounded.score > bounded.max {
				t.Fatalf("sub-score %d exceeds bound %d", bounded.score, bounded.max)
			}
		}
	}
}

func TestCalculateDeterministic(t *testing.T) {
	record := fullRecord()
	first := Calculate(record, testNow)
	second := Calculate(record, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must produce identical results")
	}
}

func TestCalculateBareListing(t *testing.T) {
	result := Calculate(entity.PlaceRecord{
		PlaceID:        "bare",
		Name:           "Bare Listing",
		BusinessStatus: entity.StatusOperational,
	}, testNow)

	// Name alone: completeness 3, photos 0, reviews 0, two placeholders of 5.
	if result.TotalScore != 13 {
		t.Fatalf("expected total 13, got %d", result.TotalScore)
	}
	if result.ScoreLabel != entity.LabelNeedsWork {
		t.Fatalf("expected %q, got %q", entity.LabelNeedsWork, result.ScoreLabel)
	}

	wantLeadingTitles := []string{
		"Add your phone number",
		"Add your business hours",
		"Add photos to your listing",
		"Get your first reviews",
	}
	if len(result.ActionItems) < len(wantLeadingTitles) {
		t.Fatalf("expected at least %d items, got %d", len(wantLeadingTitles), len(result.ActionItems))
	}
	for i, want := range wantLeadingTitles {
		item := result.ActionItems[i]
		if item.Severity != entity.SeverityCritical || item.Title != want {
			t.Fatalf("item %d: expected critical %q, got %s %q", i, want, item.Severity, item.Title)
		}
	}

	if !strings.Contains(result.Summary, "4 critical issues") {
		t.Fatalf("summary should interpolate the critical count, got %q", result.Summary)
	}
	if result.Category != "Business" {
		t.Fatalf("expected fallback category, got %q", result.Category)
	}
}

func TestCalculateStrongListing(t *testing.T) {
	result := Calculate(fullRecord(), testNow)

	if got := result.Breakdown.Completeness.Score; got != 25 {
		t.Fatalf("expected completeness 25, got %d", got)
	}
	if got := result.Breakdown.Photos.Score; got != 20 {
		t.Fatalf("expected photos 20, got %d", got)
	}
	// 120 reviews -> 7, 4.6 stars -> 10, five fresh samples -> 5.
	if got := result.Breakdown.Reviews.Score; got != 22 {
		t.Fatalf("expected reviews 22, got %d", got)
	}
	if result.TotalScore != 77 {
		t.Fatalf("expected total 77, got %d", result.TotalScore)
	}
	if result.ScoreLabel != entity.LabelGood {
		t.Fatalf("expected %q, got %q", entity.LabelGood, result.ScoreLabel)
	}
	if result.Category != "Cafe" {
		t.Fatalf("expected category Cafe, got %q", result.Category)
	}
	if result.PhotoCount != 15 || result.ReviewCount != 120 {
		t.Fatalf("unexpected echoed counts: %d photos, %d reviews", result.PhotoCount, result.ReviewCount)
	}
}

func TestPrimaryCategory(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, "Business"},
		{[]string{""}, "Business"},
		{[]string{"meal_takeaway", "restaurant"}, "Meal takeaway"},
		{[]string{"bakery"}, "Bakery"},
	}
	for _, tc := range cases {
		if got := primaryCategory(tc.in); got != tc.want {
			t.Fatalf("primaryCategory(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
