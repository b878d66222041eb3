package scoring

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samrahim8/curbappeal/internal/entity"
)

var severityRank = map[entity.Severity]int{
	entity.SeverityCritical:   0,
	entity.SeverityWarning:    1,
	entity.SeveritySuggestion: 2,
}

// Category vocabulary that marks a listing as food service. Matched as a
// substring so e.g. "meal_takeaway" and "fast_food_restaurant" both qualify.
var foodCategories = []string{"restaurant", "cafe", "bakery", "bar", "food", "meal_delivery", "meal_takeaway"}

// buildActionItems evaluates every advice rule against the record and the
// computed breakdown. Rules are independent and all of them run; the result
// is stable-sorted by severity so emission order survives within each band.
func buildActionItems(place entity.PlaceRecord, breakdown entity.ScoreBreakdown, now time.Time) []entity.ActionItem {
	var items []entity.ActionItem

	switch place.BusinessStatus {
	case entity.StatusClosedTemporarily:
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeverityCritical,
			Title:       "Your business is marked as temporarily closed",
			Description: "Google shows your business as temporarily closed. This kills your visibility in search results.",
			HowToFix:    "In your Google Business Profile, go to 'Info' and update your business status to 'Open'. If you were closed temporarily, make sure to reopen.",
		})
	case entity.StatusClosedPermanently:
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeverityCritical,
			Title:       "Your business is marked as permanently closed",
			Description: "Google thinks your business is permanently closed! You won't appear in search results at all.",
			HowToFix:    "In your Google Business Profile, request to reopen your business. You may need to verify ownership again.",
		})
	}

	details := breakdown.Completeness.Details
	if !details.HasPhone {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeverityCritical,
			Title:       "Add your phone number",
			Description: "Customers can't call you if they can't find your number.",
			HowToFix:    "Go to your Google Business Profile, click 'Edit profile', and add your phone number under 'Contact'.",
		})
	}
	if !details.HasWebsite {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeverityWarning,
			Title:       "Add your website",
			Description: "A website link gives customers more info and builds credibility.",
			HowToFix:    "In your Google Business Profile, click 'Edit profile' and add your website URL.",
		})
	}
	if !details.HasHours {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeverityCritical,
			Title:       "Add your business hours",
			Description: "People won't visit if they don't know when you're open. You're invisible to anyone searching by hours.",
			HowToFix:    "In your Google Business Profile, click 'Edit profile', then 'Hours', and add your operating hours for each day.",
		})
	}
	if !details.HasDescription {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeverityWarning,
			Title:       "Add a business description",
			Description: "Your profile is missing a description. This is prime real estate to tell customers what makes you special.",
			HowToFix:    "In your Google Business Profile, click 'Edit profile', then 'Description'. Write 2-3 sentences about what you do and why customers choose you.",
		})
	}
	if !details.HasPriceLevel {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeveritySuggestion,
			Title:       "Set your price range",
			Description: "Customers filter by price. If yours isn't set, you won't show up in those searches.",
			HowToFix:    "In your Google Business Profile, click 'Edit profile' and set your price level ($ to $$$$).",
		})
	}

	photoCount := breakdown.Photos.Count
	if photoCount == 0 {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryPhotos,
			Severity:    entity.SeverityCritical,
			Title:       "Add photos to your listing",
			Description: "Listings with photos get 35% more clicks to their website and 42% more requests for directions.",
			HowToFix:    "In your Google Business Profile, click 'Add photo'. Upload at least 5-10 photos showing your business, team, and work.",
		})
	} else if photoCount < 5 {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryPhotos,
			Severity:    entity.SeverityWarning,
			Title:       fmt.Sprintf("Add %d more photos", 10-photoCount),
			Description: "You're almost there! Businesses with 10+ photos perform significantly better in search.",
			HowToFix:    "Add photos of your storefront, interior, team, and examples of your work or products.",
		})
	}

	reviewCount := breakdown.Reviews.Count
	rating := breakdown.Reviews.AverageRating
	if reviewCount == 0 {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryReviews,
			Severity:    entity.SeverityCritical,
			Title:       "Get your first reviews",
			Description: "Reviews are the #1 factor customers use to decide. No reviews = no trust.",
			HowToFix:    "Ask your 5 happiest customers to leave a Google review. Send them a direct link to make it easy.",
		})
	} else if reviewCount < 10 {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryReviews,
			Severity:    entity.SeverityWarning,
			Title:       "Build up your review count",
			Description: fmt.Sprintf("%d reviews is a good start, but most successful local businesses have 25+.", reviewCount),
			HowToFix:    "Make asking for reviews part of your routine. After a good interaction, send a follow-up text or email with your review link.",
		})
	}
	if rating > 0 && rating < 4 {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryReviews,
			Severity:    entity.SeverityWarning,
			Title:       "Improve your average rating",
			Description: fmt.Sprintf("A %.1f average could be hurting you. Most customers only consider 4+ star businesses.", rating),
			HowToFix:    "Read your negative reviews for patterns. Address those issues, then focus on getting more positive reviews to bring up your average.",
		})
	}

	// Staleness rules only apply when a review sample is visible; the sample
	// is a bounded velocity proxy, same as in the recency sub-score.
	if len(place.RecentReviews) > 0 {
		last30, last90 := recentReviewCounts(place.RecentReviews, now)
		if last90 == 0 {
			items = append(items, entity.ActionItem{
				Category:    entity.CategoryReviews,
				Severity:    entity.SeverityCritical,
				Title:       "Your reviews are stale",
				Description: "No reviews in 90+ days makes your business look inactive. Customers check review dates — old reviews kill trust.",
				HowToFix:    "Start a review campaign today. Text your last 10 happy customers with a direct link to your Google review page.",
			})
		} else if last30 < 3 {
			items = append(items, entity.ActionItem{
				Category:    entity.CategoryReviews,
				Severity:    entity.SeveritySuggestion,
				Title:       "Keep the reviews coming",
				Description: "73% of customers only trust reviews from the last month. Top local businesses aim for 5+ new reviews every month.",
				HowToFix:    "Make asking for reviews automatic. Send a follow-up text or email after every job with your Google review link.",
			})
		}
	}

	items = append(items, entity.ActionItem{
		Category:    entity.CategoryResponses,
		Severity:    entity.SeveritySuggestion,
		Title:       "Respond to all your reviews",
		Description: "Responding to reviews — especially negative ones — shows you care. It also signals to Google that you're active.",
		HowToFix:    "Check your reviews weekly. Thank positive reviewers by name. For negative reviews, apologize and offer to make it right offline.",
	})
	items = append(items, entity.ActionItem{
		Category:    entity.CategoryActivity,
		Severity:    entity.SeveritySuggestion,
		Title:       "Post weekly updates",
		Description: "Regular Google posts keep your listing fresh and can feature promotions, events, or news.",
		HowToFix:    "In your Google Business Profile, click 'Add update'. Share a promotion, photo, or business update at least once a week.",
	})

	if isFoodBusiness(place.Categories) {
		attrs := place.Attributes
		hasServiceOption := isTrue(attrs.Delivery) || isTrue(attrs.DineIn) || isTrue(attrs.Takeout) || isTrue(attrs.CurbsidePickup)
		if !hasServiceOption {
			items = append(items, entity.ActionItem{
				Category:    entity.CategoryCompleteness,
				Severity:    entity.SeverityWarning,
				Title:       "Add service options",
				Description: "Customers filter by delivery, takeout, and dine-in. Set these so you show up in filtered searches.",
				HowToFix:    "In your Google Business Profile, go to 'Edit profile' > 'More' and enable the service options you offer (delivery, takeout, dine-in, curbside pickup).",
			})
		}
		if isTrue(attrs.DineIn) && !isTrue(attrs.Reservable) {
			items = append(items, entity.ActionItem{
				Category:    entity.CategoryCompleteness,
				Severity:    entity.SeveritySuggestion,
				Title:       "Enable reservations",
				Description: "If you take reservations, enable this feature to let customers book directly from Google.",
				HowToFix:    "In your Google Business Profile, look for 'Reservations' or connect a booking partner like OpenTable.",
			})
		}
	}

	// Only an explicit false triggers this; an unreported attribute does not.
	if place.Attributes.WheelchairAccessibleEntrance != nil && !*place.Attributes.WheelchairAccessibleEntrance {
		items = append(items, entity.ActionItem{
			Category:    entity.CategoryCompleteness,
			Severity:    entity.SeveritySuggestion,
			Title:       "Update accessibility info",
			Description: "Accessibility attributes help customers with disabilities find businesses they can visit.",
			HowToFix:    "In your Google Business Profile, go to 'Edit profile' > 'Accessibility' and mark which features your business offers.",
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return severityRank[items[i].Severity] < severityRank[items[j].Severity]
	})

	return items
}

func isFoodBusiness(categories []string) bool {
	for _, category := range categories {
		lowered := strings.ToLower(category)
		for _, food := range foodCategories {
			if strings.Contains(lowered, food) {
				return true
			}
		}
	}
	return false
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
