package synth

import (
	"fmt"

	"adwizard/internal/core/domain"
)

// AdCopyInput carries the wizard fields the copy generator works from.
type AdCopyInput struct {
	BusinessName string
	Offer        string
	Goal         domain.CampaignGoal
	// BusinessType is accepted but does not alter output yet; it is the
	// extension point for per-vertical copy differentiation.
	BusinessType domain.BusinessType
}

// GenerateAdCopy returns up to three ad copy suggestions for the goal, with
// the business name and offer interpolated into each template. Identical
// inputs always produce identical output. An unrecognised goal yields an
// empty list, which callers must handle.
func GenerateAdCopy(in AdCopyInput) []domain.AdCopySuggestion {
	name, offer := in.BusinessName, in.Offer

	var suggestions []domain.AdCopySuggestion
	switch in.Goal {
	case domain.GoalWebsiteVisits:
		suggestions = []domain.AdCopySuggestion{
			{
				Headline:    fmt.Sprintf("Discover %s - Your Solution Awaits", name),
				PrimaryText: fmt.Sprintf("%s. Visit us today and explore what we have to offer.", offer),
				CTALabel:    "Visit Website",
			},
			{
				Headline:    fmt.Sprintf("Transform Your Experience with %s", name),
				PrimaryText: fmt.Sprintf("%s. Click to learn more and get started.", offer),
				CTALabel:    "Learn More",
			},
			{
				Headline:    fmt.Sprintf("%s: Where Quality Meets Value", name),
				PrimaryText: fmt.Sprintf("%s. Browse our website and see why customers choose us.", offer),
				CTALabel:    "Explore Now",
			},
		}
	case domain.GoalCallsEnquiries:
		suggestions = []domain.AdCopySuggestion{
			{
				Headline:    fmt.Sprintf("Get in Touch with %s Today", name),
				PrimaryText: fmt.Sprintf("%s. Call us now for a free consultation and see how we can help.", offer),
				CTALabel:    "Call Now",
			},
			{
				Headline:    fmt.Sprintf("Ready to Get Started? Contact %s", name),
				PrimaryText: fmt.Sprintf("%s. Speak with our team and discover the perfect solution for you.", offer),
				CTALabel:    "Contact Us",
			},
			{
				Headline:    fmt.Sprintf("%s - Your Trusted Partner", name),
				PrimaryText: fmt.Sprintf("%s. Reach out today and let's discuss your needs.", offer),
				CTALabel:    "Get Quote",
			},
		}
	case domain.GoalStoreVisits:
		suggestions = []domain.AdCopySuggestion{
			{
				Headline:    fmt.Sprintf("Visit %s - Your Local Favorite", name),
				PrimaryText: fmt.Sprintf("%s. Stop by our store and experience the difference.", offer),
				CTALabel:    "Get Directions",
			},
			{
				Headline:    fmt.Sprintf("Come See Us at %s", name),
				PrimaryText: fmt.Sprintf("%s. Visit our location and discover what makes us special.", offer),
				CTALabel:    "Visit Store",
			},
			{
				Headline:    fmt.Sprintf("%s - Open Now, Come In!", name),
				PrimaryText: fmt.Sprintf("%s. We're here to serve you. Drop by today!", offer),
				CTALabel:    "Find Us",
			},
		}
	case domain.GoalOnlineSales:
		suggestions = []domain.AdCopySuggestion{
			{
				Headline:    fmt.Sprintf("Shop %s - Limited Time Offer", name),
				PrimaryText: fmt.Sprintf("%s. Add to cart now and enjoy fast, secure checkout.", offer),
				CTALabel:    "Shop Now",
			},
			{
				Headline:    fmt.Sprintf("%s: Your One-Stop Shop", name),
				PrimaryText: fmt.Sprintf("%s. Browse our collection and find exactly what you need.", offer),
				CTALabel:    "Buy Now",
			},
			{
				Headline:    fmt.Sprintf("Exclusive Deal at %s", name),
				PrimaryText: fmt.Sprintf("%s. Don't miss out - shop now and save!", offer),
				CTALabel:    "Shop Today",
			},
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
