package synth

import (
	"strings"

	"adwizard/internal/core/domain"
)

// PersonaInput carries the wizard fields persona selection works from.
type PersonaInput struct {
	BusinessType domain.BusinessType
	Goal         domain.CampaignGoal
	// Description is optional free text from the user; when non-empty it is
	// appended to the persona's demographic summary.
	Description string
}

// GeneratePersona returns a fixed audience persona keyed by business type.
// Retail/D2C splits further on the Online sales goal; anything unrecognised
// falls through to a generic persona. Deterministic for identical inputs.
func GeneratePersona(in PersonaInput) domain.AudiencePersona {
	var persona domain.AudiencePersona
	switch in.BusinessType {
	case domain.BusinessRetailD2C:
		if in.Goal == domain.GoalOnlineSales {
			persona = domain.AudiencePersona{
				Title:              "The Online Bargain Hunter",
				DemographicSummary: "Adults 25-44 who shop online several times a month, compare prices across stores and respond strongly to limited-time offers",
				Interests:          []string{"Online shopping", "Deals and discounts", "Product reviews", "Fashion and lifestyle"},
				Behaviours:         []string{"Adds to cart from mobile", "Follows brands on social media", "Abandons carts when shipping is slow", "Buys during sales events"},
			}
		} else {
			persona = domain.AudiencePersona{
				Title:              "The Loyal Retail Browser",
				DemographicSummary: "Adults 25-54 who enjoy discovering new products and brands, mixing in-store visits with casual online browsing",
				Interests:          []string{"New product launches", "Brand storytelling", "Seasonal collections", "Loyalty programs"},
				Behaviours:         []string{"Window-shops online before buying", "Signs up for newsletters", "Shares finds with friends", "Visits stores on weekends"},
			}
		}
	case domain.BusinessLocalService:
		persona = domain.AudiencePersona{
			Title:              "The Neighbourhood Decision Maker",
			DemographicSummary: "Homeowners and busy parents 30-55 within driving distance who prefer trusted local providers over faceless chains",
			Interests:          []string{"Home improvement", "Local community events", "Family activities", "Word-of-mouth recommendations"},
			Behaviours:         []string{"Searches for services near me", "Reads reviews before calling", "Books appointments by phone", "Returns to providers they trust"},
		}
	case domain.BusinessOnlineSaaS:
		persona = domain.AudiencePersona{
			Title:              "The Efficiency-Minded Professional",
			DemographicSummary: "Professionals and small-business operators 25-45 who evaluate tools online and adopt software that saves them time",
			Interests:          []string{"Productivity tools", "Business growth", "Technology news", "Professional development"},
			Behaviours:         []string{"Starts free trials", "Compares features and pricing", "Reads case studies", "Cancels tools that go unused"},
		}
	default:
		persona = domain.AudiencePersona{
			Title:              "The Engaged Generalist",
			DemographicSummary: "Adults 18-65 with broad interests who engage with clear, relevant offers across devices",
			Interests:          []string{"General lifestyle", "Entertainment", "Local news", "Special offers"},
			Behaviours:         []string{"Browses on mobile", "Clicks on clear calls to action", "Responds to discounts", "Engages most in the evening"},
		}
	}

	if desc := strings.TrimSpace(in.Description); desc != "" {
		persona.DemographicSummary += ". Additional context: " + desc
	}
	return persona
}
