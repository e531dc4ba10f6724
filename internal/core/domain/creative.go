package domain

// AdCopySuggestion is one generated ad variant. Immutable once generated;
// user edits produce a new value held separately on the draft.
type AdCopySuggestion struct {
	Headline    string `json:"headline"`
	PrimaryText string `json:"primaryText"`
	CTALabel    string `json:"ctaLabel"`
}

// AudiencePersona describes a fabricated ideal-customer profile suggested to
// the user during the audience step.
type AudiencePersona struct {
	Title              string   `json:"title"`
	DemographicSummary string   `json:"demographicSummary"`
	Interests          []string `json:"interests"`
	Behaviours         []string `json:"behaviours"`
}
