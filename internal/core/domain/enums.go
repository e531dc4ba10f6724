package domain

// CampaignGoal is the outcome a campaign optimises for. It drives template
// selection in the ad copy generator and persona selection.
type CampaignGoal string

const (
	GoalWebsiteVisits  CampaignGoal = "Website visits"
	GoalCallsEnquiries CampaignGoal = "Calls / enquiries"
	GoalStoreVisits    CampaignGoal = "Store visits"
	GoalOnlineSales    CampaignGoal = "Online sales"
)

// Valid reports whether g is one of the known goals. Generators treat an
// unrecognised goal as a defined "no match", not an error.
func (g CampaignGoal) Valid() bool {
	switch g {
	case GoalWebsiteVisits, GoalCallsEnquiries, GoalStoreVisits, GoalOnlineSales:
		return true
	}
	return false
}

// BusinessType categorises the advertiser's business. It drives persona
// template selection.
type BusinessType string

const (
	BusinessRetailD2C    BusinessType = "Retail / D2C"
	BusinessLocalService BusinessType = "Local Service"
	BusinessOnlineSaaS   BusinessType = "Online SaaS"
	BusinessOther        BusinessType = "Other"
)

// Valid reports whether b is one of the known business types.
func (b BusinessType) Valid() bool {
	switch b {
	case BusinessRetailD2C, BusinessLocalService, BusinessOnlineSaaS, BusinessOther:
		return true
	}
	return false
}

// BudgetType determines how the projection scales the budget amount by
// active days.
type BudgetType string

const (
	BudgetDaily BudgetType = "Daily budget"
	BudgetTotal BudgetType = "Total budget"
)

// Valid reports whether t is one of the known budget types.
func (t BudgetType) Valid() bool {
	return t == BudgetDaily || t == BudgetTotal
}

// AudiencePreset is a coarse audience choice collected by the wizard.
type AudiencePreset string

const (
	AudienceBroad              AudiencePreset = "Broad – all adults"
	AudienceLocalFamilies      AudiencePreset = "Local families"
	AudienceYoungProfessionals AudiencePreset = "Young professionals"
	AudienceCustom             AudiencePreset = "Custom description"
)
