package models

import "time"

// Project status values. Transitions move forward only:
// pending -> under_review -> approved|rejected.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

// Project represents a health-sector investment proposal.
// The proposal fields are fixed at submission; only the workflow
// fields change afterwards (or anything, under an admin edit).
type Project struct {
	ProjectID string `gorm:"primaryKey;column:project_id" json:"project_id"`

	// Basic information
	ProjectTitle       string  `gorm:"column:project_title" json:"project_title"`
	ProjectSummary     string  `gorm:"column:project_summary" json:"project_summary"`
	Country            string  `gorm:"column:country" json:"country"`
	Region             string  `gorm:"column:region" json:"region"`
	ImplementingEntity string  `gorm:"column:implementing_entity" json:"implementing_entity"`
	PPPModel           *string `gorm:"column:ppp_model" json:"ppp_model,omitempty"`
	ProjectType        string  `gorm:"column:project_type" json:"project_type"`
	ProjectWebsite     *string `gorm:"column:project_website" json:"project_website,omitempty"`
	ContactPerson      string  `gorm:"column:contact_person" json:"contact_person"`
	ContactDetails     string  `gorm:"column:contact_details" json:"contact_details"`

	// Strategic alignment
	ProjectDescription           string  `gorm:"column:project_description" json:"project_description"`
	PifahPillar                  string  `gorm:"column:pifah_pillar" json:"pifah_pillar"`
	AlignmentNationalPriorities  *string `gorm:"column:alignment_national_priorities" json:"alignment_national_priorities,omitempty"`
	RegionalIntegrationPotential bool    `gorm:"column:regional_integration_potential" json:"regional_integration_potential"`
	RegionalIntegrationDetails   *string `gorm:"column:regional_integration_details" json:"regional_integration_details,omitempty"`

	// Market and impact
	MarketSize                  *string `gorm:"column:market_size" json:"market_size,omitempty"`
	TargetPopulation            *string `gorm:"column:target_population" json:"target_population,omitempty"`
	ExistingSolutions           *string `gorm:"column:existing_solutions" json:"existing_solutions,omitempty"`
	UniqueSellingProposition    *string `gorm:"column:unique_selling_proposition" json:"unique_selling_proposition,omitempty"`
	ExpectedHealthOutcomes      *string `gorm:"column:expected_health_outcomes" json:"expected_health_outcomes,omitempty"`
	EconomicBenefits            *string `gorm:"column:economic_benefits" json:"economic_benefits,omitempty"`
	SocialImpact                *string `gorm:"column:social_impact" json:"social_impact,omitempty"`
	ContributionAreas           *string `gorm:"column:contribution_areas" json:"contribution_areas,omitempty"`
	ContributionDescription     *string `gorm:"column:contribution_description" json:"contribution_description,omitempty"`
	EnvironmentalConsiderations *string `gorm:"column:environmental_considerations" json:"environmental_considerations,omitempty"`

	// Financial
	EstimatedInvestment         *string `gorm:"column:estimated_investment" json:"estimated_investment,omitempty"`
	CostBreakdown               *string `gorm:"column:cost_breakdown" json:"cost_breakdown,omitempty"`
	CurrentFundingModel         *string `gorm:"column:current_funding_model" json:"current_funding_model,omitempty"`
	ProposedFinancingStructure  *string `gorm:"column:proposed_financing_structure" json:"proposed_financing_structure,omitempty"`
	ExpectedReturn              *string `gorm:"column:expected_return" json:"expected_return,omitempty"`

	// Timeline and readiness
	CurrentStage          string  `gorm:"column:current_stage" json:"current_stage"`
	KeyMilestones         *string `gorm:"column:key_milestones" json:"key_milestones,omitempty"`
	GovernmentApprovals   bool    `gorm:"column:government_approvals" json:"government_approvals"`
	Partnerships          *string `gorm:"column:partnerships" json:"partnerships,omitempty"`
	RegulatoryAlignment   *string `gorm:"column:regulatory_alignment" json:"regulatory_alignment,omitempty"`
	MajorRisks            *string `gorm:"column:major_risks" json:"major_risks,omitempty"`
	MitigationMeasures    *string `gorm:"column:mitigation_measures" json:"mitigation_measures,omitempty"`
	PlannedStartDate      *string `gorm:"column:planned_start_date" json:"planned_start_date,omitempty"`
	ImplementationHorizon *string `gorm:"column:implementation_horizon" json:"implementation_horizon,omitempty"`
	SupportNeeded         *string `gorm:"column:support_needed" json:"support_needed,omitempty"`
	OtherNotes            *string `gorm:"column:other_notes" json:"other_notes,omitempty"`

	// Workflow
	Status      string     `gorm:"column:status" json:"status"`
	SubmittedBy string     `gorm:"column:submitted_by" json:"submitted_by"`
	ReviewedBy  *string    `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ApprovedBy  *string    `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`

	CreateAt time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// ValidStatus reports whether status is one of the workflow states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a project in this status has left the workflow.
func Terminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}
