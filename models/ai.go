package models

// PlanItem is one provider/service pair chosen by the planner.
type PlanItem struct {
	ProviderID string `json:"providerId" validate:"required"`
	ServiceID  string `json:"serviceId" validate:"required"`
}

// PartyPlan is the structured answer of the remote model.
type PartyPlan struct {
	Plan          []PlanItem `json:"plan"`
	Justification string     `json:"justification"`
	TotalCost     float64    `json:"totalCost"`
}

// PlanRequest is the payload of /api/planner/plan.
type PlanRequest struct {
	Budget   float64 `json:"budget" binding:"required,gt=0"`
	Location string  `json:"location" binding:"required"`
}

// PlanLine is a plan pair resolved against the live catalog.
type PlanLine struct {
	Provider Provider `json:"provider"`
	Service  Service  `json:"service"`
}

// PlanWarning flags a plan that does not meet the requested constraints.
type PlanWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarningExceedsBudget      = "exceeds_budget"
	WarningDuplicateCategory  = "duplicate_category"
	WarningUnexpectedCategory = "unexpected_category"
)

// ReconciledPlan is what clients render and later confirm.
type ReconciledPlan struct {
	Budget        float64       `json:"budget"`
	Location      string        `json:"location"`
	Items         []PlanItem    `json:"plan"`
	Lines         []PlanLine    `json:"lines"`
	Justification string        `json:"justification"`
	TotalCost     float64       `json:"totalCost"`
	Warnings      []PlanWarning `json:"warnings,omitempty"`
}
