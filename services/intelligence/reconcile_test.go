package ai

import (
	"testing"

	"festeasy/database"
	"festeasy/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warningCodes(ws []models.PlanWarning) []string {
	codes := make([]string, 0, len(ws))
	for _, w := range ws {
		codes = append(codes, w.Code)
	}
	return codes
}

func TestReconcileDropsDeletedService(t *testing.T) {
	providers := database.SeedProviders()
	plan := &models.PartyPlan{
		Plan: []models.PlanItem{
			{ProviderID: "p1", ServiceID: "s1-1"},
			{ProviderID: "p2", ServiceID: "s2-deleted"},
		},
		Justification: "ok",
		TotalCost:     5000,
	}

	got := Reconcile(10000, "Ciudad de México", plan, providers)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, "s1-1", got.Lines[0].Service.ID)
	assert.Equal(t, "p1", got.Lines[0].Provider.ID)
	assert.Len(t, got.Items, 2)
}

func TestReconcileDropsPairWithWrongOwner(t *testing.T) {
	plan := &models.PartyPlan{Plan: []models.PlanItem{{ProviderID: "p2", ServiceID: "s1-1"}, {ProviderID: "p404", ServiceID: "s1-1"}}}
	got := Reconcile(10000, "CDMX", plan, database.SeedProviders())
	assert.Empty(t, got.Lines)
}

func TestReconcileKeepsOverBudgetPlanWithWarning(t *testing.T) {
	plan, err := ParsePlan(overBudgetResponse)
	require.NoError(t, err)

	got := Reconcile(10000, "Ciudad de México", plan, database.SeedProviders())

	assert.Equal(t, 12000.0, got.TotalCost)
	assert.Len(t, got.Lines, 3)
	assert.Equal(t, []string{models.WarningExceedsBudget}, warningCodes(got.Warnings))
}

func TestCheckConstraints(t *testing.T) {
	providers := database.SeedProviders()
	line := func(pi, si int) models.PlanLine {
		return models.PlanLine{Provider: providers[pi], Service: providers[pi].Services[si]}
	}

	assert.Empty(t, CheckConstraints(20000, 12000, []models.PlanLine{line(0, 0), line(1, 0), line(2, 0)}))

	// p2 and p6 are both Music; p4 is a Venue.
	got := CheckConstraints(100000, 1000, []models.PlanLine{line(1, 0), line(5, 0), line(3, 0)})
	assert.Equal(t, []string{models.WarningDuplicateCategory, models.WarningUnexpectedCategory}, warningCodes(got))

	// Reported total is within budget but the resolved prices are not.
	got = CheckConstraints(6000, 100, []models.PlanLine{line(0, 0), line(1, 0)})
	assert.Equal(t, []string{models.WarningExceedsBudget}, warningCodes(got))
}

func TestReconcileNilPlan(t *testing.T) {
	got := Reconcile(1, "x", nil, database.SeedProviders())
	assert.Empty(t, got.Lines)
	assert.Empty(t, got.Warnings)
}
