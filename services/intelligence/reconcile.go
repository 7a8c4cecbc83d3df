package ai

import (
	"fmt"

	"festeasy/models"
)

// Reconcile maps plan pairs back to live catalog records. Pairs that no longer
// resolve are dropped without error; the plan itself is left untouched.
func Reconcile(budget float64, location string, plan *models.PartyPlan, providers []models.Provider) models.ReconciledPlan {
	out := models.ReconciledPlan{
		Budget:   budget,
		Location: location,
		Lines:    []models.PlanLine{},
	}
	if plan == nil {
		return out
	}
	out.Items = append([]models.PlanItem(nil), plan.Plan...)
	out.Justification = plan.Justification
	out.TotalCost = plan.TotalCost

	byID := make(map[string]models.Provider, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}
	for _, item := range plan.Plan {
		p, ok := byID[item.ProviderID]
		if !ok {
			continue
		}
		svc, ok := p.FindService(item.ServiceID)
		if !ok {
			continue
		}
		out.Lines = append(out.Lines, models.PlanLine{Provider: p.Clone(), Service: svc})
	}

	out.Warnings = CheckConstraints(budget, out.TotalCost, out.Lines)
	return out
}

var plannedCategories = map[models.ServiceCategory]bool{
	models.CategoryFood:       true,
	models.CategoryMusic:      true,
	models.CategoryDecoration: true,
}

// CheckConstraints reports how a plan misses the requested budget and
// category rules. It never changes the plan.
func CheckConstraints(budget, totalCost float64, lines []models.PlanLine) []models.PlanWarning {
	var warnings []models.PlanWarning

	var sum float64
	for _, l := range lines {
		sum += l.Service.Price
	}
	if totalCost > budget || sum > budget {
		warnings = append(warnings, models.PlanWarning{
			Code:    models.WarningExceedsBudget,
			Message: fmt.Sprintf("El plan cuesta %.2f MXN y excede el presupuesto de %.2f MXN.", max(totalCost, sum), budget),
		})
	}

	seen := make(map[models.ServiceCategory]bool)
	for _, l := range lines {
		c := l.Provider.Category
		if !plannedCategories[c] {
			warnings = append(warnings, models.PlanWarning{
				Code:    models.WarningUnexpectedCategory,
				Message: fmt.Sprintf("%s pertenece a la categoría %s, que no forma parte del plan.", l.Provider.Name, c),
			})
			continue
		}
		if seen[c] {
			warnings = append(warnings, models.PlanWarning{
				Code:    models.WarningDuplicateCategory,
				Message: fmt.Sprintf("El plan incluye más de un proveedor de %s.", c),
			})
		}
		seen[c] = true
	}
	return warnings
}

// Services returns the catalog services of the reconciled lines in order.
func Services(plan models.ReconciledPlan) []models.Service {
	out := make([]models.Service, 0, len(plan.Lines))
	for _, l := range plan.Lines {
		out = append(out, l.Service)
	}
	return out
}
