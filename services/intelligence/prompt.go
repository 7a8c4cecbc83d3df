package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"festeasy/models"
)

type promptService struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type promptProvider struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Category models.ServiceCategory `json:"category"`
	Location string                 `json:"location"`
	Services []promptService        `json:"services"`
}

// compactCatalog keeps only what the model needs to choose: no descriptions,
// images or ratings.
func compactCatalog(providers []models.Provider) []promptProvider {
	out := make([]promptProvider, 0, len(providers))
	for _, p := range providers {
		pp := promptProvider{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Location: p.Location,
			Services: make([]promptService, 0, len(p.Services)),
		}
		for _, s := range p.Services {
			pp.Services = append(pp.Services, promptService{ID: s.ID, Name: s.Name, Price: s.Price})
		}
		out = append(out, pp)
	}
	return out
}

// BuildPrompt renders the planner instruction for budget, location and the
// catalog.
func BuildPrompt(budget float64, location string, providers []models.Provider) (string, error) {
	catalog, err := json.Marshal(compactCatalog(providers))
	if err != nil {
		return "", fmt.Errorf("marshal catalog: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Eres un planificador de fiestas experto. ")
	fmt.Fprintf(&sb, "Un cliente tiene un presupuesto de %.2f MXN para un evento en %q.\n", budget, location)
	fmt.Fprintf(&sb, "Selecciona como máximo un proveedor de cada una de estas categorías: %s, %s y %s. ",
		models.CategoryFood, models.CategoryMusic, models.CategoryDecoration)
	sb.WriteString("La suma de los precios de los servicios elegidos no debe superar el presupuesto. ")
	sb.WriteString("Prefiere proveedores ubicados en la ubicación indicada o cerca de ella.\n")
	sb.WriteString("Catálogo disponible (JSON):\n")
	sb.Write(catalog)
	sb.WriteString("\nResponde únicamente con JSON con la forma ")
	sb.WriteString(`{"plan":[{"providerId":"...","serviceId":"..."}],"justification":"...","totalCost":0}`)
	sb.WriteString(". La justificación debe ser breve y estar en español.")
	return sb.String(), nil
}
