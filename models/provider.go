package models

// ServiceCategory is the single category a Provider operates in.
type ServiceCategory string

const (
	CategoryFood        ServiceCategory = "Food"
	CategoryMusic       ServiceCategory = "Music"
	CategoryDecoration  ServiceCategory = "Decoration"
	CategoryVenue       ServiceCategory = "Venue"
	CategoryPhotography ServiceCategory = "Photography"
)

// Categories lists every known category in display order.
var Categories = []ServiceCategory{
	CategoryFood,
	CategoryMusic,
	CategoryDecoration,
	CategoryVenue,
	CategoryPhotography,
}

// Valid reports whether c is one of the known categories.
func (c ServiceCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Service is a purchasable offering owned by exactly one Provider.
type Service struct {
	ID          string  `json:"id"`
	ProviderID  string  `json:"providerId"` // owning provider, relation only
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // MXN
}

// ServiceDraft is the provider-supplied input for a new Service.
type ServiceDraft struct {
	Name        string  `json:"name" binding:"required" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0" validate:"gte=0"`
}

type Provider struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ServiceCategory `json:"category"`
	Logo        string          `json:"logo"`
	Gallery     []string        `json:"gallery"`
	Location    string          `json:"location"`
	Rating      float64         `json:"rating"`  // 0-5
	Reviews     int             `json:"reviews"` // review count
	Services    []Service       `json:"services"`
}

// FindService returns the provider's own service with the given id.
func (p *Provider) FindService(serviceID string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == serviceID {
			return s, true
		}
	}
	return Service{}, false
}

// Clone returns a deep copy so callers never share slices with the store.
func (p Provider) Clone() Provider {
	out := p
	out.Gallery = append([]string(nil), p.Gallery...)
	out.Services = append([]Service(nil), p.Services...)
	return out
}
