package models

// CartItem pairs a Service with its owning Provider for display.
type CartItem struct {
	Service  Service  `json:"service"`
	Provider Provider `json:"provider"`
}

// CartView is the cart as returned to clients.
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
