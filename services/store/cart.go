package store

import "festeasy/models"

// Cart returns the cart items in insertion order.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCart(s.cart)
}

// CartTotal sums the prices of every item in the cart.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.cart {
		total += item.Service.Price
	}
	return total
}

// AddToCart appends service if its owning provider can be resolved and it is
// not already in the cart. Both misses are silent.
func (s *Store) AddToCart(service models.Service) {
	_ = s.mutate(EventCart, func() (bool, error) {
		return s.addToCartLocked(service), nil
	})
}

// AddServiceToCart resolves serviceID against the catalog and adds it.
func (s *Store) AddServiceToCart(serviceID string) {
	_ = s.mutate(EventCart, func() (bool, error) {
		svc, ok := s.findServiceLocked(serviceID)
		if !ok {
			return false, nil
		}
		return s.addToCartLocked(svc), nil
	})
}

// RemoveFromCart drops the item for serviceID if present.
func (s *Store) RemoveFromCart(serviceID string) {
	_ = s.mutate(EventCart, func() (bool, error) {
		for i, item := range s.cart {
			if item.Service.ID == serviceID {
				s.cart = append(s.cart[:i:i], s.cart[i+1:]...)
				return true, nil
			}
		}
		return false, nil
	})
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	_ = s.mutate(EventCart, func() (bool, error) {
		if len(s.cart) == 0 {
			return false, nil
		}
		s.cart = nil
		return true, nil
	})
}

// ReplaceCart swaps the cart contents for services in a single mutation,
// applying the same rules as AddToCart to each one.
func (s *Store) ReplaceCart(services []models.Service) {
	_ = s.mutate(EventCart, func() (bool, error) {
		previous := s.cart
		s.cart = nil
		for _, svc := range services {
			s.addToCartLocked(svc)
		}
		return len(previous) > 0 || len(s.cart) > 0, nil
	})
}

func (s *Store) addToCartLocked(service models.Service) bool {
	i := s.providerIndexLocked(service.ProviderID)
	if i < 0 {
		return false
	}
	owned, ok := s.providers[i].FindService(service.ID)
	if !ok {
		return false
	}
	for _, item := range s.cart {
		if item.Service.ID == owned.ID {
			return false
		}
	}
	s.cart = append(s.cart, models.CartItem{Service: owned, Provider: s.providers[i].Clone()})
	return true
}
