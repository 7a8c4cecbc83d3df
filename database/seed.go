package database

import "festeasy/models"

// SeedProviders returns a fresh copy of the demo catalog every process starts with.
func SeedProviders() []models.Provider {
	return []models.Provider{
		{
			ID:          "p1",
			Name:        "Banquetes La Abuela",
			Description: "Cocina mexicana tradicional para eventos de 20 a 300 invitados.",
			Category:    models.CategoryFood,
			Logo:        "https://picsum.photos/seed/p1-logo/200",
			Gallery: []string{
				"https://picsum.photos/seed/p1-1/800/600",
				"https://picsum.photos/seed/p1-2/800/600",
			},
			Location: "Ciudad de México",
			Rating:   4.8,
			Reviews:  124,
			Services: []models.Service{
				{ID: "s1-1", ProviderID: "p1", Name: "Taquiza para 50 personas", Description: "Cinco guisados, tortillas hechas a mano, salsas y aguas frescas.", Price: 5000},
				{ID: "s1-2", ProviderID: "p1", Name: "Buffet premium para 100 personas", Description: "Entrada, dos platos fuertes, postre y servicio de meseros.", Price: 18000},
			},
		},
		{
			ID:          "p2",
			Name:        "Mariachi Sol de Jalisco",
			Description: "Mariachi de 8 elementos con repertorio clásico y moderno.",
			Category:    models.CategoryMusic,
			Logo:        "https://picsum.photos/seed/p2-logo/200",
			Gallery:     []string{"https://picsum.photos/seed/p2-1/800/600"},
			Location:    "Ciudad de México",
			Rating:      4.6,
			Reviews:     89,
			Services: []models.Service{
				{ID: "s2-1", ProviderID: "p2", Name: "Serenata de 1 hora", Description: "Doce canciones a elección del cliente.", Price: 4500},
				{ID: "s2-2", ProviderID: "p2", Name: "Show de 3 horas", Description: "Ideal para bodas y XV años.", Price: 12000},
			},
		},
		{
			ID:          "p3",
			Name:        "Globos y Detalles",
			Description: "Decoración temática con globos, flores y centros de mesa.",
			Category:    models.CategoryDecoration,
			Logo:        "https://picsum.photos/seed/p3-logo/200",
			Gallery: []string{
				"https://picsum.photos/seed/p3-1/800/600",
				"https://picsum.photos/seed/p3-2/800/600",
				"https://picsum.photos/seed/p3-3/800/600",
			},
			Location: "Ciudad de México",
			Rating:   4.4,
			Reviews:  57,
			Services: []models.Service{
				{ID: "s3-1", ProviderID: "p3", Name: "Arco de globos", Description: "Arco orgánico de hasta 4 metros en los colores del evento.", Price: 2500},
				{ID: "s3-2", ProviderID: "p3", Name: "Decoración integral", Description: "Arco, centros de mesa y mesa de dulces.", Price: 8000},
			},
		},
		{
			ID:          "p4",
			Name:        "Jardín Los Arcos",
			Description: "Jardín para eventos con capacidad para 250 personas.",
			Category:    models.CategoryVenue,
			Logo:        "https://picsum.photos/seed/p4-logo/200",
			Gallery:     []string{"https://picsum.photos/seed/p4-1/800/600"},
			Location:    "Cuernavaca",
			Rating:      4.7,
			Reviews:     203,
			Services: []models.Service{
				{ID: "s4-1", ProviderID: "p4", Name: "Renta de jardín por 6 horas", Description: "Incluye mobiliario básico y estacionamiento.", Price: 25000},
			},
		},
		{
			ID:          "p5",
			Name:        "Foto Momentos",
			Description: "Fotografía y video profesional para todo tipo de eventos.",
			Category:    models.CategoryPhotography,
			Logo:        "https://picsum.photos/seed/p5-logo/200",
			Gallery: []string{
				"https://picsum.photos/seed/p5-1/800/600",
				"https://picsum.photos/seed/p5-2/800/600",
			},
			Location: "Guadalajara",
			Rating:   4.9,
			Reviews:  312,
			Services: []models.Service{
				{ID: "s5-1", ProviderID: "p5", Name: "Cobertura fotográfica de 4 horas", Description: "200 fotos editadas entregadas en galería digital.", Price: 6000},
				{ID: "s5-2", ProviderID: "p5", Name: "Foto y video de 8 horas", Description: "Incluye video resumen de 5 minutos.", Price: 15000},
			},
		},
		{
			ID:          "p6",
			Name:        "DJ Beat Master",
			Description: "DJ con equipo de audio e iluminación para fiestas.",
			Category:    models.CategoryMusic,
			Logo:        "https://picsum.photos/seed/p6-logo/200",
			Gallery:     []string{"https://picsum.photos/seed/p6-1/800/600"},
			Location:    "Monterrey",
			Rating:      4.3,
			Reviews:     41,
			Services: []models.Service{
				{ID: "s6-1", ProviderID: "p6", Name: "DJ 5 horas", Description: "Audio, iluminación robótica y pista de baile.", Price: 7000},
			},
		},
	}
}

// SeedBookingRequests returns the demo requests shown on the provider dashboard.
// They reference services of the demo provider p1.
func SeedBookingRequests() []models.BookingRequest {
	return []models.BookingRequest{
		{ID: "r1", CustomerName: "Ana García", EventDate: "2026-11-14", EventType: "Cumpleaños", Location: "Ciudad de México", Guests: 50, ServiceID: "s1-1", Status: models.StatusPending},
		{ID: "r2", CustomerName: "Luis Hernández", EventDate: "2026-12-05", EventType: "Boda", Location: "Coyoacán, Ciudad de México", Guests: 120, ServiceID: "s1-2", Status: models.StatusPending},
		{ID: "r3", CustomerName: "María López", EventDate: "2026-10-31", EventType: "Fiesta de Halloween", Location: "Naucalpan", Guests: 40, ServiceID: "s1-1", Status: models.StatusAccepted},
	}
}
