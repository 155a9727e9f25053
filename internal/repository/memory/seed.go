package memory

import (
	"time"

	"github.com/property-search-service/internal/domain"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// SeedListings возвращает демо-коллекцию объявлений по трём городам.
// В production источником была бы база данных
func SeedListings() []domain.Listing {
	return []domain.Listing{
		// Bangalore
		{
			ID:          "bang1",
			Title:       "Luxury 3BHK Apartment in Koramangala",
			Description: "Modern luxury apartment with premium amenities, close to IT parks and shopping centers. Features include modular kitchen, gym, swimming pool, and 24/7 security.",
			Price:       8500000,
			Location: domain.Location{
				City:        "Bangalore",
				State:       "Karnataka",
				Pincode:     "560034",
				Address:     "Koramangala 5th Block, Bangalore",
				Coordinates: domain.Coordinate{Lat: 12.9352, Lng: 77.6245},
			},
			PropertyType: domain.PropertyTypeApartment,
			Bedrooms:     3,
			Bathrooms:    3,
			Area:         1450,
			Amenities:    []string{"Swimming Pool", "Gym", "Club House", "Children's Play Area", "Power Backup", "Car Parking"},
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-15"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "bang2",
			Title:       "Spacious 4BHK Villa in Whitefield",
			Description: "Independent villa with private garden, modern interiors, and excellent connectivity to tech parks. Perfect for families seeking luxury and privacy.",
			Price:       15000000,
			Location: domain.Location{
				City:        "Bangalore",
				State:       "Karnataka",
				Pincode:     "560066",
				Address:     "Whitefield, Bangalore",
				Coordinates: domain.Coordinate{Lat: 12.9698, Lng: 77.7500},
			},
			PropertyType: domain.PropertyTypeVilla,
			Bedrooms:     4,
			Bathrooms:    4,
			Area:         2800,
			Amenities:    []string{"Private Garden", "Car Parking", "Power Backup", "Security", "Modular Kitchen"},
			Images: []string{
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-10"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "bang3",
			Title:       "Modern 2BHK Apartment in Indiranagar",
			Description: "Stylish apartment in the heart of Indiranagar with easy access to restaurants, cafes, and metro station. Fully furnished with contemporary design.",
			Price:       6200000,
			Location: domain.Location{
				City:        "Bangalore",
				State:       "Karnataka",
				Pincode:     "560038",
				Address:     "Indiranagar, Bangalore",
				Coordinates: domain.Coordinate{Lat: 12.9784, Lng: 77.6408},
			},
			PropertyType: domain.PropertyTypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			Area:         1100,
			Amenities:    []string{"Metro Connectivity", "Restaurants Nearby", "Power Backup", "Car Parking"},
			Images: []string{
				"https://images.unsplash.com/photo-1600566753151-384129cf4e3e?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-20"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "bang4",
			Title:       "Premium 3BHK Penthouse in HSR Layout",
			Description: "Exclusive penthouse with panoramic city views, private terrace, and world-class amenities in the heart of HSR Layout.",
			Price:       18500000,
			Location: domain.Location{
				City:        "Bangalore",
				State:       "Karnataka",
				Pincode:     "560102",
				Address:     "HSR Layout Sector 1, Bangalore",
				Coordinates: domain.Coordinate{Lat: 12.9180, Lng: 77.6410},
			},
			PropertyType: domain.PropertyTypePenthouse,
			Bedrooms:     3,
			Bathrooms:    4,
			Area:         2200,
			Amenities:    []string{"Private Terrace", "City Views", "Swimming Pool", "Gym", "Concierge Service"},
			Images: []string{
				"https://images.unsplash.com/photo-1600607688960-e095ff8d5e68?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-05"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "bang5",
			Title:       "Elegant 1BHK Studio in Electronic City",
			Description: "Perfect starter home for IT professionals. Modern studio apartment with all amenities and excellent connectivity to tech parks.",
			Price:       3200000,
			Location: domain.Location{
				City:        "Bangalore",
				State:       "Karnataka",
				Pincode:     "560100",
				Address:     "Electronic City Phase 1, Bangalore",
				Coordinates: domain.Coordinate{Lat: 12.8456, Lng: 77.6603},
			},
			PropertyType: domain.PropertyTypeStudio,
			Bedrooms:     1,
			Bathrooms:    1,
			Area:         650,
			Amenities:    []string{"Tech Park Proximity", "Power Backup", "Security", "Car Parking"},
			Images: []string{
				"https://images.unsplash.com/photo-1600121848594-d8644e57abab?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-25"),
			Status:     domain.StatusAvailable,
		},

		// Mumbai
		{
			ID:          "mum1",
			Title:       "Premium 3BHK Penthouse in Bandra",
			Description: "Luxurious penthouse with stunning city views, private terrace, and world-class amenities. Located in the heart of Bandra West.",
			Price:       25000000,
			Location: domain.Location{
				City:        "Mumbai",
				State:       "Maharashtra",
				Pincode:     "400050",
				Address:     "Bandra West, Mumbai",
				Coordinates: domain.Coordinate{Lat: 19.0596, Lng: 72.8295},
			},
			PropertyType: domain.PropertyTypePenthouse,
			Bedrooms:     3,
			Bathrooms:    4,
			Area:         2200,
			Amenities:    []string{"Private Terrace", "Swimming Pool", "Gym", "Concierge Service", "Valet Parking"},
			Images: []string{
				"https://images.unsplash.com/photo-1600047508897-98bb7a983d72?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-05"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "mum2",
			Title:       "Sea View 2BHK Apartment in Worli",
			Description: "Elegant apartment with Arabian Sea views, premium finishes, and access to exclusive club facilities.",
			Price:       19500000,
			Location: domain.Location{
				City:        "Mumbai",
				State:       "Maharashtra",
				Pincode:     "400018",
				Address:     "Worli Sea Face, Mumbai",
				Coordinates: domain.Coordinate{Lat: 19.0176, Lng: 72.8151},
			},
			PropertyType: domain.PropertyTypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			Area:         1350,
			Amenities:    []string{"Sea View", "Club House", "Swimming Pool", "Gym", "Valet Parking"},
			Images: []string{
				"https://images.unsplash.com/photo-1600566752355-35792bedcfea?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-12"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "mum3",
			Title:       "Compact 1BHK Studio in Andheri East",
			Description: "Smartly designed studio close to the metro and the airport. Ideal rental investment.",
			Price:       7500000,
			Location: domain.Location{
				City:        "Mumbai",
				State:       "Maharashtra",
				Pincode:     "400069",
				Address:     "Andheri East, Mumbai",
				Coordinates: domain.Coordinate{Lat: 19.1178, Lng: 72.8631},
			},
			PropertyType: domain.PropertyTypeStudio,
			Bedrooms:     1,
			Bathrooms:    1,
			Area:         550,
			Amenities:    []string{"Metro Connectivity", "Airport Proximity", "Security", "Power Backup"},
			Images: []string{
				"https://images.unsplash.com/photo-1600585153490-76fb20a32601?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-28"),
			Status:     domain.StatusSold,
		},

		// Pune
		{
			ID:          "pune1",
			Title:       "Tech Park Adjacent 3BHK in Hinjewadi",
			Description: "Brand new apartment complex adjacent to major IT parks in Pune. Modern amenities and excellent connectivity.",
			Price:       7800000,
			Location: domain.Location{
				City:        "Pune",
				State:       "Maharashtra",
				Pincode:     "411057",
				Address:     "Hinjewadi Phase 2, Pune",
				Coordinates: domain.Coordinate{Lat: 18.5908, Lng: 73.7331},
			},
			PropertyType: domain.PropertyTypeApartment,
			Bedrooms:     3,
			Bathrooms:    3,
			Area:         1650,
			Amenities:    []string{"IT Park Proximity", "Swimming Pool", "Gym", "Club House", "Metro Planned"},
			Images: []string{
				"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-22"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "pune2",
			Title:       "Riverside 4BHK Villa in Koregaon Park",
			Description: "Premium villa in the greenest part of Pune with private lawn, servant quarters, and gated security.",
			Price:       15500000,
			Location: domain.Location{
				City:        "Pune",
				State:       "Maharashtra",
				Pincode:     "411001",
				Address:     "Koregaon Park, Pune",
				Coordinates: domain.Coordinate{Lat: 18.5362, Lng: 73.8939},
			},
			PropertyType: domain.PropertyTypeVilla,
			Bedrooms:     4,
			Bathrooms:    5,
			Area:         3100,
			Amenities:    []string{"Private Lawn", "Servant Quarters", "Gated Community", "Car Parking"},
			Images: []string{
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-08"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "pune3",
			Title:       "Modern 2BHK in Baner",
			Description: "Contemporary apartment in rapidly developing Baner area with IT companies nearby and modern lifestyle amenities.",
			Price:       6200000,
			Location: domain.Location{
				City:        "Pune",
				State:       "Maharashtra",
				Pincode:     "411045",
				Address:     "Baner, Pune",
				Coordinates: domain.Coordinate{Lat: 18.5679, Lng: 73.7785},
			},
			PropertyType: domain.PropertyTypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			Area:         1200,
			Amenities:    []string{"IT Companies Nearby", "Modern Amenities", "Shopping Centers", "Gym"},
			Images: []string{
				"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-01-18"),
			Status:     domain.StatusAvailable,
		},
		{
			ID:          "pune4",
			Title:       "Affordable 3BHK House in Wakad",
			Description: "Family home in a quiet residential lane, walking distance from schools and the D-Mart complex.",
			Price:       2900000,
			Location: domain.Location{
				City:        "Pune",
				State:       "Maharashtra",
				Pincode:     "411057",
				Address:     "Wakad, Pune",
				Coordinates: domain.Coordinate{Lat: 18.5983, Lng: 73.7639},
			},
			PropertyType: domain.PropertyTypeHouse,
			Bedrooms:     3,
			Bathrooms:    2,
			Area:         1400,
			Amenities:    []string{"Schools Nearby", "Car Parking", "Power Backup"},
			Images: []string{
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800&h=600&fit=crop",
			},
			ListedDate: date("2024-02-01"),
			Status:     domain.StatusRented,
		},
	}
}
