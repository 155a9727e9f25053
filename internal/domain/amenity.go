package domain

// Amenity category constants
const (
	AmenityCategorySchool       = "school"
	AmenityCategoryHospital     = "hospital"
	AmenityCategoryRestaurant   = "restaurant"
	AmenityCategoryBank         = "bank"
	AmenityCategoryGym          = "gym"
	AmenityCategoryShoppingMall = "shopping_mall"
	AmenityCategoryPark         = "park"
	AmenityCategoryMetroStation = "metro_station"
)

// AmenityCategories возвращает полный список категорий объектов инфраструктуры
func AmenityCategories() []string {
	return []string{
		AmenityCategorySchool,
		AmenityCategoryHospital,
		AmenityCategoryRestaurant,
		AmenityCategoryBank,
		AmenityCategoryGym,
		AmenityCategoryShoppingMall,
		AmenityCategoryPark,
		AmenityCategoryMetroStation,
	}
}

// DefaultAmenityCategories возвращает категории по умолчанию,
// если клиент не указал ни одной
func DefaultAmenityCategories() []string {
	return []string{
		AmenityCategorySchool,
		AmenityCategoryHospital,
		AmenityCategoryRestaurant,
		AmenityCategoryBank,
	}
}

// IsValidAmenityCategory проверяет, что категория входит в допустимый набор
func IsValidAmenityCategory(c string) bool {
	switch c {
	case AmenityCategorySchool, AmenityCategoryHospital, AmenityCategoryRestaurant,
		AmenityCategoryBank, AmenityCategoryGym, AmenityCategoryShoppingMall,
		AmenityCategoryPark, AmenityCategoryMetroStation:
		return true
	}
	return false
}

// AmenityPoint представляет объект инфраструктуры рядом с объявлением
type AmenityPoint struct {
	Category    string     `json:"type"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Distance    float64    `json:"distance"` // meters
	Duration    int        `json:"duration"` // minutes, walking
	PlaceID     string     `json:"placeId"`
	Rating      *float64   `json:"rating,omitempty"`
	RatingCount *int       `json:"userRatingsTotal,omitempty"`
	Coordinates Coordinate `json:"coordinates"`
}

// PlaceDetails представляет подробную информацию о месте от внешнего провайдера
type PlaceDetails struct {
	PlaceID     string     `json:"place_id"`
	Name        string     `json:"name"`
	Vicinity    string     `json:"vicinity"`
	Location    Coordinate `json:"location"`
	Rating      *float64   `json:"rating,omitempty"`
	RatingCount *int       `json:"user_ratings_total,omitempty"`
	Types       []string   `json:"types"`
}
