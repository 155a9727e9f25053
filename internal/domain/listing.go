package domain

import "time"

// Property type constants
const (
	PropertyTypeApartment = "apartment"
	PropertyTypeVilla     = "villa"
	PropertyTypeHouse     = "house"
	PropertyTypeStudio    = "studio"
	PropertyTypePenthouse = "penthouse"
)

// Listing status constants
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusRented    = "rented"
)

// Location - адрес и координаты объявления
type Location struct {
	City        string     `json:"city"`
	State       string     `json:"state"`
	Pincode     string     `json:"pincode"`
	Address     string     `json:"address"`
	Coordinates Coordinate `json:"coordinates"`
}

// Listing представляет объявление о продаже недвижимости
type Listing struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        int64     `json:"price"`
	Location     Location  `json:"location"`
	PropertyType string    `json:"propertyType"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Area         int       `json:"area"` // sq ft
	Amenities    []string  `json:"amenities"`
	Images       []string  `json:"images"`
	ListedDate   time.Time `json:"listedDate"`
	Status       string    `json:"status"`
}

// IsValidPropertyType проверяет, что тип недвижимости входит в допустимый набор
func IsValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeVilla, PropertyTypeHouse,
		PropertyTypeStudio, PropertyTypePenthouse:
		return true
	}
	return false
}
