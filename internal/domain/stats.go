package domain

// ListingStatistics представляет агрегированную статистику по объявлениям
type ListingStatistics struct {
	TotalProperties     int             `json:"totalProperties"`
	AvailableProperties int             `json:"availableProperties"`
	AvgPrice            int64           `json:"avgPrice"`
	Cities              []string        `json:"cities"`
	PropertyTypes       []string        `json:"propertyTypes"`
	PriceRanges         PriceRangeStats `json:"priceRanges"`
}

// PriceRangeStats - распределение объявлений по ценовым диапазонам (в рупиях)
type PriceRangeStats struct {
	Under5M  int `json:"under5M"`
	From5M   int `json:"5M-10M"`
	From10M  int `json:"10M-20M"`
	Above20M int `json:"above20M"`
}
