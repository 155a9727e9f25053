package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/property-search-service/internal/config"
	"github.com/property-search-service/internal/domain"
	"github.com/property-search-service/internal/domain/repository"
	"go.uber.org/zap"
)

// googleTypeByCategory - соответствие наших категорий типам Google Places
var googleTypeByCategory = map[string]string{
	domain.AmenityCategorySchool:       "school",
	domain.AmenityCategoryHospital:     "hospital",
	domain.AmenityCategoryRestaurant:   "restaurant",
	domain.AmenityCategoryBank:         "bank",
	domain.AmenityCategoryGym:          "gym",
	domain.AmenityCategoryShoppingMall: "shopping_mall",
	domain.AmenityCategoryPark:         "park",
	domain.AmenityCategoryMetroStation: "subway_station",
}

type googleClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewGoogleClient создаёт клиент Google Places API
func NewGoogleClient(cfg *config.PlacesConfig, logger *zap.Logger) repository.PlacesRepository {
	return &googleClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type googlePlace struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types"`
}

type nearbySearchResponse struct {
	Status  string        `json:"status"`
	Results []googlePlace `json:"results"`
}

type placeDetailsResponse struct {
	Status string      `json:"status"`
	Result googlePlace `json:"result"`
}

func (c *googleClient) LookupCandidates(ctx context.Context, origin domain.Coordinate, category string, radiusMeters float64) ([]domain.AmenityPoint, error) {
	placeType, ok := googleTypeByCategory[category]
	if !ok {
		return nil, nil
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Set("radius", fmt.Sprintf("%.0f", radiusMeters))
	q.Set("type", placeType)
	q.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/place/nearbysearch/json?%s", c.baseURL, q.Encode())

	var resp nearbySearchResponse
	if err := c.doJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		c.logger.Error("Places API returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("category", category))
		return nil, fmt.Errorf("places API returned status: %s", resp.Status)
	}

	points := make([]domain.AmenityPoint, 0, len(resp.Results))
	for _, p := range resp.Results {
		points = append(points, domain.AmenityPoint{
			Category:    category,
			Name:        p.Name,
			Address:     p.Vicinity,
			PlaceID:     p.PlaceID,
			Rating:      p.Rating,
			RatingCount: p.UserRatingsTotal,
			Coordinates: domain.Coordinate{
				Lat: p.Geometry.Location.Lat,
				Lng: p.Geometry.Location.Lng,
			},
		})
	}

	return points, nil
}

func (c *googleClient) GetPlaceDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/place/details/json?%s", c.baseURL, q.Encode())

	var resp placeDetailsResponse
	if err := c.doJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND", "INVALID_REQUEST":
		return nil, nil
	default:
		return nil, fmt.Errorf("places API returned status: %s", resp.Status)
	}

	return &domain.PlaceDetails{
		PlaceID:     resp.Result.PlaceID,
		Name:        resp.Result.Name,
		Vicinity:    resp.Result.Vicinity,
		Location:    domain.Coordinate{Lat: resp.Result.Geometry.Location.Lat, Lng: resp.Result.Geometry.Location.Lng},
		Rating:      resp.Result.Rating,
		RatingCount: resp.Result.UserRatingsTotal,
		Types:       resp.Result.Types,
	}, nil
}

func (c *googleClient) doJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Places API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("places API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
