// README: Google Places adapter for auto-show demand detection.
package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// EventsService searches for auto shows near a route endpoint. A detected
// show inside the configured window signals seasonal carrier demand around
// that city.
type EventsService struct {
	client *maps.Client
}

// NewEventsService creates a new EventsService with the given API Key.
func NewEventsService(apiKey string) (*EventsService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &EventsService{client: client}, nil
}

// Venues that match the query but never host shows.
var excludedVenueKeywords = []string{"Museum", "Dealership", "Dealer", "Rental", "Repair"}

// NearbyAutoShow reports whether an auto-show venue is active near the given
// point for a shipment date inside windowDays of now. The places feed has no
// event dates, so the date window bounds how far ahead a hit is trusted.
func (s *EventsService) NearbyAutoShow(ctx context.Context, loc LatLng, shipDate time.Time, radiusMiles float64, windowDays int) (bool, error) {
	if windowDays > 0 {
		horizon := time.Now().AddDate(0, 0, windowDays)
		if shipDate.After(horizon) {
			return false, nil
		}
	}

	r := &maps.TextSearchRequest{
		Query:    "auto show",
		Location: &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng},
		Radius:   uint(radiusMiles * metersPerMile),
		Region:   "us",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return false, fmt.Errorf("places api error: %w", err)
	}

	for _, result := range resp.Results {
		skip := false
		for _, kw := range excludedVenueKeywords {
			if strings.Contains(result.Name, kw) {
				skip = true
				break
			}
		}
		if !skip {
			return true, nil
		}
	}
	return false, nil
}
