// README: Google Maps routing adapter; resolves distance, traversed states,
// durations, and endpoint coordinates for a shipment route.
package maps

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

const metersPerMile = 1609.344

// LatLng is a plain coordinate pair decoupled from the maps SDK types.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteQuote is the resolved route for one shipment request. Immutable once
// produced; consumed by the toll estimator and the price composer.
type RouteQuote struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceMiles float64 `json:"distanceMiles"`

	// States are the two-letter codes of traversed states, in route order,
	// deduplicated. RouteText carries the concatenated step descriptions as
	// a fallback signal for region classification.
	States    []string `json:"states"`
	RouteText string   `json:"-"`

	DurationMin          float64 `json:"durationMin"`
	DurationInTrafficMin float64 `json:"durationInTrafficMin"`

	OriginLoc      LatLng `json:"originLoc"`
	DestinationLoc LatLng `json:"destinationLoc"`
	Midpoint       LatLng `json:"midpoint"`
}

// CongestionRatio is duration-in-traffic over free-flow duration; 0 when the
// traffic figure is unavailable.
func (q RouteQuote) CongestionRatio() float64 {
	if q.DurationMin <= 0 || q.DurationInTrafficMin <= 0 {
		return 0
	}
	return q.DurationInTrafficMin / q.DurationMin
}

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// ResolveRoute resolves origin/destination into a RouteQuote. Departure time
// is passed through so the directions response carries duration-in-traffic
// for the congestion signal.
func (s *RouteService) ResolveRoute(ctx context.Context, origin, destination string, departure time.Time) (RouteQuote, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Units:       maps.UnitsImperial,
		Region:      "us",
	}
	if !departure.IsZero() {
		r.DepartureTime = fmt.Sprintf("%d", departure.Unix())
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return RouteQuote{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteQuote{}, fmt.Errorf("no route found")
	}

	var q RouteQuote

	var meters int
	var duration, inTraffic time.Duration
	var stepText strings.Builder
	seenStates := map[string]bool{}

	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
		inTraffic += leg.DurationInTraffic

		for _, addr := range []string{leg.StartAddress, leg.EndAddress} {
			for _, st := range extractStates(addr) {
				if !seenStates[st] {
					seenStates[st] = true
					q.States = append(q.States, st)
				}
			}
		}
		for _, step := range leg.Steps {
			stepText.WriteString(stripHTML(step.HTMLInstructions))
			stepText.WriteString(" ")
		}
	}

	first := routes[0].Legs[0]
	last := routes[0].Legs[len(routes[0].Legs)-1]
	q.Origin = first.StartAddress
	q.Destination = last.EndAddress
	q.OriginLoc = LatLng{Lat: first.StartLocation.Lat, Lng: first.StartLocation.Lng}
	q.DestinationLoc = LatLng{Lat: last.EndLocation.Lat, Lng: last.EndLocation.Lng}
	q.Midpoint = LatLng{
		Lat: (q.OriginLoc.Lat + q.DestinationLoc.Lat) / 2,
		Lng: (q.OriginLoc.Lng + q.DestinationLoc.Lng) / 2,
	}

	q.DistanceMiles = float64(meters) / metersPerMile
	q.DurationMin = duration.Minutes()
	q.DurationInTrafficMin = inTraffic.Minutes()
	q.RouteText = stepText.String()

	return q, nil
}

// stateRe matches the ", XX " state component of a formatted US address,
// e.g. "Newark, NJ 07102, USA".
var stateRe = regexp.MustCompile(`,\s([A-Z]{2})[\s,]`)

func extractStates(address string) []string {
	var out []string
	for _, m := range stateRe.FindAllStringSubmatch(address, -1) {
		out = append(out, m[1])
	}
	return out
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	return tagRe.ReplaceAllString(s, " ")
}
