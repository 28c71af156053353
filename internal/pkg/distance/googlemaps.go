package distance

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// MapsEstimator asks the Google Maps Directions API for the driving
// distance. It falls back to the postal heuristic when the API cannot
// find a route, so a transient Maps outage never blocks a quote.
type MapsEstimator struct {
	client   *maps.Client
	fallback Estimator
}

func NewMapsEstimator(apiKey string, fallback Estimator) (*MapsEstimator, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &MapsEstimator{
		client:   client,
		fallback: fallback,
	}, nil
}

func (e *MapsEstimator) Estimate(ctx context.Context, pickupPostalCode, deliveryPostalCode string) (float64, error) {
	r := &maps.DirectionsRequest{
		Origin:      pickupPostalCode + ", Netherlands",
		Destination: deliveryPostalCode + ", Netherlands",
		Mode:        maps.TravelModeDriving,
		Region:      "nl",
	}

	routes, _, err := e.client.Directions(ctx, r)
	if err != nil || len(routes) == 0 || len(routes[0].Legs) == 0 {
		return e.fallback.Estimate(ctx, pickupPostalCode, deliveryPostalCode)
	}

	meters := 0
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
	}

	return float64(meters) / 1000.0, nil
}
