package distance

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultKm is used when a postal code carries no digits at all.
	DefaultKm = 15.0

	// absentCode stands in for an empty locator so a quote can always
	// be produced.
	absentCode = 1000

	minKm = 2.0
	maxKm = 100.0
)

// PostalEstimator derives a distance from the numeric parts of two
// postal codes. Dutch codes are assigned roughly by region, so the
// numeric difference is a usable proxy when no routing backend is
// configured.
type PostalEstimator struct{}

func NewPostalEstimator() *PostalEstimator {
	return &PostalEstimator{}
}

func (e *PostalEstimator) Estimate(_ context.Context, pickupPostalCode, deliveryPostalCode string) (float64, error) {
	pickup, pickupOK := postalValue(pickupPostalCode)
	delivery, deliveryOK := postalValue(deliveryPostalCode)

	if !pickupOK || !deliveryOK {
		return DefaultKm, nil
	}

	km := math.Abs(float64(pickup)-float64(delivery))/100.0 + 5.0
	if km < minKm {
		km = minKm
	}
	if km > maxKm {
		km = maxKm
	}

	return km, nil
}

// postalValue extracts the digits of the first token of a postal code
// ("1015 BS" -> 1015). An empty code counts as absentCode. The second
// return is false when the token has no digits.
func postalValue(code string) (int, bool) {
	fields := strings.Fields(code)
	if len(fields) == 0 {
		return absentCode, true
	}

	var digits strings.Builder
	for _, r := range fields[0] {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}

	return value, true
}
