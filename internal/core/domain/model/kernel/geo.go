package kernel

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0

	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object representing a coordinate on the
// Earth's surface. It is used for route origins, destinations and stops, and
// for distance-based price estimation.
//
// The zero value of GeoPoint is invalid; use NewGeoPoint to create instances.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given latitude and longitude in
// decimal degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180].
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for equality of coordinates.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle distance in kilometers between two
// points using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - p.latitude) * math.Pi / 180
	dLon := (other.longitude - p.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLatitude sets the latitude with validation.
// Note: pointer receiver is intentional for self-encapsulated validation
// during construction; the public API uses value receivers.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < minLatitude || latitude > maxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < minLongitude || longitude > maxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}

	p.longitude = longitude
	return nil
}

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ErrPincodeIsInvalid is returned when a postal code does not match the
// six-digit Indian pincode format.
var ErrPincodeIsInvalid = errs.NewValueIsInvalidError(
	"pincode must be a six digit code not starting with zero")

// Pincode is an immutable value object representing an Indian postal code.
type Pincode struct {
	value string
}

// NewPincode creates a Pincode after validating the six-digit format.
func NewPincode(value string) (Pincode, error) {
	if !pincodePattern.MatchString(value) {
		return Pincode{}, ErrPincodeIsInvalid
	}
	return Pincode{value: value}, nil
}

// String returns the pincode digits.
func (p Pincode) String() string {
	return p.value
}

// IsEqual compares two pincodes.
func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

// Validate checks that the pincode is non-empty and well formed.
func (p Pincode) Validate() error {
	if !pincodePattern.MatchString(p.value) {
		return ErrPincodeIsInvalid
	}
	return nil
}
