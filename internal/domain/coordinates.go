package domain

import "fmt"

// Immutable geographic coordinates of a delivery box (latitude, longitude).
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Return coordinates formatted to four decimals, the precision shown on box listings.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}
