package domain

type BoxType string

const (
	BoxSmall  BoxType = "SMALL"
	BoxMedium BoxType = "MEDIUM"
	BoxLarge  BoxType = "LARGE"
)

type BoxStatus string

const (
	BoxAvailable   BoxStatus = "AVAILABLE"
	BoxUnavailable BoxStatus = "UNAVAILABLE"
)

// Represents a physical pickup locker.
// BoxID is assigned by the backend on creation. Location is only present
// when one was selected at creation time.
type DeliveryBox struct {
	BoxID     string       `json:"boxId"`
	Address   string       `json:"address"`
	Type      BoxType      `json:"type"`
	IsSecured bool         `json:"isSecured"`
	Status    BoxStatus    `json:"status"`
	Location  *Coordinates `json:"location,omitempty"`
}
