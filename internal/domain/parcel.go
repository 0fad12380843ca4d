package domain

import "time"

// DeliveryStatus values are owned by the backend; the client only displays
// them and gates the pickup flow on StatusDelivered.
type DeliveryStatus string

const (
	StatusDispatched     DeliveryStatus = "DISPATCHED"
	StatusInTransit      DeliveryStatus = "IN_TRANSIT"
	StatusOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      DeliveryStatus = "DELIVERED"
)

// Statuses a courier may report, in delivery order.
var CourierStatuses = []DeliveryStatus{
	StatusDispatched,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
}

func (s DeliveryStatus) Valid() bool {
	for _, v := range CourierStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Represents a shipment tracked end-to-end.
// CourierID stays nil until a courier is assigned.
type Parcel struct {
	ParcelID      string         `json:"parcelId"`
	Size          BoxType        `json:"size"`
	Destination   string         `json:"destination"`
	IsFragile     bool           `json:"isFragile"`
	UserID        string         `json:"userId"`
	DeliveryBoxID string         `json:"deliveryBoxId"`
	CourierID     *string        `json:"courierId"`
	Status        DeliveryStatus `json:"status,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Assigned reports whether a courier has been stamped on the parcel.
func (p Parcel) Assigned() bool {
	return p.CourierID != nil && *p.CourierID != ""
}
