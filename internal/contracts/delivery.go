package contracts

import "sdb-client/internal/domain"

type UpdateDeliveryStatusRequest struct {
	ParcelID          string                `json:"parcelId" validate:"required"`
	Status            domain.DeliveryStatus `json:"status" validate:"required,oneof=DISPATCHED IN_TRANSIT OUT_FOR_DELIVERY DELIVERED"`
	Location          string                `json:"location" validate:"required"`
	ServiceProviderID string                `json:"serviceProviderId" validate:"required"`
}

// DeliveryStatusResponse is the answer of GET /delivery/status/{parcelId}.
// Its status field is the parcel's delivery status, not an envelope status.
type DeliveryStatusResponse struct {
	Status  domain.DeliveryStatus `json:"status" validate:"required"`
	Message string                `json:"message,omitempty"`
}
