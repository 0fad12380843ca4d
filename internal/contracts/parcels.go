package contracts

import "sdb-client/internal/domain"

type ListParcelsResponse struct {
	Envelope
	Parcels []domain.Parcel `json:"parcels"`
}

type CreateParcelRequest struct {
	UserID        string         `json:"userId" validate:"required"`
	Size          domain.BoxType `json:"size" validate:"required,oneof=SMALL MEDIUM LARGE"`
	Destination   string         `json:"destination" validate:"required"`
	IsFragile     bool           `json:"isFragile"`
	DeliveryBoxID string         `json:"deliveryBoxId" validate:"required"`
}

type CreateParcelResponse struct {
	Envelope
	ParcelID string `json:"parcelId,omitempty"`
}

type AssignCourierRequest struct {
	ParcelID  string `json:"parcelId" validate:"required"`
	CourierID string `json:"courierId" validate:"required"`
}

// StatusResponse is the bare {status[, message]} answer of mutations.
type StatusResponse struct {
	Envelope
}
