package contracts

import "sdb-client/internal/domain"

type ListUsersResponse struct {
	Envelope
	Users []domain.User `json:"users"`
}

type ListDeliveryBoxesResponse struct {
	Envelope
	DeliveryBoxes []domain.DeliveryBox `json:"deliveryBoxes"`
}

type CreateDeliveryBoxRequest struct {
	Type      domain.BoxType      `json:"type" validate:"required,oneof=SMALL MEDIUM LARGE"`
	Address   string              `json:"address" validate:"required"`
	IsSecured bool                `json:"isSecured"`
	Status    domain.BoxStatus    `json:"status" validate:"required,oneof=AVAILABLE UNAVAILABLE"`
	Location  *domain.Coordinates `json:"location,omitempty"`
}

type CreateDeliveryBoxResponse struct {
	Envelope
	BoxID string `json:"boxId,omitempty"`
}
