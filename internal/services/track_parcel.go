package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
)

var (
	ErrParcelNotFound      = errors.New("parcel not found")
	ErrBoxLocationNotFound = errors.New("delivery box location not found")
)

// TrackingBackend is the read side needed to track a parcel.
type TrackingBackend interface {
	ListParcels(ctx context.Context) ([]domain.Parcel, error)
	ListDeliveryBoxes(ctx context.Context) ([]domain.DeliveryBox, error)
	GetDeliveryStatus(ctx context.Context, parcelID string) (domain.DeliveryStatus, error)
}

// Tracking is what a customer sees for one parcel.
type Tracking struct {
	Parcel   domain.Parcel
	Box      domain.DeliveryBox
	Location domain.Coordinates
	Status   domain.DeliveryStatus
}

// TrackParcel looks the parcel up in the parcel list, resolves the location
// of its delivery box and reads its current delivery status.
func TrackParcel(ctx context.Context, backend TrackingBackend, parcelID string) (t Tracking, err error) {
	defer obs.Time(ctx, "services.TrackParcel")(&err)

	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return Tracking{}, &domain.ValidationError{Field: "parcelId", Message: "is required"}
	}

	parcels, err := backend.ListParcels(ctx)
	if err != nil {
		return Tracking{}, fmt.Errorf("track parcel: %w", err)
	}
	parcel, ok := FindParcel(parcels, parcelID)
	if !ok {
		return Tracking{}, fmt.Errorf("track parcel %s: %w", parcelID, ErrParcelNotFound)
	}

	boxes, err := backend.ListDeliveryBoxes(ctx)
	if err != nil {
		return Tracking{}, fmt.Errorf("track parcel: %w", err)
	}
	box, ok := FindBox(boxes, parcel.DeliveryBoxID)
	if !ok || box.Location == nil {
		return Tracking{}, fmt.Errorf("track parcel %s: %w", parcelID, ErrBoxLocationNotFound)
	}

	status, err := backend.GetDeliveryStatus(ctx, parcelID)
	if err != nil {
		return Tracking{}, fmt.Errorf("track parcel: %w", err)
	}

	return Tracking{Parcel: parcel, Box: box, Location: *box.Location, Status: status}, nil
}
