package services

import (
	"slices"

	"sdb-client/internal/domain"
)

// FilterByRole returns the users holding role, in their original order.
// Used to scope courier and customer pickers.
func FilterByRole(users []domain.User, role domain.Role) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// UnassignedParcels returns the parcels with no courier, preserving order.
// The result is never nil.
func UnassignedParcels(parcels []domain.Parcel) []domain.Parcel {
	out := make([]domain.Parcel, 0, len(parcels))
	for _, p := range parcels {
		if !p.Assigned() {
			out = append(out, p)
		}
	}
	return out
}

// ParcelsForCourier returns the parcels assigned to courierID.
func ParcelsForCourier(parcels []domain.Parcel, courierID string) []domain.Parcel {
	out := make([]domain.Parcel, 0, len(parcels))
	for _, p := range parcels {
		if p.Assigned() && *p.CourierID == courierID {
			out = append(out, p)
		}
	}
	return out
}

// ParcelsOwnedBy returns the parcels whose owner is userID.
func ParcelsOwnedBy(parcels []domain.Parcel, userID string) []domain.Parcel {
	out := make([]domain.Parcel, 0, len(parcels))
	for _, p := range parcels {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// WithCourierAssigned returns a copy of parcels in which the parcel with
// parcelID has courierID set. The input slice is not modified and every
// other element is carried over unchanged.
//
// This is the local reflection of a successful assignment; callers still
// refetch the list the next time the view is revisited.
func WithCourierAssigned(parcels []domain.Parcel, parcelID, courierID string) []domain.Parcel {
	out := slices.Clone(parcels)
	for i := range out {
		if out[i].ParcelID == parcelID {
			id := courierID
			out[i].CourierID = &id
		}
	}
	return out
}

// WithStatus is WithCourierAssigned for a successful delivery status update.
func WithStatus(parcels []domain.Parcel, parcelID string, status domain.DeliveryStatus) []domain.Parcel {
	out := slices.Clone(parcels)
	for i := range out {
		if out[i].ParcelID == parcelID {
			out[i].Status = status
		}
	}
	return out
}

// PickDefault returns the key of the first element, used to seed a form's
// default selection. ok is false for an empty collection.
func PickDefault[T any, K any](items []T, key func(T) K) (k K, ok bool) {
	if len(items) == 0 {
		return k, false
	}
	return key(items[0]), true
}

func FindParcel(parcels []domain.Parcel, parcelID string) (domain.Parcel, bool) {
	i := slices.IndexFunc(parcels, func(p domain.Parcel) bool { return p.ParcelID == parcelID })
	if i < 0 {
		return domain.Parcel{}, false
	}
	return parcels[i], true
}

func FindBox(boxes []domain.DeliveryBox, boxID string) (domain.DeliveryBox, bool) {
	i := slices.IndexFunc(boxes, func(b domain.DeliveryBox) bool { return b.BoxID == boxID })
	if i < 0 {
		return domain.DeliveryBox{}, false
	}
	return boxes[i], true
}
