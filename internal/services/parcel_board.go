package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
	"sdb-client/internal/ports"
)

// BoardBackend is what a ParcelBoard reads from and writes through.
type BoardBackend interface {
	ports.ParcelBackend
	ports.DeliveryBackend
}

// ParcelBoard holds the parcel list behind an admin or courier view.
//
// Successful assignments and status updates are patched into the held list
// right away and mark the board stale; the next Revisit refetches from the
// backend so local patches never outlive one visit. A patch also discards
// any refresh still in flight, whose list may predate it.
type ParcelBoard struct {
	backend BoardBackend

	mu         sync.Mutex
	parcels    []domain.Parcel
	loaded     bool
	stale      bool
	generation uint64
}

func NewParcelBoard(backend BoardBackend) *ParcelBoard {
	return &ParcelBoard{backend: backend}
}

// Revisit returns the held list, fetching it first when the board has never
// loaded or was marked stale.
func (b *ParcelBoard) Revisit(ctx context.Context) ([]domain.Parcel, error) {
	b.mu.Lock()
	fresh := b.loaded && !b.stale
	held := slices.Clone(b.parcels)
	b.mu.Unlock()

	if fresh {
		return held, nil
	}
	return b.Refresh(ctx)
}

// Refresh fetches the list unconditionally. If a newer refresh or a local
// patch landed first, the held list is kept and returned instead.
func (b *ParcelBoard) Refresh(ctx context.Context) (parcels []domain.Parcel, err error) {
	defer obs.Time(ctx, "board.Refresh")(&err)

	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.mu.Unlock()

	parcels, err = b.backend.ListParcels(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh parcels: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen == b.generation {
		b.parcels = parcels
		b.loaded = true
		b.stale = false
	}
	return slices.Clone(b.parcels), nil
}

// Parcels returns a copy of the held list without touching the backend.
func (b *ParcelBoard) Parcels() []domain.Parcel {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.parcels)
}

// Stale reports whether the held list carries local patches not yet
// confirmed by a refetch.
func (b *ParcelBoard) Stale() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stale
}

// Assign assigns courierID to parcelID and patches the held list.
func (b *ParcelBoard) Assign(ctx context.Context, parcelID, courierID string) error {
	if err := b.backend.AssignCourier(ctx, parcelID, courierID); err != nil {
		return fmt.Errorf("assign courier: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.parcels = WithCourierAssigned(b.parcels, parcelID, courierID)
	b.generation++
	b.stale = true
	return nil
}

// UpdateStatus reports a new delivery status and patches the held list.
func (b *ParcelBoard) UpdateStatus(ctx context.Context, req contracts.UpdateDeliveryStatusRequest) error {
	if err := b.backend.UpdateDeliveryStatus(ctx, req); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.parcels = WithStatus(b.parcels, req.ParcelID, req.Status)
	b.generation++
	b.stale = true
	return nil
}
