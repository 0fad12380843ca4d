package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"strings"

	"github.com/google/uuid"
)

type UserSeed struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Seed is the JSON document accepted by SeedFromJSON. Boxes and parcels may
// carry fixed ids so that demo parcels can be referenced by name.
type Seed struct {
	Users         []UserSeed           `json:"users"`
	DeliveryBoxes []domain.DeliveryBox `json:"deliveryBoxes"`
	Parcels       []domain.Parcel      `json:"parcels"`
}

// SeedFromJSON populates the store with the document at jsonPath.
func SeedFromJSON(ctx context.Context, s *MemoryStore, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stub: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stub: parse json: %w", err)
	}

	return s.Load(ctx, data)
}

// Load validates and inserts a seed document.
func (s *MemoryStore) Load(ctx context.Context, data Seed) error {
	for i, u := range data.Users {
		if strings.TrimSpace(u.Email) == "" || u.Password == "" {
			return fmt.Errorf("seed stub: user at index %d: email and password are required", i+1)
		}
		if !u.Role.Valid() {
			return fmt.Errorf("seed stub: user at index %d: invalid role %q", i+1, u.Role)
		}
		_, err := s.Register(ctx, contracts.RegisterRequest{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Role:     u.Role,
		})
		if err != nil {
			return fmt.Errorf("seed stub: user %q: %w", u.Email, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range data.DeliveryBoxes {
		if strings.TrimSpace(b.Address) == "" {
			return fmt.Errorf("seed stub: box at index %d: address cannot be empty", i+1)
		}
		if b.BoxID == "" {
			b.BoxID = uuid.NewString()
		}
		s.boxes = append(s.boxes, b)
	}

	for i, p := range data.Parcels {
		if s.boxIndex(p.DeliveryBoxID) < 0 {
			return fmt.Errorf("seed stub: parcel at index %d: unknown delivery box %q", i+1, p.DeliveryBoxID)
		}
		p.UserID = normEmail(p.UserID)
		if _, ok := s.accounts[p.UserID]; !ok {
			return fmt.Errorf("seed stub: parcel at index %d: unknown owner %q", i+1, p.UserID)
		}
		if p.ParcelID == "" {
			p.ParcelID = uuid.NewString()
		}
		if p.Status == "" {
			p.Status = domain.StatusDispatched
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = s.now().UTC()
		}
		s.parcels = append(s.parcels, p)
	}

	return nil
}
