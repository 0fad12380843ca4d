package mockbackend

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/ports"
)

var _ ports.Backend = (*MockBackend)(nil)

// MockBackend is a scripted in-memory SDB backend for service and pickup
// tests. Fields are set up directly before use.
type MockBackend struct {
	Users     []domain.User
	Passwords map[string]string
	Boxes     []domain.DeliveryBox
	Parcels   []domain.Parcel
	Logs      []domain.OtpLogEntry
	// Codes maps an email to the OTP VerifyOtp accepts for it.
	Codes map[string]string

	// Err, when set, is returned by every call.
	Err error
	// Entered, when set, receives the operation name as each call starts.
	Entered chan string
	// Release, when set, holds each call until it can receive from it.
	Release chan struct{}

	mu    sync.Mutex
	calls map[string]int
}

func New() *MockBackend {
	return &MockBackend{
		Passwords: map[string]string{},
		Codes:     map[string]string{},
	}
}

// Calls returns how many times op was invoked, e.g. Calls("VerifyOtp").
func (m *MockBackend) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *MockBackend) enter(ctx context.Context, op string) error {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[op]++
	m.mu.Unlock()

	if m.Entered != nil {
		m.Entered <- op
	}
	if m.Release != nil {
		select {
		case <-m.Release:
		case <-ctx.Done():
			return &domain.TransportError{Kind: domain.KindNetwork, Message: op, Err: ctx.Err()}
		}
	}
	return m.Err
}

func failed(httpStatus int, msg string) error {
	return &domain.DomainError{Status: "FAILED", Message: msg, HTTPStatus: httpStatus}
}

func (m *MockBackend) Register(ctx context.Context, req contracts.RegisterRequest) (contracts.AuthResponse, error) {
	if err := m.enter(ctx, "Register"); err != nil {
		return contracts.AuthResponse{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, req.Email) {
			return contracts.AuthResponse{}, failed(200, "User already exists")
		}
	}
	m.Users = append(m.Users, domain.User{Name: req.Name, Email: req.Email, Role: req.Role})
	m.Passwords[req.Email] = req.Password
	return contracts.AuthResponse{Envelope: contracts.Envelope{Status: domain.StatusSuccess}, Role: req.Role}, nil
}

func (m *MockBackend) Login(ctx context.Context, req contracts.LoginRequest) (contracts.AuthResponse, error) {
	if err := m.enter(ctx, "Login"); err != nil {
		return contracts.AuthResponse{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, req.Email) && m.Passwords[u.Email] == req.Password {
			return contracts.AuthResponse{
				Envelope: contracts.Envelope{Status: domain.StatusSuccess},
				UserID:   u.UserID,
				Role:     u.Role,
			}, nil
		}
	}
	return contracts.AuthResponse{}, failed(200, "Invalid credentials")
}

func (m *MockBackend) ResetPassword(ctx context.Context, req contracts.ResetPasswordRequest) (contracts.AuthResponse, error) {
	if err := m.enter(ctx, "ResetPassword"); err != nil {
		return contracts.AuthResponse{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if strings.EqualFold(u.Email, req.Email) {
			m.Passwords[u.Email] = req.Password
			return contracts.AuthResponse{Envelope: contracts.Envelope{Status: domain.StatusSuccess}}, nil
		}
	}
	return contracts.AuthResponse{}, failed(404, "User not found")
}

func (m *MockBackend) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := m.enter(ctx, "ListUsers"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.User{}, m.Users...), nil
}

func (m *MockBackend) ListDeliveryBoxes(ctx context.Context) ([]domain.DeliveryBox, error) {
	if err := m.enter(ctx, "ListDeliveryBoxes"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.DeliveryBox{}, m.Boxes...), nil
}

func (m *MockBackend) CreateDeliveryBox(ctx context.Context, req contracts.CreateDeliveryBoxRequest) (string, error) {
	if err := m.enter(ctx, "CreateDeliveryBox"); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := fmt.Sprintf("BOX-%d", len(m.Boxes)+1)
	m.Boxes = append(m.Boxes, domain.DeliveryBox{
		BoxID:     id,
		Address:   req.Address,
		Type:      req.Type,
		IsSecured: req.IsSecured,
		Status:    req.Status,
		Location:  req.Location,
	})
	return id, nil
}

func (m *MockBackend) ListParcels(ctx context.Context) ([]domain.Parcel, error) {
	if err := m.enter(ctx, "ListParcels"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Parcel{}, m.Parcels...), nil
}

func (m *MockBackend) CreateParcel(ctx context.Context, req contracts.CreateParcelRequest) (string, error) {
	if err := m.enter(ctx, "CreateParcel"); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := fmt.Sprintf("P-%d", len(m.Parcels)+1)
	m.Parcels = append(m.Parcels, domain.Parcel{
		ParcelID:      id,
		Size:          req.Size,
		Destination:   req.Destination,
		IsFragile:     req.IsFragile,
		UserID:        req.UserID,
		DeliveryBoxID: req.DeliveryBoxID,
		Status:        domain.StatusDispatched,
	})
	return id, nil
}

func (m *MockBackend) AssignCourier(ctx context.Context, parcelID, courierID string) error {
	if err := m.enter(ctx, "AssignCourier"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.parcelIndex(parcelID)
	if i < 0 {
		return failed(404, "Parcel not found")
	}
	id := courierID
	m.Parcels[i].CourierID = &id
	return nil
}

func (m *MockBackend) UpdateDeliveryStatus(ctx context.Context, req contracts.UpdateDeliveryStatusRequest) error {
	if err := m.enter(ctx, "UpdateDeliveryStatus"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.parcelIndex(req.ParcelID)
	if i < 0 {
		return failed(404, "Parcel not found")
	}
	m.Parcels[i].Status = req.Status
	return nil
}

func (m *MockBackend) GetDeliveryStatus(ctx context.Context, parcelID string) (domain.DeliveryStatus, error) {
	if err := m.enter(ctx, "GetDeliveryStatus"); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.parcelIndex(parcelID)
	if i < 0 {
		return "", failed(404, "Parcel not found")
	}
	return m.Parcels[i].Status, nil
}

func (m *MockBackend) GenerateOtp(ctx context.Context, email, parcelID string) (string, error) {
	if err := m.enter(ctx, "GenerateOtp"); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.parcelIndex(parcelID)
	if i < 0 {
		return "", failed(404, "Parcel not found")
	}
	if m.Parcels[i].Status != domain.StatusDelivered {
		return "", failed(200, "Parcel is not ready for pickup")
	}
	if _, ok := m.Codes[email]; !ok {
		m.Codes[email] = "123456"
	}
	return "OTP sent", nil
}

func (m *MockBackend) VerifyOtp(ctx context.Context, email, otp string) (string, error) {
	if err := m.enter(ctx, "VerifyOtp"); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if code, ok := m.Codes[email]; !ok || code != otp {
		return "", failed(200, "Invalid OTP")
	}
	delete(m.Codes, email)
	return "OTP verified", nil
}

func (m *MockBackend) ListOtpLogs(ctx context.Context) ([]domain.OtpLogEntry, error) {
	if err := m.enter(ctx, "ListOtpLogs"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OtpLogEntry{}, m.Logs...), nil
}

func (m *MockBackend) parcelIndex(id string) int {
	for i, p := range m.Parcels {
		if p.ParcelID == id {
			return i
		}
	}
	return -1
}
