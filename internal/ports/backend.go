package ports

import (
	"context"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
)

// Port: account operations under /auth.
type AuthBackend interface {
	Register(ctx context.Context, req contracts.RegisterRequest) (contracts.AuthResponse, error)
	Login(ctx context.Context, req contracts.LoginRequest) (contracts.AuthResponse, error)
	ResetPassword(ctx context.Context, req contracts.ResetPasswordRequest) (contracts.AuthResponse, error)
}

// Port: read access to registered users.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// Port: delivery box listing and creation. CreateDeliveryBox returns the
// backend-assigned box id.
type BoxBackend interface {
	ListDeliveryBoxes(ctx context.Context) ([]domain.DeliveryBox, error)
	CreateDeliveryBox(ctx context.Context, req contracts.CreateDeliveryBoxRequest) (string, error)
}

// Port: parcel listing, creation and courier assignment.
type ParcelBackend interface {
	ListParcels(ctx context.Context) ([]domain.Parcel, error)
	CreateParcel(ctx context.Context, req contracts.CreateParcelRequest) (string, error)
	AssignCourier(ctx context.Context, parcelID, courierID string) error
}

// Port: delivery status reads and courier updates.
type DeliveryBackend interface {
	UpdateDeliveryStatus(ctx context.Context, req contracts.UpdateDeliveryStatusRequest) error
	GetDeliveryStatus(ctx context.Context, parcelID string) (domain.DeliveryStatus, error)
}

// Port: OTP issuance, verification and audit log. Generate and verify
// return the backend message on success.
type OtpBackend interface {
	GenerateOtp(ctx context.Context, email, parcelID string) (string, error)
	VerifyOtp(ctx context.Context, email, otp string) (string, error)
	ListOtpLogs(ctx context.Context) ([]domain.OtpLogEntry, error)
}

// The subset of the backend the pickup flow talks to.
type PickupBackend interface {
	GetDeliveryStatus(ctx context.Context, parcelID string) (domain.DeliveryStatus, error)
	GenerateOtp(ctx context.Context, email, parcelID string) (string, error)
	VerifyOtp(ctx context.Context, email, otp string) (string, error)
}

// Backend is the full SDB contract.
type Backend interface {
	AuthBackend
	UserDirectory
	BoxBackend
	ParcelBackend
	DeliveryBackend
	OtpBackend
}
