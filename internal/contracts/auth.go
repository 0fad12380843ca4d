package contracts

import "sdb-client/internal/domain"

type RegisterRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,oneof=Admin Courier Customer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest carries the new password for email.
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is shared by register, login and reset-password.
type AuthResponse struct {
	Envelope
	UserID string      `json:"userId,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
	Token  string      `json:"token,omitempty"`
}
