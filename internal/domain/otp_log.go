package domain

import "time"

// Audit record of one OTP attempt. Read-only from the client's perspective.
type OtpLogEntry struct {
	OtpID             string    `json:"otpId" validate:"required"`
	PhoneNumber       string    `json:"phoneNumber"`
	ServiceProviderID string    `json:"serviceProviderId"`
	Status            string    `json:"status"`
	Error             *string   `json:"error"`
	CreatedAt         time.Time `json:"createdAt"`
}
