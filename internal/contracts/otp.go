package contracts

type GenerateOtpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	ParcelID string `json:"parcelId" validate:"required"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6,numeric"`
}

type OtpResponse struct {
	Envelope
}
