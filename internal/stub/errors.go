package stub

import "errors"

var (
	// ErrNotFound is returned when a user, parcel or box does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when registering an email that is already in use.
	ErrConflict = errors.New("email address is already in use")

	// ErrInvalidCredentials is returned when email and password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotCourier is returned when assigning a parcel to a user that is not a courier.
	ErrNotCourier = errors.New("user is not a courier")

	// ErrNotDelivered is returned when an OTP is requested for a parcel that
	// has not reached its delivery box yet.
	ErrNotDelivered = errors.New("parcel has not been delivered yet")

	// ErrNotOwner is returned when an OTP is requested by someone other than the parcel owner.
	ErrNotOwner = errors.New("email does not own this parcel")

	// ErrInvalidOtp is returned when the OTP is wrong, expired or already used.
	ErrInvalidOtp = errors.New("invalid or expired OTP")
)
