package handlers

import (
	"errors"
	"log"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/stub"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GenerateOtp(c echo.Context) error {
	var req contracts.GenerateOtpRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	code, err := h.store.GenerateOtp(c.Request().Context(), req.Email, req.ParcelID)
	switch {
	case err == nil:
	case errors.Is(err, stub.ErrNotDelivered):
		return fail(c, http.StatusOK, "Parcel is not ready for pickup")
	case errors.Is(err, stub.ErrNotOwner):
		return fail(c, http.StatusForbidden, "Email does not match the parcel owner")
	case errors.Is(err, stub.ErrNotFound):
		return fail(c, http.StatusNotFound, "Parcel not found")
	default:
		return internalError(c, "Handler.GenerateOtp", err)
	}

	// No delivery channel exists in the stub; the code goes to the server log.
	log.Printf("otp issued email=%s parcel=%s otp=%s", req.Email, req.ParcelID, code)

	return c.JSON(http.StatusOK, contracts.OtpResponse{
		Envelope: successWith("OTP generated successfully"),
	})
}

func (h *Handler) VerifyOtp(c echo.Context) error {
	var req contracts.VerifyOtpRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	if err := h.store.VerifyOtp(c.Request().Context(), req.Email, req.Otp); err != nil {
		if errors.Is(err, stub.ErrInvalidOtp) {
			return fail(c, http.StatusOK, "Invalid OTP")
		}
		return internalError(c, "Handler.VerifyOtp", err)
	}

	return c.JSON(http.StatusOK, contracts.OtpResponse{
		Envelope: successWith("OTP verified successfully"),
	})
}

// ListOtpLogs answers with a bare array, matching the hosted backend.
func (h *Handler) ListOtpLogs(c echo.Context) error {
	logs, err := h.store.ListOtpLogs(c.Request().Context())
	if err != nil {
		return internalError(c, "Handler.ListOtpLogs", err)
	}

	return c.JSON(http.StatusOK, logs)
}
