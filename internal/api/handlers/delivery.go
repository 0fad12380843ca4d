package handlers

import (
	"errors"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/stub"

	"github.com/labstack/echo/v4"
)

func (h *Handler) UpdateDeliveryStatus(c echo.Context) error {
	var req contracts.UpdateDeliveryStatusRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	if err := h.store.UpdateStatus(c.Request().Context(), req.ParcelID, req.Status); err != nil {
		if errors.Is(err, stub.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Parcel not found")
		}
		return internalError(c, "Handler.UpdateDeliveryStatus", err)
	}

	return c.JSON(http.StatusOK, contracts.StatusResponse{Envelope: success()})
}

// GetDeliveryStatus answers {status: <delivery status>} like the hosted backend.
func (h *Handler) GetDeliveryStatus(c echo.Context) error {
	status, err := h.store.Status(c.Request().Context(), c.Param("parcelId"))
	if err != nil {
		if errors.Is(err, stub.ErrNotFound) {
			return c.JSON(http.StatusNotFound, contracts.ErrorBody{Message: "Parcel not found"})
		}
		return internalError(c, "Handler.GetDeliveryStatus", err)
	}

	return c.JSON(http.StatusOK, contracts.DeliveryStatusResponse{Status: status})
}
