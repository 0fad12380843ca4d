package handlers

import (
	"errors"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/stub"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListParcels(c echo.Context) error {
	parcels, err := h.store.ListParcels(c.Request().Context())
	if err != nil {
		return internalError(c, "Handler.ListParcels", err)
	}

	return c.JSON(http.StatusOK, contracts.ListParcelsResponse{Envelope: success(), Parcels: parcels})
}

func (h *Handler) CreateParcel(c echo.Context) error {
	var req contracts.CreateParcelRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	id, err := h.store.CreateParcel(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, stub.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Owner or delivery box not found")
		}
		return internalError(c, "Handler.CreateParcel", err)
	}

	return c.JSON(http.StatusCreated, contracts.CreateParcelResponse{Envelope: success(), ParcelID: id})
}

func (h *Handler) AssignCourier(c echo.Context) error {
	var req contracts.AssignCourierRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	err := h.store.AssignCourier(c.Request().Context(), req.ParcelID, req.CourierID)
	switch {
	case err == nil:
	case errors.Is(err, stub.ErrNotCourier):
		return fail(c, http.StatusOK, "Selected user is not a courier")
	case errors.Is(err, stub.ErrNotFound):
		return fail(c, http.StatusNotFound, "Parcel or courier not found")
	default:
		return internalError(c, "Handler.AssignCourier", err)
	}

	return c.JSON(http.StatusOK, contracts.StatusResponse{Envelope: success()})
}
