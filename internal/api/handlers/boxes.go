package handlers

import (
	"net/http"
	"sdb-client/internal/contracts"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListDeliveryBoxes(c echo.Context) error {
	boxes, err := h.store.ListBoxes(c.Request().Context())
	if err != nil {
		return internalError(c, "Handler.ListDeliveryBoxes", err)
	}

	return c.JSON(http.StatusOK, contracts.ListDeliveryBoxesResponse{Envelope: success(), DeliveryBoxes: boxes})
}

func (h *Handler) CreateDeliveryBox(c echo.Context) error {
	var req contracts.CreateDeliveryBoxRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	id, err := h.store.CreateBox(c.Request().Context(), req)
	if err != nil {
		return internalError(c, "Handler.CreateDeliveryBox", err)
	}

	return c.JSON(http.StatusCreated, contracts.CreateDeliveryBoxResponse{Envelope: success(), BoxID: id})
}
