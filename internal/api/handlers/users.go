package handlers

import (
	"net/http"
	"sdb-client/internal/contracts"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.store.ListUsers(c.Request().Context())
	if err != nil {
		return internalError(c, "Handler.ListUsers", err)
	}

	return c.JSON(http.StatusOK, contracts.ListUsersResponse{Envelope: success(), Users: users})
}
