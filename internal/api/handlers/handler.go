package handlers

import (
	"sdb-client/internal/platform/validate"
	"sdb-client/internal/stub"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TokenTTL is the lifetime of a login token issued by the stub.
const TokenTTL = 24 * time.Hour

type Handler struct {
	store     *stub.MemoryStore
	jwtSecret string
	validate  *validator.Validate
}

// NewHandler creates the stub backend handler. Login tokens are only issued
// when jwtSecret is set.
func NewHandler(store *stub.MemoryStore, jwtSecret string) *Handler {
	return &Handler{
		store:     store,
		jwtSecret: jwtSecret,
		validate:  validate.New(),
	}
}

// bind decodes the JSON body into req and runs its validation tags.
// The returned message is ready to send back to the caller.
func (h *Handler) bind(c echo.Context, req any) (string, bool) {
	if err := c.Bind(req); err != nil {
		return "Invalid request body", false
	}
	if err := h.validate.Struct(req); err != nil {
		return "Validation failed: " + validate.ToValidationError(err).Error(), false
	}
	return "", true
}
