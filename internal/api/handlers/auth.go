package handlers

import (
	"errors"
	"net/http"
	"sdb-client/internal/auth"
	"sdb-client/internal/contracts"
	"sdb-client/internal/stub"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Register(c echo.Context) error {
	var req contracts.RegisterRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	u, err := h.store.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, stub.ErrConflict) {
			return fail(c, http.StatusOK, "Email address is already in use")
		}
		return internalError(c, "Handler.Register", err)
	}

	return c.JSON(http.StatusCreated, contracts.AuthResponse{
		Envelope: successWith("User registered successfully"),
		UserID:   u.UserID,
		Role:     u.Role,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req contracts.LoginRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	u, err := h.store.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, stub.ErrInvalidCredentials) {
			return fail(c, http.StatusOK, "Invalid credentials")
		}
		return internalError(c, "Handler.Login", err)
	}

	resp := contracts.AuthResponse{
		Envelope: successWith("Login successful"),
		UserID:   u.UserID,
		Role:     u.Role,
	}
	if h.jwtSecret != "" {
		tok, err := auth.IssueToken(h.jwtSecret, u, time.Now(), TokenTTL)
		if err != nil {
			return internalError(c, "Handler.Login", err)
		}
		resp.Token = tok
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req contracts.ResetPasswordRequest
	if msg, ok := h.bind(c, &req); !ok {
		return fail(c, http.StatusBadRequest, msg)
	}

	if err := h.store.ResetPassword(c.Request().Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, stub.ErrNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return internalError(c, "Handler.ResetPassword", err)
	}

	return c.JSON(http.StatusOK, contracts.AuthResponse{
		Envelope: successWith("Password reset successfully"),
	})
}
