package sdbhttp

import (
	"context"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/platform/obs"
	"strings"
)

// Register creates an account. The role is fixed at registration.
func (c *Client) Register(
	ctx context.Context,
	req contracts.RegisterRequest,
) (_ contracts.AuthResponse, err error) {
	defer obs.Time(ctx, "sdb.Register")(&err)

	req.Email = strings.TrimSpace(req.Email)
	if err := c.checkRequest(req); err != nil {
		return contracts.AuthResponse{}, err
	}

	return call[contracts.AuthResponse](ctx, c, http.MethodPost, "/auth/register", req)
}

// Login authenticates and returns the user's role and, when issued, a token.
func (c *Client) Login(
	ctx context.Context,
	req contracts.LoginRequest,
) (_ contracts.AuthResponse, err error) {
	defer obs.Time(ctx, "sdb.Login")(&err)

	req.Email = strings.TrimSpace(req.Email)
	if err := c.checkRequest(req); err != nil {
		return contracts.AuthResponse{}, err
	}

	return call[contracts.AuthResponse](ctx, c, http.MethodPost, "/auth/login", req)
}

func (c *Client) ResetPassword(
	ctx context.Context,
	req contracts.ResetPasswordRequest,
) (_ contracts.AuthResponse, err error) {
	defer obs.Time(ctx, "sdb.ResetPassword")(&err)

	req.Email = strings.TrimSpace(req.Email)
	if err := c.checkRequest(req); err != nil {
		return contracts.AuthResponse{}, err
	}

	return call[contracts.AuthResponse](ctx, c, http.MethodPost, "/auth/reset-password", req)
}
