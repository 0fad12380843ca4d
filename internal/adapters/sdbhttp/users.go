package sdbhttp

import (
	"context"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
)

func (c *Client) ListUsers(ctx context.Context) (_ []domain.User, err error) {
	defer obs.Time(ctx, "sdb.ListUsers")(&err)

	resp, err := call[contracts.ListUsersResponse](ctx, c, http.MethodGet, "/get-users", nil)
	if err != nil {
		return nil, err
	}
	if resp.Users == nil {
		return []domain.User{}, nil
	}
	return resp.Users, nil
}
