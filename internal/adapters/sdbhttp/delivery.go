package sdbhttp

import (
	"context"
	"net/http"
	"net/url"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
	"strings"
)

// UpdateDeliveryStatus reports a courier's progress on a parcel.
func (c *Client) UpdateDeliveryStatus(
	ctx context.Context,
	req contracts.UpdateDeliveryStatusRequest,
) (err error) {
	defer obs.Time(ctx, "sdb.UpdateDeliveryStatus")(&err)

	if err := c.checkRequest(req); err != nil {
		return err
	}

	_, err = call[contracts.StatusResponse](ctx, c, http.MethodPost, "/delivery/status", req)
	return err
}

// GetDeliveryStatus returns the parcel's current delivery status.
// This endpoint answers {status: <delivery status>} with no SUCCESS
// envelope, so any 2xx with a status is a success.
func (c *Client) GetDeliveryStatus(ctx context.Context, parcelID string) (_ domain.DeliveryStatus, err error) {
	defer obs.Time(ctx, "sdb.GetDeliveryStatus")(&err)

	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return "", &domain.ValidationError{Field: "parcelId", Message: "is required"}
	}

	var resp contracts.DeliveryStatusResponse
	if err := c.send(ctx, http.MethodGet, "/delivery/status/"+url.PathEscape(parcelID), nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
