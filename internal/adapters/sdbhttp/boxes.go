package sdbhttp

import (
	"context"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
)

func (c *Client) ListDeliveryBoxes(ctx context.Context) (_ []domain.DeliveryBox, err error) {
	defer obs.Time(ctx, "sdb.ListDeliveryBoxes")(&err)

	resp, err := call[contracts.ListDeliveryBoxesResponse](ctx, c, http.MethodGet, "/get-delivery-boxes", nil)
	if err != nil {
		return nil, err
	}
	if resp.DeliveryBoxes == nil {
		return []domain.DeliveryBox{}, nil
	}
	return resp.DeliveryBoxes, nil
}

// CreateDeliveryBox registers a locker and returns the backend-assigned box id.
func (c *Client) CreateDeliveryBox(
	ctx context.Context,
	req contracts.CreateDeliveryBoxRequest,
) (_ string, err error) {
	defer obs.Time(ctx, "sdb.CreateDeliveryBox")(&err)

	if err := c.checkRequest(req); err != nil {
		return "", err
	}

	resp, err := call[contracts.CreateDeliveryBoxResponse](ctx, c, http.MethodPost, "/create-delivery-box", req)
	if err != nil {
		return "", err
	}
	if resp.BoxID == "" {
		return "", &domain.TransportError{Kind: domain.KindSchema, Message: "POST /create-delivery-box: success without boxId"}
	}
	return resp.BoxID, nil
}
