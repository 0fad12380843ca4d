package sdbhttp

import (
	"context"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
	"strings"
)

func (c *Client) ListParcels(ctx context.Context) (_ []domain.Parcel, err error) {
	defer obs.Time(ctx, "sdb.ListParcels")(&err)

	resp, err := call[contracts.ListParcelsResponse](ctx, c, http.MethodGet, "/get-parcels", nil)
	if err != nil {
		return nil, err
	}
	if resp.Parcels == nil {
		return []domain.Parcel{}, nil
	}
	return resp.Parcels, nil
}

// CreateParcel registers a parcel for a customer and returns its id.
func (c *Client) CreateParcel(
	ctx context.Context,
	req contracts.CreateParcelRequest,
) (_ string, err error) {
	defer obs.Time(ctx, "sdb.CreateParcel")(&err)

	req.Destination = strings.TrimSpace(req.Destination)
	if err := c.checkRequest(req); err != nil {
		return "", err
	}

	resp, err := call[contracts.CreateParcelResponse](ctx, c, http.MethodPost, "/create-parcel", req)
	if err != nil {
		return "", err
	}
	if resp.ParcelID == "" {
		return "", &domain.TransportError{Kind: domain.KindSchema, Message: "POST /create-parcel: success without parcelId"}
	}
	return resp.ParcelID, nil
}

func (c *Client) AssignCourier(ctx context.Context, parcelID, courierID string) (err error) {
	defer obs.Time(ctx, "sdb.AssignCourier")(&err)

	req := contracts.AssignCourierRequest{
		ParcelID:  strings.TrimSpace(parcelID),
		CourierID: strings.TrimSpace(courierID),
	}
	if err := c.checkRequest(req); err != nil {
		return err
	}

	_, err = call[contracts.StatusResponse](ctx, c, http.MethodPost, "/assign-courier", req)
	return err
}
