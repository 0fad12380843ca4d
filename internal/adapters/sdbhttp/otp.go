package sdbhttp

import (
	"context"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
	"strings"
)

// GenerateOtp asks the backend to issue a pickup OTP for {email, parcelId}.
// The backend message is returned on success.
func (c *Client) GenerateOtp(ctx context.Context, email, parcelID string) (_ string, err error) {
	defer obs.Time(ctx, "sdb.GenerateOtp")(&err)

	req := contracts.GenerateOtpRequest{
		Email:    strings.TrimSpace(email),
		ParcelID: strings.TrimSpace(parcelID),
	}
	if err := c.checkRequest(req); err != nil {
		return "", err
	}

	resp, err := call[contracts.OtpResponse](ctx, c, http.MethodPost, "/generate-otp", req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// VerifyOtp checks a 6-digit OTP for email.
func (c *Client) VerifyOtp(ctx context.Context, email, otp string) (_ string, err error) {
	defer obs.Time(ctx, "sdb.VerifyOtp")(&err)

	req := contracts.VerifyOtpRequest{
		Email: strings.TrimSpace(email),
		Otp:   strings.TrimSpace(otp),
	}
	if err := c.checkRequest(req); err != nil {
		return "", err
	}

	resp, err := call[contracts.OtpResponse](ctx, c, http.MethodPost, "/verify-otp", req)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListOtpLogs returns the OTP audit log. The endpoint answers with a bare
// JSON array rather than the usual envelope.
func (c *Client) ListOtpLogs(ctx context.Context) (_ []domain.OtpLogEntry, err error) {
	defer obs.Time(ctx, "sdb.ListOtpLogs")(&err)

	var logs []domain.OtpLogEntry
	if err := c.send(ctx, http.MethodGet, "/otp-logs", nil, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		return []domain.OtpLogEntry{}, nil
	}
	return logs, nil
}
