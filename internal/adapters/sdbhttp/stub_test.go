package sdbhttp

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"sdb-client/internal/api"
	"sdb-client/internal/auth"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/pickup"
	"sdb-client/internal/session"
	"sdb-client/internal/stub"
)

const testSecret = "test-secret"

func stubClient(t *testing.T) (*Client, *stub.MemoryStore) {
	t.Helper()

	store := stub.NewMemoryStore()
	courier := "courier@sdb.local"
	err := store.Load(context.Background(), stub.Seed{
		Users: []stub.UserSeed{
			{Name: "Admin", Email: "admin@sdb.local", Password: "admin123", Role: domain.RoleAdmin},
			{Name: "Courier", Email: courier, Password: "courier123", Role: domain.RoleCourier},
			{Name: "Customer", Email: "customer@sdb.local", Password: "customer123", Role: domain.RoleCustomer},
		},
		DeliveryBoxes: []domain.DeliveryBox{
			{BoxID: "BOX-1", Address: "Liberty Market", Type: domain.BoxMedium, Status: domain.BoxAvailable,
				Location: &domain.Coordinates{Latitude: 31.5102, Longitude: 74.3441}},
		},
		Parcels: []domain.Parcel{
			{ParcelID: "P-100", Size: domain.BoxSmall, UserID: "customer@sdb.local", DeliveryBoxID: "BOX-1",
				CourierID: &courier, Status: domain.StatusDelivered},
			{ParcelID: "P-101", Size: domain.BoxLarge, UserID: "customer@sdb.local", DeliveryBoxID: "BOX-1"},
		},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	srv := httptest.NewServer(api.NewRouter(store, testSecret))
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/api/v1", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}
	return c, store
}

func TestStubAuth(t *testing.T) {
	c, _ := stubClient(t)
	ctx := context.Background()

	reg, err := c.Register(ctx, contracts.RegisterRequest{
		Name: "Dana", Email: "dana@sdb.local", Password: "pw", Role: domain.RoleCourier,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.UserID == "" {
		t.Fatal("Register returned no userId")
	}

	_, err = c.Register(ctx, contracts.RegisterRequest{
		Name: "Dana", Email: "dana@sdb.local", Password: "pw", Role: domain.RoleCourier,
	})
	if domain.Classify(err) != domain.DomainFailure {
		t.Fatalf("duplicate Register: Classify = %v, want domain failure", domain.Classify(err))
	}

	login, err := c.Login(ctx, contracts.LoginRequest{Email: "dana@sdb.local", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Role != domain.RoleCourier {
		t.Fatalf("role = %q, want Courier", login.Role)
	}
	claims, err := auth.VerifyToken(login.Token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Email != "dana@sdb.local" {
		t.Fatalf("claims.Email = %q", claims.Email)
	}

	_, err = c.Login(ctx, contracts.LoginRequest{Email: "dana@sdb.local", Password: "wrong"})
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Message != "Invalid credentials" {
		t.Fatalf("bad Login err = %v, want Invalid credentials", err)
	}

	if _, err := c.ResetPassword(ctx, contracts.ResetPasswordRequest{Email: "dana@sdb.local", Password: "pw2"}); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, err := c.Login(ctx, contracts.LoginRequest{Email: "dana@sdb.local", Password: "pw2"}); err != nil {
		t.Fatalf("Login after reset: %v", err)
	}

	_, err = c.ResetPassword(ctx, contracts.ResetPasswordRequest{Email: "ghost@sdb.local", Password: "x"})
	if !errors.As(err, &de) || de.HTTPStatus != 404 {
		t.Fatalf("reset unknown err = %v, want 404 DomainError", err)
	}
}

func TestStubParcelLifecycle(t *testing.T) {
	c, _ := stubClient(t)
	ctx := context.Background()

	boxID, err := c.CreateDeliveryBox(ctx, contracts.CreateDeliveryBoxRequest{
		Type: domain.BoxLarge, Address: "Mall Road", IsSecured: true, Status: domain.BoxAvailable,
		Location: &domain.Coordinates{Latitude: 31.56, Longitude: 74.31},
	})
	if err != nil {
		t.Fatalf("CreateDeliveryBox: %v", err)
	}

	boxes, err := c.ListDeliveryBoxes(ctx)
	if err != nil {
		t.Fatalf("ListDeliveryBoxes: %v", err)
	}
	if len(boxes) != 2 || boxes[1].BoxID != boxID || boxes[1].Location == nil {
		t.Fatalf("boxes = %+v", boxes)
	}

	parcelID, err := c.CreateParcel(ctx, contracts.CreateParcelRequest{
		UserID: "customer@sdb.local", Size: domain.BoxLarge, Destination: "DHA", DeliveryBoxID: boxID,
	})
	if err != nil {
		t.Fatalf("CreateParcel: %v", err)
	}

	if err := c.AssignCourier(ctx, parcelID, "customer@sdb.local"); domain.Classify(err) != domain.DomainFailure {
		t.Fatalf("assigning a customer: err = %v, want domain failure", err)
	}
	if err := c.AssignCourier(ctx, parcelID, "courier@sdb.local"); err != nil {
		t.Fatalf("AssignCourier: %v", err)
	}

	err = c.UpdateDeliveryStatus(ctx, contracts.UpdateDeliveryStatusRequest{
		ParcelID: parcelID, Status: domain.StatusInTransit, Location: "Ring Road", ServiceProviderID: "courier@sdb.local",
	})
	if err != nil {
		t.Fatalf("UpdateDeliveryStatus: %v", err)
	}

	status, err := c.GetDeliveryStatus(ctx, parcelID)
	if err != nil {
		t.Fatalf("GetDeliveryStatus: %v", err)
	}
	if status != domain.StatusInTransit {
		t.Fatalf("status = %s, want IN_TRANSIT", status)
	}

	parcels, err := c.ListParcels(ctx)
	if err != nil {
		t.Fatalf("ListParcels: %v", err)
	}
	last := parcels[len(parcels)-1]
	if last.ParcelID != parcelID || !last.Assigned() || *last.CourierID != "courier@sdb.local" {
		t.Fatalf("parcel = %+v", last)
	}

	users, err := c.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len(users) = %d, want 3", len(users))
	}

	_, err = c.GetDeliveryStatus(ctx, "P-404")
	var de *domain.DomainError
	if !errors.As(err, &de) || de.HTTPStatus != 404 {
		t.Fatalf("unknown parcel err = %v, want 404 DomainError", err)
	}
}

func TestStubPickupFlow(t *testing.T) {
	c, store := stubClient(t)
	ctx := context.Background()
	emails := session.NewEmailStore(true)
	flow := pickup.NewCoordinator(c, emails)

	if _, err := flow.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if _, err := flow.GenerateOtp(ctx, "customer@sdb.local"); err != nil {
		t.Fatalf("GenerateOtp: %v", err)
	}
	if err := flow.BeginEntry(); err != nil {
		t.Fatal(err)
	}

	code, ok := store.IssuedOtp("customer@sdb.local")
	if !ok {
		t.Fatal("no OTP issued")
	}
	for _, r := range code {
		if err := flow.EnterDigit(int(r - '0')); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := flow.Submit(ctx); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := flow.OpenBox(); err != nil {
		t.Fatal(err)
	}
	if err := flow.Finish(); err != nil {
		t.Fatal(err)
	}
	if !emails.Empty() {
		t.Fatal("session email survived the flow")
	}

	// The code is single use.
	_, err := c.VerifyOtp(ctx, "customer@sdb.local", code)
	var de *domain.DomainError
	if !errors.As(err, &de) || de.Message != "Invalid OTP" {
		t.Fatalf("reused OTP err = %v, want Invalid OTP", err)
	}

	logs, err := c.ListOtpLogs(ctx)
	if err != nil {
		t.Fatalf("ListOtpLogs: %v", err)
	}
	want := []string{"GENERATED", "VERIFIED", "FAILED"}
	if len(logs) != len(want) {
		t.Fatalf("len(logs) = %d, want %d", len(logs), len(want))
	}
	for i, s := range want {
		if logs[i].Status != s {
			t.Fatalf("logs[%d].Status = %s, want %s", i, logs[i].Status, s)
		}
	}
}

func TestStubGenerateOtpNotDelivered(t *testing.T) {
	c, _ := stubClient(t)

	_, err := c.GenerateOtp(context.Background(), "customer@sdb.local", "P-101")

	var de *domain.DomainError
	if !errors.As(err, &de) || de.Message != "Parcel is not ready for pickup" {
		t.Fatalf("err = %v, want not-ready DomainError", err)
	}
}
