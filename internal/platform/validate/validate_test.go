package validate

import (
	"errors"
	"testing"

	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
)

func TestToValidationErrorUsesJSONNames(t *testing.T) {
	v := New()

	err := ToValidationError(v.Struct(contracts.GenerateOtpRequest{Email: "a@x.com"}))

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if ve.Field != "parcelId" {
		t.Fatalf("Field = %q, want parcelId", ve.Field)
	}
	if ve.Message != "is required" {
		t.Fatalf("Message = %q, want %q", ve.Message, "is required")
	}
}

func TestToValidationErrorOtpShape(t *testing.T) {
	v := New()

	cases := []struct {
		otp     string
		wantErr bool
	}{
		{"123456", false},
		{"12345", true},
		{"12a456", true},
		{"", true},
	}

	for _, tc := range cases {
		err := ToValidationError(v.Struct(contracts.VerifyOtpRequest{Email: "a@x.com", Otp: tc.otp}))
		if (err != nil) != tc.wantErr {
			t.Fatalf("otp %q: err = %v, wantErr %v", tc.otp, err, tc.wantErr)
		}
	}
}

func TestToValidationErrorPassthrough(t *testing.T) {
	plain := errors.New("boom")
	if got := ToValidationError(plain); got != plain {
		t.Fatalf("non-validation error should pass through, got %v", got)
	}
	if ToValidationError(nil) != nil {
		t.Fatal("nil should stay nil")
	}
}
