package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, Ok},
		{"domain", &DomainError{Status: "FAILED", Message: "Invalid credentials"}, DomainFailure},
		{"wrapped domain", fmt.Errorf("login: %w", &DomainError{Status: "FAILED"}), DomainFailure},
		{"transport", &TransportError{Kind: KindNetwork, Message: "dial"}, TransportFailure},
		{"validation", &ValidationError{Field: "email", Message: "is required"}, ValidationFailure},
		{"context", context.Canceled, TransportFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	fallback := "Network error."

	if got := UserMessage(&DomainError{Status: "FAILED", Message: "Invalid OTP"}, fallback); got != "Invalid OTP" {
		t.Fatalf("domain message = %q, want %q", got, "Invalid OTP")
	}
	if got := UserMessage(&TransportError{Kind: KindNetwork, Message: "reset"}, fallback); got != fallback {
		t.Fatalf("transport message = %q, want %q", got, fallback)
	}
	if got := UserMessage(&ValidationError{Field: "parcelId", Message: "is required"}, fallback); got != "parcelId: is required" {
		t.Fatalf("validation message = %q", got)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("list parcels: %w", &TransportError{Kind: KindNetwork, Message: "GET /get-parcels", Err: cause})

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}
