// Package session holds the pickup email handed from the OTP-generation step
// to the OTP-verification step, which are reached independently and cannot
// pass parameters to each other.
//
// Lifecycle obligations:
//   - the generating step calls Set immediately before handing over;
//   - the verifying step reads Email (or Take) to build its request;
//   - the flow's end, a logout, or navigation away calls Clear.
//
// Nothing clears the store automatically. In strict mode Set fails while a
// different email from an earlier session is still held, so a forgotten
// Clear surfaces as an error instead of a silently reused email.
package session

import (
	"errors"
	"strings"
	"sync"
)

// ErrSessionNotCleared is returned by Set in strict mode when the previous
// pickup email was never cleared.
var ErrSessionNotCleared = errors.New("session: previous pickup email was not cleared")

// EmailStore is a single-key holder for the in-progress pickup email.
type EmailStore struct {
	mu     sync.Mutex
	email  string
	strict bool
}

// NewEmailStore returns an empty store. strict enables the Set-before-Clear check.
func NewEmailStore(strict bool) *EmailStore {
	return &EmailStore{strict: strict}
}

// Default is the process-wide store.
var Default = NewEmailStore(true)

// Set records email for the next step. Setting the same email again is
// allowed so a user can re-request an OTP for the same pickup.
func (s *EmailStore) Set(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("session: email must be non-empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strict && s.email != "" && !strings.EqualFold(s.email, email) {
		return ErrSessionNotCleared
	}
	s.email = email
	return nil
}

// Email returns the held email, or "" when the store is empty.
func (s *EmailStore) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Take returns the held email and clears the store.
func (s *EmailStore) Take() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := s.email
	s.email = ""
	return email
}

func (s *EmailStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = ""
}

// Empty reports whether no email is held.
func (s *EmailStore) Empty() bool {
	return s.Email() == ""
}
