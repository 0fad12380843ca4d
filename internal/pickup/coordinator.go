package pickup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"sdb-client/internal/domain"
	"sdb-client/internal/platform/obs"
	"sdb-client/internal/ports"
	"sdb-client/internal/session"
)

var (
	// ErrNotReadyForPickup is returned by GenerateOtp unless the checked
	// parcel is DELIVERED.
	ErrNotReadyForPickup = errors.New("pickup: parcel is not ready for pickup")

	// ErrSubmissionInFlight rejects a second verification while one is outstanding.
	ErrSubmissionInFlight = errors.New("pickup: verification already in flight")

	// ErrStaleResponse means the flow was reset or re-targeted while the
	// call was outstanding; its result was discarded.
	ErrStaleResponse = errors.New("pickup: response discarded after flow changed")

	// ErrNoSessionEmail means the verification step was reached with no
	// pickup email in the shared session store.
	ErrNoSessionEmail = &domain.ValidationError{Field: "email", Message: "no pickup email in session; generate an OTP first"}
)

// TransitionError reports an operation invoked from a state that does not allow it.
type TransitionError struct {
	Op    string
	State State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("pickup: %s not allowed in state %s", e.Op, e.State)
}

// Snapshot is a read-only view of the coordinator for rendering.
type Snapshot struct {
	State      State
	ParcelID   string
	Status     domain.DeliveryStatus
	Digits     [OtpLength]int
	Cursor     int
	Submitting bool
}

// Coordinator drives a single pickup from status check to box close.
//
// Backend calls are issued without holding the lock. Each call captures the
// generation counter on the way out and its result is applied only if the
// counter is unchanged on the way back, so a Reset or a newer status check
// invalidates anything still in flight.
type Coordinator struct {
	backend ports.PickupBackend
	emails  *session.EmailStore

	mu         sync.Mutex
	state      State
	parcelID   string
	status     domain.DeliveryStatus
	buffer     OtpBuffer
	generation uint64
	generating bool
	submitting bool
}

// NewCoordinator returns a coordinator in IDLE. emails is the shared store
// the OTP email is handed over through; nil means session.Default.
func NewCoordinator(backend ports.PickupBackend, emails *session.EmailStore) *Coordinator {
	if emails == nil {
		emails = session.Default
	}
	return &Coordinator{backend: backend, emails: emails, state: StateIdle}
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:      c.state,
		ParcelID:   c.parcelID,
		Status:     c.status,
		Digits:     c.buffer.Digits(),
		Cursor:     c.buffer.Cursor(),
		Submitting: c.submitting,
	}
}

// CheckStatus queries the delivery status of parcelID. Any returned status
// moves the flow to STATUS_CHECKED; only DELIVERED lets GenerateOtp proceed.
// Checking again re-targets the flow and discards older outstanding checks.
func (c *Coordinator) CheckStatus(ctx context.Context, parcelID string) (status domain.DeliveryStatus, err error) {
	defer obs.Time(ctx, "pickup.CheckStatus")(&err)

	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return "", &domain.ValidationError{Field: "parcelId", Message: "is required"}
	}

	c.mu.Lock()
	if c.state != StateIdle && c.state != StateStatusChecked {
		st := c.state
		c.mu.Unlock()
		return "", &TransitionError{Op: "check status", State: st}
	}
	c.generation++
	gen := c.generation
	// An outstanding GenerateOtp is now stale and will not clear its own flag.
	c.generating = false
	c.mu.Unlock()

	status, err = c.backend.GetDeliveryStatus(ctx, parcelID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return "", ErrStaleResponse
	}
	if err != nil {
		return "", fmt.Errorf("check status: %w", err)
	}

	c.parcelID = parcelID
	c.status = status
	c.state = StateStatusChecked
	return status, nil
}

// GenerateOtp requests an OTP for the checked parcel. On success the email
// is written to the shared session store and the flow moves to
// OTP_GENERATED, after which BeginEntry opens the keypad.
func (c *Coordinator) GenerateOtp(ctx context.Context, email string) (msg string, err error) {
	defer obs.Time(ctx, "pickup.GenerateOtp")(&err)

	email = strings.TrimSpace(email)
	if email == "" {
		return "", &domain.ValidationError{Field: "email", Message: "is required"}
	}

	c.mu.Lock()
	if c.state != StateStatusChecked && c.state != StateOtpGenerated {
		st := c.state
		c.mu.Unlock()
		return "", &TransitionError{Op: "generate otp", State: st}
	}
	if c.status != domain.StatusDelivered {
		c.mu.Unlock()
		return "", ErrNotReadyForPickup
	}
	if c.generating {
		c.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	c.generating = true
	gen := c.generation
	parcelID := c.parcelID
	c.mu.Unlock()

	msg, err = c.backend.GenerateOtp(ctx, email, parcelID)

	c.mu.Lock()
	defer c.mu.Unlock()
	// After a reset the flag belongs to the new flow.
	if gen != c.generation {
		return "", ErrStaleResponse
	}
	c.generating = false
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	if err := c.emails.Set(email); err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	c.state = StateOtpGenerated
	return msg, nil
}

// BeginEntry opens the verification keypad with an empty buffer.
func (c *Coordinator) BeginEntry() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOtpGenerated {
		return &TransitionError{Op: "begin entry", State: c.state}
	}
	c.buffer.Reset()
	c.state = StateOtpEntering
	return nil
}

func (c *Coordinator) EnterDigit(d int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editable("enter digit"); err != nil {
		return err
	}
	return c.buffer.Enter(d)
}

func (c *Coordinator) Backspace() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editable("backspace"); err != nil {
		return err
	}
	c.buffer.Backspace()
	return nil
}

func (c *Coordinator) editable(op string) error {
	if c.state != StateOtpEntering {
		return &TransitionError{Op: op, State: c.state}
	}
	if c.submitting {
		return ErrSubmissionInFlight
	}
	return nil
}

// Submit verifies the buffered code against the email held in the shared
// session store. A domain or transport failure leaves the flow in
// OTP_ENTERING with the buffer as it was.
func (c *Coordinator) Submit(ctx context.Context) (msg string, err error) {
	defer obs.Time(ctx, "pickup.Submit")(&err)

	c.mu.Lock()
	if c.state != StateOtpEntering {
		st := c.state
		c.mu.Unlock()
		return "", &TransitionError{Op: "submit", State: st}
	}
	if c.submitting {
		c.mu.Unlock()
		return "", ErrSubmissionInFlight
	}
	email := c.emails.Email()
	if email == "" {
		c.mu.Unlock()
		return "", ErrNoSessionEmail
	}
	c.submitting = true
	gen := c.generation
	code := c.buffer.String()
	c.mu.Unlock()

	msg, err = c.backend.VerifyOtp(ctx, email, code)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return "", ErrStaleResponse
	}
	c.submitting = false
	if err != nil {
		return "", fmt.Errorf("verify otp: %w", err)
	}

	c.state = StateOtpVerified
	return msg, nil
}

// OpenBox runs after a successful verification, and again to reopen a closed box.
func (c *Coordinator) OpenBox() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOtpVerified && c.state != StateBoxClosed {
		return &TransitionError{Op: "open box", State: c.state}
	}
	c.state = StateBoxOpened
	return nil
}

func (c *Coordinator) CloseBox() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateBoxOpened {
		return &TransitionError{Op: "close box", State: c.state}
	}
	c.state = StateBoxClosed
	return nil
}

// Finish ends a completed pickup: the shared email is cleared and the
// coordinator returns to IDLE.
func (c *Coordinator) Finish() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Terminal() {
		return &TransitionError{Op: "finish", State: c.state}
	}
	c.emails.Clear()
	c.resetLocked()
	return nil
}

// Reset abandons the flow from any state. Outstanding calls are discarded
// when they return and the shared email is cleared.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.emails.Clear()
	c.resetLocked()
}

func (c *Coordinator) resetLocked() {
	c.generation++
	c.state = StateIdle
	c.parcelID = ""
	c.status = ""
	c.buffer.Reset()
	c.generating = false
	c.submitting = false
}
