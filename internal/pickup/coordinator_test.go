package pickup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sdb-client/internal/adapters/mockbackend"
	"sdb-client/internal/domain"
	"sdb-client/internal/session"
)

const customer = "carol@sdb.local"

func newBackend() *mockbackend.MockBackend {
	b := mockbackend.New()
	b.Parcels = []domain.Parcel{
		{ParcelID: "P-100", UserID: customer, Status: domain.StatusDelivered},
		{ParcelID: "P-101", UserID: customer, Status: domain.StatusInTransit},
	}
	b.Codes[customer] = "123456"
	return b
}

// heldBackend parks each call to op until the test closes that call's gate.
type heldBackend struct {
	*mockbackend.MockBackend
	op      string
	entered chan int
	gates   []chan struct{}

	mu sync.Mutex
	n  int
}

func newHeldBackend(op string, calls int) *heldBackend {
	h := &heldBackend{MockBackend: newBackend(), op: op, entered: make(chan int, calls)}
	for i := 0; i < calls; i++ {
		h.gates = append(h.gates, make(chan struct{}))
	}
	return h
}

func (h *heldBackend) hold(op string) {
	if op != h.op {
		return
	}
	h.mu.Lock()
	i := h.n
	h.n++
	h.mu.Unlock()

	h.entered <- i
	<-h.gates[i]
}

func (h *heldBackend) held() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.n
}

func (h *heldBackend) GenerateOtp(ctx context.Context, email, parcelID string) (string, error) {
	h.hold("GenerateOtp")
	return h.MockBackend.GenerateOtp(ctx, email, parcelID)
}

func (h *heldBackend) VerifyOtp(ctx context.Context, email, otp string) (string, error) {
	h.hold("VerifyOtp")
	return h.MockBackend.VerifyOtp(ctx, email, otp)
}

func waitHeld(t *testing.T, h *heldBackend) {
	t.Helper()
	select {
	case <-h.entered:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s never reached the backend", h.op)
	}
}

func enterCode(t *testing.T, c *Coordinator, code string) {
	t.Helper()
	for _, r := range code {
		if err := c.EnterDigit(int(r - '0')); err != nil {
			t.Fatalf("EnterDigit(%c): %v", r, err)
		}
	}
}

// toEntering drives c to OTP_ENTERING for P-100.
func toEntering(t *testing.T, c *Coordinator) {
	t.Helper()
	ctx := context.Background()

	if _, err := c.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if _, err := c.GenerateOtp(ctx, customer); err != nil {
		t.Fatalf("GenerateOtp: %v", err)
	}
	if err := c.BeginEntry(); err != nil {
		t.Fatalf("BeginEntry: %v", err)
	}
}

func TestCoordinatorHappyPath(t *testing.T) {
	ctx := context.Background()
	emails := session.NewEmailStore(true)
	c := NewCoordinator(newBackend(), emails)

	toEntering(t, c)
	if got := emails.Email(); got != customer {
		t.Fatalf("session email = %q, want %q", got, customer)
	}

	enterCode(t, c, "123456")
	if _, err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.State() != StateOtpVerified {
		t.Fatalf("state = %s, want OTP_VERIFIED", c.State())
	}

	if err := c.OpenBox(); err != nil {
		t.Fatalf("OpenBox: %v", err)
	}
	if err := c.CloseBox(); err != nil {
		t.Fatalf("CloseBox: %v", err)
	}
	if err := c.OpenBox(); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := c.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if c.State() != StateIdle {
		t.Fatalf("state after Finish = %s, want IDLE", c.State())
	}
	if !emails.Empty() {
		t.Fatal("Finish must clear the session email")
	}
}

func TestGenerateOtpRequiresDelivered(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	c := NewCoordinator(b, session.NewEmailStore(true))

	status, err := c.CheckStatus(ctx, "P-101")
	if err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if status != domain.StatusInTransit {
		t.Fatalf("status = %s, want IN_TRANSIT", status)
	}
	if c.State() != StateStatusChecked {
		t.Fatalf("state = %s, want STATUS_CHECKED", c.State())
	}

	if _, err := c.GenerateOtp(ctx, customer); !errors.Is(err, ErrNotReadyForPickup) {
		t.Fatalf("GenerateOtp err = %v, want ErrNotReadyForPickup", err)
	}
	if n := b.Calls("GenerateOtp"); n != 0 {
		t.Fatalf("backend GenerateOtp called %d times, want 0", n)
	}
}

func TestGenerateOtpBeforeStatusCheck(t *testing.T) {
	c := NewCoordinator(newBackend(), session.NewEmailStore(true))

	_, err := c.GenerateOtp(context.Background(), customer)

	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want TransitionError", err)
	}
	if te.State != StateIdle {
		t.Fatalf("TransitionError.State = %s, want IDLE", te.State)
	}
}

func TestCheckStatusUnknownParcelStaysIdle(t *testing.T) {
	c := NewCoordinator(newBackend(), session.NewEmailStore(true))

	_, err := c.CheckStatus(context.Background(), "P-404")

	if domain.Classify(err) != domain.DomainFailure {
		t.Fatalf("Classify(err) = %v, want domain failure", domain.Classify(err))
	}
	if c.State() != StateIdle {
		t.Fatalf("state = %s, want IDLE", c.State())
	}
}

func TestCheckStatusRequiresParcelID(t *testing.T) {
	b := newBackend()
	c := NewCoordinator(b, session.NewEmailStore(true))

	_, err := c.CheckStatus(context.Background(), "  ")

	if domain.Classify(err) != domain.ValidationFailure {
		t.Fatalf("Classify(err) = %v, want validation failure", domain.Classify(err))
	}
	if n := b.Calls("GetDeliveryStatus"); n != 0 {
		t.Fatalf("backend called %d times, want 0", n)
	}
}

func TestSubmitWrongCodeReturnsToEntering(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(newBackend(), session.NewEmailStore(true))
	toEntering(t, c)

	enterCode(t, c, "999999")
	before := c.Snapshot()

	_, err := c.Submit(ctx)

	var de *domain.DomainError
	if !errors.As(err, &de) || de.Message != "Invalid OTP" {
		t.Fatalf("err = %v, want DomainError Invalid OTP", err)
	}
	after := c.Snapshot()
	if after.State != StateOtpEntering {
		t.Fatalf("state = %s, want OTP_ENTERING", after.State)
	}
	if after.Digits != before.Digits || after.Cursor != before.Cursor {
		t.Fatalf("buffer changed: before %v/%d after %v/%d", before.Digits, before.Cursor, after.Digits, after.Cursor)
	}

	// The cursor wrapped to the first slot, so six more digits overwrite the code.
	enterCode(t, c, "123456")
	if _, err := c.Submit(ctx); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
}

func TestSubmitTransportFailureKeepsEntering(t *testing.T) {
	b := newBackend()
	c := NewCoordinator(b, session.NewEmailStore(true))
	toEntering(t, c)
	enterCode(t, c, "123456")

	b.Err = &domain.TransportError{Kind: domain.KindNetwork, Message: "connection refused"}
	_, err := c.Submit(context.Background())

	if domain.Classify(err) != domain.TransportFailure {
		t.Fatalf("Classify(err) = %v, want transport failure", domain.Classify(err))
	}
	if c.State() != StateOtpEntering {
		t.Fatalf("state = %s, want OTP_ENTERING", c.State())
	}
}

func TestSubmitWithoutSessionEmail(t *testing.T) {
	emails := session.NewEmailStore(true)
	b := newBackend()
	c := NewCoordinator(b, emails)
	toEntering(t, c)

	emails.Clear()
	_, err := c.Submit(context.Background())

	if !errors.Is(err, ErrNoSessionEmail) {
		t.Fatalf("err = %v, want ErrNoSessionEmail", err)
	}
	if n := b.Calls("VerifyOtp"); n != 0 {
		t.Fatalf("VerifyOtp called %d times, want 0", n)
	}
}

func TestDoubleSubmitIsRejected(t *testing.T) {
	b := newBackend()
	c := NewCoordinator(b, session.NewEmailStore(true))
	toEntering(t, c)
	enterCode(t, c, "123456")

	b.Entered = make(chan string, 1)
	b.Release = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()

	select {
	case <-b.Entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the backend")
	}

	if _, err := c.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("second Submit err = %v, want ErrSubmissionInFlight", err)
	}
	if err := c.EnterDigit(1); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("EnterDigit during submit err = %v, want ErrSubmissionInFlight", err)
	}
	if !c.Snapshot().Submitting {
		t.Fatal("snapshot should report an outstanding submission")
	}

	close(b.Release)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if n := b.Calls("VerifyOtp"); n != 1 {
		t.Fatalf("VerifyOtp called %d times, want 1", n)
	}
}

func TestResetDiscardsInFlightResponse(t *testing.T) {
	b := newBackend()
	emails := session.NewEmailStore(true)
	c := NewCoordinator(b, emails)

	b.Entered = make(chan string, 1)
	b.Release = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := c.CheckStatus(context.Background(), "P-100")
		done <- err
	}()
	<-b.Entered

	c.Reset()
	close(b.Release)

	if err := <-done; !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("err = %v, want ErrStaleResponse", err)
	}
	snap := c.Snapshot()
	if snap.State != StateIdle || snap.ParcelID != "" {
		t.Fatalf("stale response was applied: %+v", snap)
	}
}

func TestNewerStatusCheckWins(t *testing.T) {
	b := newBackend()
	c := NewCoordinator(b, session.NewEmailStore(true))

	b.Entered = make(chan string, 1)
	b.Release = make(chan struct{}, 2)

	first := make(chan error, 1)
	go func() {
		_, err := c.CheckStatus(context.Background(), "P-101")
		first <- err
	}()
	<-b.Entered

	second := make(chan error, 1)
	go func() {
		_, err := c.CheckStatus(context.Background(), "P-100")
		second <- err
	}()
	<-b.Entered

	b.Release <- struct{}{}
	b.Release <- struct{}{}

	errFirst, errSecond := <-first, <-second
	if !errors.Is(errFirst, ErrStaleResponse) {
		t.Fatalf("older check err = %v, want ErrStaleResponse", errFirst)
	}
	if errSecond != nil {
		t.Fatalf("newer check: %v", errSecond)
	}

	snap := c.Snapshot()
	if snap.ParcelID != "P-100" || snap.Status != domain.StatusDelivered {
		t.Fatalf("snapshot = %+v, want P-100 DELIVERED", snap)
	}
}

func TestStaleSessionEmailSurfaces(t *testing.T) {
	emails := session.NewEmailStore(true)
	if err := emails.Set("someone-else@sdb.local"); err != nil {
		t.Fatal(err)
	}
	c := NewCoordinator(newBackend(), emails)
	ctx := context.Background()

	if _, err := c.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatal(err)
	}
	_, err := c.GenerateOtp(ctx, customer)

	if !errors.Is(err, session.ErrSessionNotCleared) {
		t.Fatalf("err = %v, want ErrSessionNotCleared", err)
	}
	if c.State() != StateStatusChecked {
		t.Fatalf("state = %s, want STATUS_CHECKED", c.State())
	}
}

func TestInputOutsideEntryIsRejected(t *testing.T) {
	c := NewCoordinator(newBackend(), session.NewEmailStore(true))

	var te *TransitionError
	if err := c.EnterDigit(1); !errors.As(err, &te) {
		t.Fatalf("EnterDigit err = %v, want TransitionError", err)
	}
	if err := c.Backspace(); !errors.As(err, &te) {
		t.Fatalf("Backspace err = %v, want TransitionError", err)
	}
	if err := c.OpenBox(); !errors.As(err, &te) {
		t.Fatalf("OpenBox err = %v, want TransitionError", err)
	}
	if err := c.Finish(); !errors.As(err, &te) {
		t.Fatalf("Finish err = %v, want TransitionError", err)
	}
}

func TestStaleSubmitKeepsNewerSubmissionGuarded(t *testing.T) {
	ctx := context.Background()
	h := newHeldBackend("VerifyOtp", 3)
	c := NewCoordinator(h, session.NewEmailStore(true))

	toEntering(t, c)
	enterCode(t, c, "000000")
	oldDone := make(chan error, 1)
	go func() {
		_, err := c.Submit(ctx)
		oldDone <- err
	}()
	waitHeld(t, h)

	c.Reset()
	toEntering(t, c)
	enterCode(t, c, "123456")
	newDone := make(chan error, 1)
	go func() {
		_, err := c.Submit(ctx)
		newDone <- err
	}()
	waitHeld(t, h)

	close(h.gates[0])
	if err := <-oldDone; !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("abandoned Submit err = %v, want ErrStaleResponse", err)
	}
	if !c.Snapshot().Submitting {
		t.Fatal("abandoned submission cleared the guard of the current one")
	}

	// Let a third call through if the guard were missing so the test fails
	// instead of hanging.
	close(h.gates[2])
	if _, err := c.Submit(ctx); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("third Submit err = %v, want ErrSubmissionInFlight", err)
	}
	if n := h.held(); n != 2 {
		t.Fatalf("VerifyOtp reached the backend %d times, want 2", n)
	}

	close(h.gates[1])
	if err := <-newDone; err != nil {
		t.Fatalf("current Submit: %v", err)
	}
	if c.State() != StateOtpVerified {
		t.Fatalf("state = %s, want OTP_VERIFIED", c.State())
	}
}

func TestStaleGenerateKeepsNewerGenerateGuarded(t *testing.T) {
	ctx := context.Background()
	h := newHeldBackend("GenerateOtp", 3)
	emails := session.NewEmailStore(true)
	c := NewCoordinator(h, emails)

	if _, err := c.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatal(err)
	}
	oldDone := make(chan error, 1)
	go func() {
		_, err := c.GenerateOtp(ctx, customer)
		oldDone <- err
	}()
	waitHeld(t, h)

	c.Reset()
	if _, err := c.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatal(err)
	}
	newDone := make(chan error, 1)
	go func() {
		_, err := c.GenerateOtp(ctx, customer)
		newDone <- err
	}()
	waitHeld(t, h)

	close(h.gates[0])
	if err := <-oldDone; !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("abandoned GenerateOtp err = %v, want ErrStaleResponse", err)
	}
	if !emails.Empty() {
		t.Fatal("abandoned GenerateOtp wrote the session email")
	}

	close(h.gates[2])
	if _, err := c.GenerateOtp(ctx, customer); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("third GenerateOtp err = %v, want ErrSubmissionInFlight", err)
	}
	if n := h.held(); n != 2 {
		t.Fatalf("GenerateOtp reached the backend %d times, want 2", n)
	}

	close(h.gates[1])
	if err := <-newDone; err != nil {
		t.Fatalf("current GenerateOtp: %v", err)
	}
	if c.State() != StateOtpGenerated {
		t.Fatalf("state = %s, want OTP_GENERATED", c.State())
	}
}

func TestRecheckAbandonsOutstandingGenerate(t *testing.T) {
	ctx := context.Background()
	h := newHeldBackend("GenerateOtp", 2)
	c := NewCoordinator(h, session.NewEmailStore(true))

	if _, err := c.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatal(err)
	}
	oldDone := make(chan error, 1)
	go func() {
		_, err := c.GenerateOtp(ctx, customer)
		oldDone <- err
	}()
	waitHeld(t, h)

	if _, err := c.CheckStatus(ctx, "P-100"); err != nil {
		t.Fatalf("re-check: %v", err)
	}

	newDone := make(chan error, 1)
	go func() {
		_, err := c.GenerateOtp(ctx, customer)
		newDone <- err
	}()
	select {
	case <-h.entered:
	case err := <-newDone:
		t.Fatalf("GenerateOtp after re-check err = %v, want it to reach the backend", err)
	case <-time.After(2 * time.Second):
		t.Fatal("GenerateOtp after re-check never reached the backend")
	}

	close(h.gates[1])
	if err := <-newDone; err != nil {
		t.Fatalf("GenerateOtp after re-check: %v", err)
	}
	close(h.gates[0])
	if err := <-oldDone; !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("abandoned GenerateOtp err = %v, want ErrStaleResponse", err)
	}
	if c.State() != StateOtpGenerated {
		t.Fatalf("state = %s, want OTP_GENERATED", c.State())
	}
}
