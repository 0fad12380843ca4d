package stub

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// OtpTTL is how long an issued pickup OTP stays valid.
const OtpTTL = 10 * time.Minute

type account struct {
	user         domain.User
	passwordHash []byte
}

type otpRecord struct {
	code     string
	parcelID string
	issuedAt time.Time
}

// MemoryStore is the in-memory state of the stub backend.
// Listings are returned in insertion order. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]*account // keyed by email
	order    []string
	boxes    []domain.DeliveryBox
	parcels  []domain.Parcel
	otps     map[string]otpRecord // keyed by email
	logs     []domain.OtpLogEntry

	now     func() time.Time
	newCode func() (string, error)
}

type StoreOption func(*MemoryStore)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithOtpGenerator overrides the random 6-digit generator, for tests.
func WithOtpGenerator(gen func() (string, error)) StoreOption {
	return func(s *MemoryStore) { s.newCode = gen }
}

func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		accounts: make(map[string]*account),
		otps:     make(map[string]otpRecord),
		now:      time.Now,
		newCode:  randomOtp,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func normEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Register stores a new account and returns its user id.
func (s *MemoryStore) Register(ctx context.Context, req contracts.RegisterRequest) (domain.User, error) {
	if err := checkCtx(ctx); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("register: hash password: %w", err)
	}

	key := normEmail(req.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[key]; ok {
		return domain.User{}, ErrConflict
	}

	u := domain.User{
		UserID: uuid.NewString(),
		Name:   strings.TrimSpace(req.Name),
		Email:  key,
		Role:   req.Role,
	}
	s.accounts[key] = &account{user: u, passwordHash: hash}
	s.order = append(s.order, key)

	return u, nil
}

// Authenticate checks email and password and returns the matching user.
func (s *MemoryStore) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	if err := checkCtx(ctx); err != nil {
		return domain.User{}, err
	}

	s.mu.RLock()
	acc, ok := s.accounts[normEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

// ResetPassword replaces the password of an existing account.
func (s *MemoryStore) ResetPassword(ctx context.Context, email, password string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("reset password: hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[normEmail(email)]
	if !ok {
		return ErrNotFound
	}
	acc.passwordHash = hash
	return nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.accounts[key].user)
	}
	return out, nil
}

func (s *MemoryStore) CreateBox(ctx context.Context, req contracts.CreateDeliveryBoxRequest) (string, error) {
	if err := checkCtx(ctx); err != nil {
		return "", err
	}

	box := domain.DeliveryBox{
		BoxID:     uuid.NewString(),
		Address:   strings.TrimSpace(req.Address),
		Type:      req.Type,
		IsSecured: req.IsSecured,
		Status:    req.Status,
	}
	if req.Location != nil {
		loc := *req.Location
		box.Location = &loc
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes = append(s.boxes, box)

	return box.BoxID, nil
}

func (s *MemoryStore) ListBoxes(ctx context.Context) ([]domain.DeliveryBox, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DeliveryBox, len(s.boxes))
	copy(out, s.boxes)
	return out, nil
}

// CreateParcel requires an existing owner and delivery box.
func (s *MemoryStore) CreateParcel(ctx context.Context, req contracts.CreateParcelRequest) (string, error) {
	if err := checkCtx(ctx); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner := normEmail(req.UserID)
	if _, ok := s.accounts[owner]; !ok {
		return "", fmt.Errorf("create parcel: owner %q: %w", req.UserID, ErrNotFound)
	}
	if s.boxIndex(req.DeliveryBoxID) < 0 {
		return "", fmt.Errorf("create parcel: delivery box %q: %w", req.DeliveryBoxID, ErrNotFound)
	}

	p := domain.Parcel{
		ParcelID:      uuid.NewString(),
		Size:          req.Size,
		Destination:   strings.TrimSpace(req.Destination),
		IsFragile:     req.IsFragile,
		UserID:        owner,
		DeliveryBoxID: req.DeliveryBoxID,
		Status:        domain.StatusDispatched,
		CreatedAt:     s.now().UTC(),
	}
	s.parcels = append(s.parcels, p)

	return p.ParcelID, nil
}

func (s *MemoryStore) ListParcels(ctx context.Context) ([]domain.Parcel, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Parcel, len(s.parcels))
	copy(out, s.parcels)
	return out, nil
}

// AssignCourier stamps courierID (a courier's email) on the parcel.
func (s *MemoryStore) AssignCourier(ctx context.Context, parcelID, courierID string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.parcelIndex(parcelID)
	if i < 0 {
		return fmt.Errorf("assign courier: parcel %q: %w", parcelID, ErrNotFound)
	}

	key := normEmail(courierID)
	acc, ok := s.accounts[key]
	if !ok {
		return fmt.Errorf("assign courier: courier %q: %w", courierID, ErrNotFound)
	}
	if acc.user.Role != domain.RoleCourier {
		return fmt.Errorf("assign courier: %q: %w", courierID, ErrNotCourier)
	}

	s.parcels[i].CourierID = &key
	return nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, parcelID string, status domain.DeliveryStatus) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.parcelIndex(parcelID)
	if i < 0 {
		return fmt.Errorf("update status: parcel %q: %w", parcelID, ErrNotFound)
	}
	s.parcels[i].Status = status
	return nil
}

func (s *MemoryStore) Status(ctx context.Context, parcelID string) (domain.DeliveryStatus, error) {
	if err := checkCtx(ctx); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.parcelIndex(parcelID)
	if i < 0 {
		return "", fmt.Errorf("status: parcel %q: %w", parcelID, ErrNotFound)
	}
	return s.parcels[i].Status, nil
}

// GenerateOtp issues a pickup code for the owner of a delivered parcel.
// A new code replaces any unused one for the same email.
func (s *MemoryStore) GenerateOtp(ctx context.Context, email, parcelID string) (string, error) {
	if err := checkCtx(ctx); err != nil {
		return "", err
	}

	code, err := s.newCode()
	if err != nil {
		return "", err
	}

	key := normEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.parcelIndex(parcelID)
	if i < 0 {
		return "", fmt.Errorf("generate otp: parcel %q: %w", parcelID, ErrNotFound)
	}
	p := s.parcels[i]
	if p.Status != domain.StatusDelivered {
		return "", ErrNotDelivered
	}
	if p.UserID != key {
		return "", ErrNotOwner
	}

	s.otps[key] = otpRecord{code: code, parcelID: parcelID, issuedAt: s.now()}
	s.appendLog(p.DeliveryBoxID, "GENERATED", nil)

	return code, nil
}

// VerifyOtp consumes the code issued to email. Codes are single use.
func (s *MemoryStore) VerifyOtp(ctx context.Context, email, otp string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}

	key := normEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.otps[key]
	if !ok || rec.code != otp || s.now().Sub(rec.issuedAt) > OtpTTL {
		msg := ErrInvalidOtp.Error()
		s.appendLog(key, "FAILED", &msg)
		return ErrInvalidOtp
	}

	delete(s.otps, key)
	s.appendLog(key, "VERIFIED", nil)
	return nil
}

// IssuedOtp returns the outstanding code for email. The stub has no SMS or
// email channel, so this stands in for the user's inbox.
func (s *MemoryStore) IssuedOtp(email string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.otps[normEmail(email)]
	return rec.code, ok
}

func (s *MemoryStore) ListOtpLogs(ctx context.Context) ([]domain.OtpLogEntry, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.OtpLogEntry, len(s.logs))
	copy(out, s.logs)
	return out, nil
}

// appendLog must be called with s.mu held.
func (s *MemoryStore) appendLog(provider, status string, errMsg *string) {
	s.logs = append(s.logs, domain.OtpLogEntry{
		OtpID:             uuid.NewString(),
		PhoneNumber:       "",
		ServiceProviderID: provider,
		Status:            status,
		Error:             errMsg,
		CreatedAt:         s.now().UTC(),
	})
}

// parcelIndex must be called with s.mu held.
func (s *MemoryStore) parcelIndex(parcelID string) int {
	for i := range s.parcels {
		if s.parcels[i].ParcelID == parcelID {
			return i
		}
	}
	return -1
}

// boxIndex must be called with s.mu held.
func (s *MemoryStore) boxIndex(boxID string) int {
	for i := range s.boxes {
		if s.boxes[i].BoxID == boxID {
			return i
		}
	}
	return -1
}
