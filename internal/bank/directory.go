package bank

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"abcbank/internal/crypto"
	"abcbank/internal/logger"
)

// Directory owns customer records and checks credentials.
type Directory struct {
	mu      sync.Mutex
	counter int64
	users   map[CustomerID]User
	hasher  crypto.PasswordHasher
	now     func() time.Time
	log     *logger.Logger
}

// NewDirectory returns an empty directory. A nil hasher stores passwords as
// given; a nil log discards events.
func NewDirectory(hasher crypto.PasswordHasher, log *logger.Logger) *Directory {
	if hasher == nil {
		hasher = crypto.PlainHasher{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Directory{
		users:  make(map[CustomerID]User),
		hasher: hasher,
		now:    time.Now,
		log:    log,
	}
}

// NextIdentifier issues "2057-1", "2057-2", ... in order.
func (d *Directory) NextIdentifier() CustomerID {
	n := atomic.AddInt64(&d.counter, 1)
	return CustomerID(fmt.Sprintf("%d-%d", BranchID, n))
}

// Register stores a record under id. The name is trimmed; the password is
// kept raw apart from hashing. Fails with ErrInvalidInput when either is
// blank and with ErrDuplicateIdentifier when id is taken.
func (d *Directory) Register(name string, id CustomerID, password string) (CustomerID, error) {
	if err := validateRegistration(name, password); err != nil {
		d.log.WithFields(logger.Fields{
			"customer_id": id,
			"action":      "register_validation_failed",
		}).Warnf("register rejected: %v", err)
		recordRejected("register", err)
		return "", err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[id]; ok {
		d.log.WithFields(logger.Fields{
			"customer_id": id,
			"action":      "register_duplicate",
		}).Warn("register rejected: customer id already exists")
		recordRejected("register", ErrDuplicateIdentifier)
		return "", ErrDuplicateIdentifier.WithCause(errors.New(string(id)))
	}

	stored, err := d.hasher.Hash(password)
	if err != nil {
		d.log.WithFields(logger.Fields{
			"customer_id": id,
			"action":      "register_hash_failed",
		}).Warnf("register rejected: %v", err)
		recordRejected("register", ErrInvalidInput)
		return "", ErrInvalidInput.WithCause(err)
	}

	d.users[id] = User{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Password:  stored,
		CreatedAt: d.now(),
	}
	recordRegistered()

	d.log.WithFields(logger.Fields{
		"customer_id": id,
		"action":      "register_success",
	}).Info("customer registered")
	return id, nil
}

// RegisterAuto registers under a freshly issued identifier.
func (d *Directory) RegisterAuto(name, password string) (CustomerID, error) {
	return d.Register(name, d.NextIdentifier(), password)
}

// Authenticate reports whether id exists and password matches it exactly.
// Unknown ids and wrong passwords both return false.
func (d *Directory) Authenticate(id CustomerID, password string) bool {
	d.mu.Lock()
	u, ok := d.users[id]
	d.mu.Unlock()

	if !ok || d.hasher.Compare(u.Password, password) != nil {
		d.log.WithFields(logger.Fields{
			"customer_id": id,
			"action":      "login_failed",
		}).Warn("invalid login")
		recordLogin(false)
		return false
	}

	d.log.WithFields(logger.Fields{
		"customer_id": id,
		"action":      "login_success",
	}).Info("login success")
	recordLogin(true)
	return true
}

// NameOf returns the stored (trimmed) name for id.
func (d *Directory) NameOf(id CustomerID) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[id]
	if !ok {
		return "", false
	}
	return u.Name, true
}

// Get returns a copy of the record for id.
func (d *Directory) Get(id CustomerID) (User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[id]
	return u, ok
}

// Len is the number of stored records.
func (d *Directory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.users)
}
