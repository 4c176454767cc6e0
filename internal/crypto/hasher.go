package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Compare when the password is wrong.
var ErrMismatch = errors.New("password does not match")

// PasswordHasher turns a password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(stored string, password string) error
}

// PlainHasher keeps passwords as given. It exists only because this bank is a
// non-persistent single-process toy; never use it for real credentials.
type PlainHasher struct{}

func (h PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (h PlainHasher) Compare(stored string, password string) error {
	if stored != password {
		return ErrMismatch
	}
	return nil
}

// BcryptHasher stores bcrypt hashes at Cost.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher using cost rounds.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(stored string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
