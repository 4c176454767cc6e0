package crypto

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPlainHasher(t *testing.T) {
	var h PlainHasher
	stored, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if stored != "pw1" {
		t.Fatalf("stored=%q want raw password", stored)
	}
	if err := h.Compare(stored, "pw1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	for _, pw := range []string{"pw2", "PW1", "pw1 ", ""} {
		if err := h.Compare(stored, pw); !errors.Is(err, ErrMismatch) {
			t.Errorf("Compare(%q) want ErrMismatch, got %v", pw, err)
		}
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	stored, err := h.Hash("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if stored == "pw1" || !strings.HasPrefix(stored, "$2") {
		t.Fatalf("stored value is not a bcrypt hash: %q", stored)
	}
	if err := h.Compare(stored, "pw1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(stored, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Fatalf("want ErrMismatch, got %v", err)
	}
}

func TestBcryptHasherRejectsLongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if _, err := h.Hash(strings.Repeat("a", 73)); err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}
