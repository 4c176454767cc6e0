// internal/bank/bank.go

package bank

import (
	"abcbank/internal/crypto"
	"abcbank/internal/logger"
)

// Bank groups the two process-wide stores. Build it once at startup; there
// is no cross-store transaction because opening a balance is idempotent.
type Bank struct {
	Directory *Directory
	Ledger    *Ledger
}

// NewBank wires a directory and a ledger that share log. Either argument
// may be nil.
func NewBank(hasher crypto.PasswordHasher, log *logger.Logger) *Bank {
	return &Bank{
		Directory: NewDirectory(hasher, log),
		Ledger:    NewLedger(log),
	}
}

// OpenAccount registers a customer under the next identifier and opens a
// zero balance for it.
func (b *Bank) OpenAccount(name, password string) (CustomerID, error) {
	id, err := b.Directory.RegisterAuto(name, password)
	if err != nil {
		return "", err
	}
	b.Ledger.BalanceOf(id)
	return id, nil
}

// Login checks credentials and reports DeclineInvalidLogin on any mismatch.
func (b *Bank) Login(id CustomerID, password string) Decline {
	if !b.Directory.Authenticate(id, password) {
		return DeclineInvalidLogin
	}
	return DeclineNone
}
