// internal/bank/ledger.go

package bank

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"abcbank/internal/logger"
)

// Decline is a business-level "no" that leaves state untouched. It is
// returned as data, never as an error.
type Decline string

const (
	DeclineNone                Decline = ""
	DeclineInsufficientBalance Decline = "insufficient balance"
	DeclineInvalidLogin        Decline = "invalid login"
)

// Outcome is the result of a withdrawal: the balance after the call and,
// when nothing changed, the reason.
type Outcome struct {
	Balance  decimal.Decimal
	Declined Decline
}

// OK reports whether the withdrawal was applied.
func (o Outcome) OK() bool { return o.Declined == DeclineNone }

type account struct {
	balance decimal.Decimal
	entries []Entry
}

// Ledger owns the balance per customer id. Unknown ids are never an error:
// any access creates a zero balance first.
type Ledger struct {
	mu    sync.Mutex
	accts map[CustomerID]*account
	now   func() time.Time
	newID func() string
	log   *logger.Logger
}

// NewLedger returns an empty ledger. A nil log discards events.
func NewLedger(log *logger.Logger) *Ledger {
	if log == nil {
		log = logger.Discard()
	}
	return &Ledger{
		accts: make(map[CustomerID]*account),
		now:   time.Now,
		newID: uuid.NewString,
		log:   log,
	}
}

// ensure must be called with l.mu held.
func (l *Ledger) ensure(id CustomerID) *account {
	a, ok := l.accts[id]
	if !ok {
		a = &account{balance: decimal.Zero}
		l.accts[id] = a
		recordLedgerSize(len(l.accts))
	}
	return a
}

// BalanceOf returns the current balance, opening a zero balance for an
// unseen id.
func (l *Ledger) BalanceOf(id CustomerID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ensure(id).balance
}

// Deposit adds amount and returns the new balance.
func (l *Ledger) Deposit(id CustomerID, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		l.reject(id, "deposit", amount)
		return decimal.Zero, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.ensure(id)
	a.balance = a.balance.Add(amount)
	e := l.appendEntry(a, amount, DirectionIn)
	recordDeposit()

	l.log.WithFields(logger.Fields{
		"customer_id": id,
		"entry_id":    e.ID,
		"amount":      FormatAmount(amount),
		"balance":     FormatAmount(a.balance),
		"action":      "deposit",
	}).Info("deposit applied")
	return a.balance, nil
}

// Withdraw subtracts amount when the balance covers it. Otherwise the
// balance is left as is and the outcome is declined; that is not an error.
func (l *Ledger) Withdraw(id CustomerID, amount decimal.Decimal) (Outcome, error) {
	if !amount.IsPositive() {
		l.reject(id, "withdraw", amount)
		return Outcome{}, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.ensure(id)

	if a.balance.LessThan(amount) {
		recordWithdrawal(true)
		l.log.WithFields(logger.Fields{
			"customer_id": id,
			"amount":      FormatAmount(amount),
			"balance":     FormatAmount(a.balance),
			"action":      "withdraw_declined",
		}).Info("insufficient balance")
		return Outcome{Balance: a.balance, Declined: DeclineInsufficientBalance}, nil
	}

	a.balance = a.balance.Sub(amount)
	e := l.appendEntry(a, amount, DirectionOut)
	recordWithdrawal(false)

	l.log.WithFields(logger.Fields{
		"customer_id": id,
		"entry_id":    e.ID,
		"amount":      FormatAmount(amount),
		"balance":     FormatAmount(a.balance),
		"action":      "withdraw",
	}).Info("withdrawal applied")
	return Outcome{Balance: a.balance}, nil
}

// History returns a copy of the account's entries, oldest first.
func (l *Ledger) History(id CustomerID) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.ensure(id)
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Len is the number of ids holding a balance.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accts)
}

func (l *Ledger) appendEntry(a *account, amount decimal.Decimal, dir Direction) Entry {
	e := Entry{
		ID:        l.newID(),
		Time:      l.now(),
		Amount:    amount,
		Direction: dir,
		Balance:   a.balance,
	}
	a.entries = append(a.entries, e)
	return e
}

func (l *Ledger) reject(id CustomerID, op string, amount decimal.Decimal) {
	recordRejected(op, ErrInvalidAmount)
	l.log.WithFields(logger.Fields{
		"customer_id": id,
		"amount":      amount.String(),
		"action":      op + "_rejected",
	}).Warn("amount must be > 0")
}
