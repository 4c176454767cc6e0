// Package bank holds the in-memory core of the bank: the Directory of
// customer records and the Ledger of balances. Amounts are shopspring
// decimals so repeated deposits and withdrawals never drift.

package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// BranchID prefixes every generated customer id.
const BranchID = 2057

// CustomerID has the form "<BranchID>-<sequence>".
type CustomerID string

func (id CustomerID) String() string { return string(id) }

// User is a customer record. It is written once at registration and never
// changed. Password holds whatever the configured hasher produced.
type User struct {
	ID        CustomerID
	Name      string
	Password  string
	CreatedAt time.Time
}

// Direction says whether an Entry added to or took from the balance.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Entry records one successful balance change.
type Entry struct {
	ID        string          `json:"id"`
	Time      time.Time       `json:"time"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Balance   decimal.Decimal `json:"balance"`
}
