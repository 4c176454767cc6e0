// internal/bank/bank_test.go

package bank

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAliceScenario(t *testing.T) {
	b := NewBank(nil, testLogger())

	id, err := b.Directory.RegisterAuto("Alice", "pw1")
	if err != nil {
		t.Fatal(err)
	}
	if id != "2057-1" {
		t.Fatalf("id=%q want 2057-1", id)
	}

	bal, err := b.Ledger.Deposit(id, dec(t, "100"))
	if err != nil || FormatAmount(bal) != "100.00" {
		t.Fatalf("deposit bal=%s err=%v", bal, err)
	}

	out, err := b.Ledger.Withdraw(id, dec(t, "150"))
	if err != nil || out.Declined != DeclineInsufficientBalance || FormatAmount(out.Balance) != "100.00" {
		t.Fatalf("over-withdraw out=%+v err=%v", out, err)
	}

	out, err = b.Ledger.Withdraw(id, dec(t, "40"))
	if err != nil || !out.OK() || FormatAmount(out.Balance) != "60.00" {
		t.Fatalf("withdraw out=%+v err=%v", out, err)
	}

	if !b.Directory.Authenticate(id, "pw1") {
		t.Fatal("authenticate with pw1 should succeed")
	}
	if b.Directory.Authenticate(id, "wrong") {
		t.Fatal("authenticate with wrong password should fail")
	}
}

func TestOpenAccountInitialisesBalance(t *testing.T) {
	b := NewBank(nil, testLogger())
	id, err := b.OpenAccount("Bob", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if b.Ledger.Len() != 1 || !b.Ledger.BalanceOf(id).IsZero() {
		t.Fatalf("ledger len=%d balance=%s", b.Ledger.Len(), b.Ledger.BalanceOf(id))
	}
}

func TestOpenAccountFailureConsumesIdentifier(t *testing.T) {
	b := NewBank(nil, testLogger())
	if _, err := b.OpenAccount("", "pw"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if b.Ledger.Len() != 0 {
		t.Fatal("failed registration must not open a balance")
	}
	id, err := b.OpenAccount("Carol", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if id != "2057-2" {
		t.Fatalf("id=%q want 2057-2", id)
	}
}

func TestNilLoggerDiscardsEvents(t *testing.T) {
	b := NewBank(nil, nil)
	id, err := b.OpenAccount("Dora", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Ledger.Deposit(id, dec(t, "10")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Ledger.Deposit(id, dec(t, "-1")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	if got := b.Login(id, "wrong"); got != DeclineInvalidLogin {
		t.Fatalf("Login wrong password = %q", got)
	}
}

func TestLogin(t *testing.T) {
	b := NewBank(nil, testLogger())
	id, _ := b.OpenAccount("Alice", "pw1")

	if got := b.Login(id, "pw1"); got != DeclineNone {
		t.Fatalf("Login ok = %q", got)
	}
	if got := b.Login(id, "nope"); got != DeclineInvalidLogin {
		t.Fatalf("Login wrong password = %q", got)
	}
	if got := b.Login("2057-42", "pw1"); got != DeclineInvalidLogin {
		t.Fatalf("Login unknown id = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"100", "100", true},
		{" 12.50 ", "12.5", true},
		{"-3", "-3", true},
		{"0", "0", true},
		{"1e2", "100", true},
		{"", "", false},
		{"abc", "", false},
		{"12,50", "", false},
		{"NaN", "", false},
		{"999999999999999.99", "999999999999999.99", true},
		{"0.00000001", "0.00000001", true},
		{"1e50000000", "", false},
		{"-1e50000000", "", false},
		{"1e-50000000", "", false},
		{"1000000000000000", "", false},
		{"0.000000001", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if !tc.ok {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("want ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":      "0.00",
		"100":    "100.00",
		"60.5":   "60.50",
		"0.125":  "0.13",
		"1234.5": "1234.50",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatAmount(%s)=%s want %s", in, got, want)
		}
	}
}

func TestDomainErrorWithCauseKeepsIdentity(t *testing.T) {
	cause := errors.New("name is required")
	err := ErrInvalidInput.WithCause(cause)

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("wrapped error should match its sentinel")
	}
	if errors.Is(err, ErrInvalidAmount) {
		t.Fatal("wrapped error must not match a different sentinel")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable through Unwrap")
	}
	if !strings.HasPrefix(err.Error(), "invalid input: ") {
		t.Fatalf("Error()=%q", err.Error())
	}

	de, ok := AsDomainError(err)
	if !ok || de.Code() != "INVALID_INPUT" || de.Category() != CategoryValidation {
		t.Fatalf("AsDomainError=%v,%v", de, ok)
	}
	if _, ok := AsDomainError(cause); ok {
		t.Fatal("plain error is not a domain error")
	}
}
