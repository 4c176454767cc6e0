// internal/shell/shell.go
//
// Package shell is the interactive front end of the bank. It reads one
// choice per line, calls the bank core and renders the result as text. All
// business rules live in package bank; the shell only decides wording.
package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"abcbank/internal/bank"
	"abcbank/internal/logger"
)

// Shell is one interactive session bound to a bank and a pair of streams.
// It is not safe for concurrent use.
type Shell struct {
	bank *bank.Bank
	in   *bufio.Scanner
	out  io.Writer
	log  *logger.Logger
}

// New returns a shell reading choices from in and writing to out. A nil log
// discards session events.
func New(b *bank.Bank, in io.Reader, out io.Writer, log *logger.Logger) *Shell {
	if log == nil {
		log = logger.Discard()
	}
	return &Shell{
		bank: b,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
	}
}

// ask prints prompt and returns the next input line, trimmed. It returns
// io.EOF once input is exhausted.
func (s *Shell) ask(prompt string) (string, error) {
	s.print(prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// login returns the authenticated id, or "" after an invalid login.
func (s *Shell) login() (bank.CustomerID, error) {
	raw, err := s.ask("Enter customer ID (e.g., 2057-1): ")
	if err != nil {
		return "", err
	}
	password, err := s.ask("Enter password: ")
	if err != nil {
		return "", err
	}

	id := bank.CustomerID(raw)
	if d := s.bank.Login(id, password); d != bank.DeclineNone {
		s.writeDecline(d)
		return "", nil
	}
	s.println("Login successful.")
	return id, nil
}

// createAccount returns the new id, or "" when registration was rejected.
func (s *Shell) createAccount() (bank.CustomerID, error) {
	name, err := s.ask("Enter your name: ")
	if err != nil {
		return "", err
	}
	password, err := s.ask("Create a password: ")
	if err != nil {
		return "", err
	}

	id, err := s.bank.OpenAccount(name, password)
	if err != nil {
		s.printf("Could not create account: %v\n", err)
		return "", nil
	}
	s.printf("Account created successfully! Your customer ID is: %s\n", id)
	return id, nil
}

func (s *Shell) deposit(id bank.CustomerID) (bool, error) {
	raw, err := s.ask("Enter deposit amount: ")
	if err != nil {
		return false, err
	}
	amount, err := bank.ParseAmount(raw)
	if err != nil {
		s.writeFailure("Deposit", err)
		return false, nil
	}
	bal, err := s.bank.Ledger.Deposit(id, amount)
	if err != nil {
		s.writeFailure("Deposit", err)
		return false, nil
	}
	s.printf("Deposit successful. New balance: %s\n", bank.FormatAmount(bal))
	return false, nil
}

func (s *Shell) withdraw(id bank.CustomerID) (bool, error) {
	raw, err := s.ask("Enter withdrawal amount: ")
	if err != nil {
		return false, err
	}
	amount, err := bank.ParseAmount(raw)
	if err != nil {
		s.writeFailure("Withdrawal", err)
		return false, nil
	}
	out, err := s.bank.Ledger.Withdraw(id, amount)
	if err != nil {
		s.writeFailure("Withdrawal", err)
		return false, nil
	}
	if !out.OK() {
		s.writeDecline(out.Declined)
	}
	s.printf("Current balance: %s\n", bank.FormatAmount(out.Balance))
	return false, nil
}

func (s *Shell) checkBalance(id bank.CustomerID) (bool, error) {
	s.printf("Your current balance is: %s\n", bank.FormatAmount(s.bank.Ledger.BalanceOf(id)))
	return false, nil
}

func (s *Shell) logout(id bank.CustomerID) (bool, error) {
	s.println("Logged out. Have a great day!")
	s.log.WithFields(logger.Fields{
		"customer_id": id,
		"action":      "logout",
	}).Info("session closed")
	return true, nil
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF)
}
