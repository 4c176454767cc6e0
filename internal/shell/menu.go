// internal/shell/menu.go
//
// Menu dispatch. Each menu is an explicit table from the typed choice to a
// handler; anything not in the table is an invalid selection and re-prompts.

package shell

import (
	"abcbank/internal/bank"
	"abcbank/internal/logger"
)

const mainMenu = `
Welcome to ABC Bank
Select an option:
1. Login to the account
2. Create an account
3. Exit`

const actionMenu = `
Select an action:
1. Deposit money
2. Withdraw money
3. Check balance
4. Logout`

// action handles one post-login choice; done ends the session.
type action func(id bank.CustomerID) (done bool, err error)

func (s *Shell) actions() map[string]action {
	return map[string]action{
		"1": s.deposit,
		"2": s.withdraw,
		"3": s.checkBalance,
		"4": s.logout,
	}
}

// Run drives the main menu until the user exits or input ends. It only
// returns an error when reading input fails.
func (s *Shell) Run() error {
	for {
		s.println(mainMenu)
		choice, err := s.ask("Enter 1/2/3: ")
		if err != nil {
			return s.stop(err)
		}

		var id bank.CustomerID
		switch choice {
		case "1":
			id, err = s.login()
		case "2":
			id, err = s.createAccount()
		case "3":
			s.println("Goodbye!")
			return nil
		default:
			s.log.WithFields(logger.Fields{"menu": "main", "choice": choice}).Debug("invalid selection")
			s.println("Invalid selection. Please enter 1, 2, or 3.")
			continue
		}
		if err != nil {
			return s.stop(err)
		}
		if id == "" {
			continue
		}
		if err := s.session(id); err != nil {
			return s.stop(err)
		}
	}
}

// session runs the action loop for an authenticated customer.
func (s *Shell) session(id bank.CustomerID) error {
	name, ok := s.bank.Directory.NameOf(id)
	if !ok {
		name = string(id)
	}
	s.printf("\nWelcome, %s! (Customer ID: %s)\n", name, id)
	s.log.WithFields(logger.Fields{
		"customer_id": id,
		"action":      "session_start",
	}).Info("session opened")

	actions := s.actions()
	for {
		s.println(actionMenu)
		choice, err := s.ask("Enter 1/2/3/4: ")
		if err != nil {
			return err
		}
		act, ok := actions[choice]
		if !ok {
			s.log.WithFields(logger.Fields{
				"customer_id": id,
				"menu":        "action",
				"choice":      choice,
			}).Debug("invalid selection")
			s.println("Invalid selection. Please choose 1, 2, 3, or 4.")
			continue
		}
		done, err := act(id)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// stop treats end of input as an exit and passes read failures through.
func (s *Shell) stop(err error) error {
	if isClosed(err) {
		s.println("")
		s.log.WithFields(logger.Fields{"action": "input_closed"}).Info("input closed, exiting")
		return nil
	}
	s.log.WithFields(logger.Fields{"action": "input_failed"}).Errorf("read input: %v", err)
	return err
}
