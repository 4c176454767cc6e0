// internal/shell/render.go
//
// Output helpers. Write errors on the terminal are ignored; there is nowhere
// else to report them.

package shell

import (
	"fmt"

	"abcbank/internal/bank"
)

var declineText = map[bank.Decline]string{
	bank.DeclineInsufficientBalance: "Insufficient balance",
	bank.DeclineInvalidLogin:        "Invalid login",
}

func (s *Shell) print(msg string) {
	_, _ = fmt.Fprint(s.out, msg)
}

func (s *Shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// writeFailure renders a rejected operation as "<Action> failed: <reason>".
func (s *Shell) writeFailure(act string, err error) {
	s.printf("%s failed: %v\n", act, err)
}

func (s *Shell) writeDecline(d bank.Decline) {
	text, ok := declineText[d]
	if !ok {
		text = string(d)
	}
	s.println(text)
}
