package console

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Alerter prints alerts as a boxed line on the terminal.
type Alerter struct {
	Out io.Writer
}

func (a *Alerter) Alert(_ context.Context, title, message string) error {
	_, err := fmt.Fprintf(a.Out, "\n[!] %s: %s\n", title, message)
	return err
}

// ShareSheet prints the shared text between separators, standing in for the
// platform share sheet.
type ShareSheet struct {
	Out io.Writer
}

func (s *ShareSheet) Share(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rule := strings.Repeat("-", 13)
	_, err := fmt.Fprintf(s.Out, "\n%s share %s\n%s\n%s\n", rule, rule, text, strings.Repeat("-", 33))
	return err
}
