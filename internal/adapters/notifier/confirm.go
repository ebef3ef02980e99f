package notifier

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinConfirmer implements domain.Confirmer by prompting on the terminal.
// Destructive admin operations go through it before executing.
type StdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinConfirmer creates a StdinConfirmer reading stdin and writing stdout.
func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Confirm prints the prompt and returns true only on an explicit yes.
func (c *StdinConfirmer) Confirm(_ context.Context, prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
