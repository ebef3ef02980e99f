package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleNotifier writes user-facing confirmations and failures to a writer,
// one line each. It is the headless analog of the storefront's toast layer.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a ConsoleNotifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout}
}

// Success prints a confirmation message.
func (n *ConsoleNotifier) Success(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "✔ %s\n", msg)
}

// Error prints a failure message.
func (n *ConsoleNotifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "✖ %s\n", msg)
}
