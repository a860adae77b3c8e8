// Package console prints chat messages instead of posting them, for dry runs.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/emiliopalmerini/mreport/internal/ports"
)

// Messenger writes each message to an io.Writer.
type Messenger struct {
	mu  sync.Mutex
	out io.Writer
	seq int
}

// NewMessenger creates a Messenger writing to out.
func NewMessenger(out io.Writer) *Messenger {
	return &Messenger{out: out}
}

// Send prints m and returns a synthetic thread ID.
func (c *Messenger) Send(ctx context.Context, m ports.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	id := fmt.Sprintf("console-%d", c.seq)

	var b strings.Builder
	fmt.Fprintf(&b, "--- [%s] channel=%s", id, m.Channel)
	if m.ThreadID != "" {
		fmt.Fprintf(&b, " thread=%s", m.ThreadID)
	}
	b.WriteString("\n")
	if m.Header != "" {
		fmt.Fprintf(&b, "# %s\n", m.Header)
	}
	if m.Body != "" {
		fmt.Fprintf(&b, "%s\n", m.Body)
	}
	if m.Text != "" {
		fmt.Fprintf(&b, "%s\n", strings.TrimRight(m.Text, "\n"))
	}
	if m.Divider {
		b.WriteString("----\n")
	}

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return "", fmt.Errorf("writing message: %w", err)
	}
	return id, nil
}
