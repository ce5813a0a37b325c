package ws

import (
	"context"
	"fmt"
	"sync"

	"github.com/tradewire/binance-spot/apierr"
)

// State is the connection lifecycle state of the supervisor.
type State int

const (
	// Connecting: the first establishment attempt is in progress.
	Connecting State = iota
	// Connected: the socket is live and serving requests.
	Connected
	// Reconnecting: establishment failed, retrying with backoff.
	Reconnecting
	// Disconnected: the connection was closed gracefully.
	Disconnected
	// Failed: establishment attempts are exhausted; the supervisor has
	// terminated permanently.
	Failed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	case Disconnected:
		return "disconnected"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the current connection state. Attempt is non-zero only
// while Reconnecting and counts establishment attempts from 1.
type Status struct {
	State   State
	Attempt int
}

func (s Status) String() string {
	if s.State == Reconnecting {
		return fmt.Sprintf("reconnecting(attempt=%d)", s.Attempt)
	}
	return s.State.String()
}

// statusCell is a single-writer, multi-reader cell holding the latest
// Status. Readers observe changes through a notify channel that the
// writer closes and replaces on every update, so a reader can never
// miss a transition between its snapshot and its wait. Only the
// supervisor writes.
type statusCell struct {
	mu     sync.Mutex
	cur    Status
	notify chan struct{}
}

func newStatusCell(initial Status) *statusCell {
	return &statusCell{cur: initial, notify: make(chan struct{})}
}

func (c *statusCell) get() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *statusCell) set(s Status) {
	c.mu.Lock()
	if c.cur == s {
		c.mu.Unlock()
		return
	}
	c.cur = s
	close(c.notify)
	c.notify = make(chan struct{})
	c.mu.Unlock()
}

// watch returns the current value and a channel that is closed the
// next time the value changes.
func (c *statusCell) watch() (Status, <-chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur, c.notify
}

// awaitConnected blocks until the cell reads Connected. It fails fast
// on Failed or Disconnected since neither can reach Connected without
// outside intervention.
func (c *statusCell) awaitConnected(ctx context.Context) error {
	for {
		cur, changed := c.watch()
		switch cur.State {
		case Connected:
			return nil
		case Failed:
			return apierr.ErrConnectionFailed
		case Disconnected:
			return apierr.ErrConnectionClosed
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
