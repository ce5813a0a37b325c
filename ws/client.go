// Package ws implements the persistent WebSocket API client: one
// background supervisor goroutine owns the socket and the request
// correlation table, while callers talk to it exclusively through
// channels. See supervisor.go for the connection state machine.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/auth"
	"github.com/tradewire/binance-spot/config"
)

// callResult is the single terminal outcome of one request.
type callResult struct {
	result json.RawMessage
	err    error
}

// requestMessage carries one API request to the supervisor together
// with its one-shot response slot. The slot is buffered so the
// supervisor never blocks delivering to a caller that gave up. Params
// are pre-serialized on the caller's side; nil means omitted.
type requestMessage struct {
	id     string
	method string
	params json.RawMessage
	resp   chan callResult
}

// taskMessage is the outbound queue element: exactly one of req or
// shutdown is set.
type taskMessage struct {
	req      *requestMessage
	shutdown chan error
}

// Client is the public handle over the background supervisor. All
// methods are safe for concurrent use.
type Client struct {
	cfg    *config.Config
	signer auth.Signer

	reqCh  chan taskMessage
	status *statusCell

	cancel context.CancelFunc
	done   chan struct{} // closed when the supervisor goroutine returns

	mu     sync.Mutex
	closed bool
}

// Connect starts the supervisor and returns immediately; the returned
// client is in Connecting state. A nil signer is valid for clients
// that only make public calls. Use WaitForConnection to block until
// the socket is live.
func Connect(cfg *config.Config, signer auth.Signer) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		cfg:    cfg,
		signer: signer,
		reqCh:  make(chan taskMessage, 64),
		status: newStatusCell(Status{State: Connecting}),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go c.run(ctx)
	return c
}

// Status returns a snapshot of the current connection status.
func (c *Client) Status() Status {
	return c.status.get()
}

// WaitForConnection blocks until the connection is established. It
// returns an error immediately if the connection has permanently
// failed or been closed.
func (c *Client) WaitForConnection(ctx context.Context) error {
	start := time.Now()
	if err := c.status.awaitConnected(ctx); err != nil {
		return err
	}
	log.Debug().Dur("wait", time.Since(start)).Msg("websocket connection ready")
	return nil
}

// Call sends one request over the persistent connection and waits for
// its paired response. When signed is true the parameters are stamped
// with apiKey/timestamp/recvWindow and a signature before sending.
//
// A timeout here is a caller-side give-up only: the request may still
// resolve inside the supervisor later, so treat it as unknown outcome
// rather than definite failure. Exactly one terminal outcome is
// delivered for every request that reaches the supervisor.
func (c *Client) Call(ctx context.Context, method string, params any, signed bool) (json.RawMessage, error) {
	if signed {
		var err error
		params, err = c.signParams(params)
		if err != nil {
			return nil, err
		}
	}
	raw, err := normalizeParams(params)
	if err != nil {
		return nil, err
	}

	msg := &requestMessage{
		id:     uuid.NewString(),
		method: method,
		params: raw,
		resp:   make(chan callResult, 1),
	}

	select {
	case c.reqCh <- taskMessage{req: msg}:
	case <-c.done:
		return nil, apierr.ErrClientClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	timer := time.NewTimer(c.cfg.WS.CallTimeout)
	defer timer.Stop()

	select {
	case res := <-msg.resp:
		if res.err != nil {
			log.Debug().Str("id", msg.id).Str("method", method).Err(res.err).Msg("websocket call failed")
		}
		return res.result, res.err
	case <-c.done:
		// The supervisor terminated. It resolves every slot it ever
		// saw before exiting, so check for a delivered result first.
		select {
		case res := <-msg.resp:
			return res.result, res.err
		default:
			return nil, apierr.ErrClientClosed
		}
	case <-timer.C:
		log.Warn().Str("id", msg.id).Str("method", method).Msg("websocket call timed out")
		return nil, apierr.ErrRequestTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// normalizeParams serializes params once on the caller's side. Nil,
// null, and empty-object params collapse to nil so the params field is
// omitted from the envelope entirely.
func normalizeParams(params any) (json.RawMessage, error) {
	if params == nil {
		return nil, nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize parameters: %w", err)
	}
	if s := string(data); s == "null" || s == "{}" {
		return nil, nil
	}
	return data, nil
}

// Close performs a graceful shutdown: it asks the supervisor to run
// the close handshake, waits for completion under the configured outer
// timeout, and cancels the supervisor as a last resort if it does not
// respond. Calling Close twice is safe; the second call is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	defer c.cancel()

	compl := make(chan error, 1)
	select {
	case c.reqCh <- taskMessage{shutdown: compl}:
	case <-c.done:
		// Supervisor already terminated (Failed or forced stop).
		return nil
	}

	timer := time.NewTimer(c.cfg.WS.ShutdownTimeout)
	defer timer.Stop()

	select {
	case err := <-compl:
		return err
	case <-c.done:
		return nil
	case <-timer.C:
		log.Error().Msg("shutdown timed out, forcing supervisor stop")
		return apierr.ErrShutdownTimeout
	}
}
