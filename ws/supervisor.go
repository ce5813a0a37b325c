package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jpillora/backoff"
	"github.com/rs/zerolog/log"

	"github.com/tradewire/binance-spot/apierr"
)

// pongWriteWait bounds the control-frame write when answering a ping.
const pongWriteWait = 5 * time.Second

// inboundFrame is one text frame or the terminal read error of a
// session, produced by the per-session read goroutine.
type inboundFrame struct {
	data []byte
	err  error
}

// run is the supervisor: the only goroutine that touches the socket
// and the correlation table, so neither needs a lock. It cycles
// through establish/serve until shutdown, permanent failure, or
// forced cancellation.
func (c *Client) run(ctx context.Context) {
	cause := apierr.ErrClientClosed
	defer func() {
		c.drainQueue(cause)
		close(c.done)
	}()

	bo := &backoff.Backoff{
		Min:    c.cfg.WS.InitialRetryDelay,
		Max:    c.cfg.WS.MaxRetryDelay,
		Factor: 2,
	}
	attempts := 0

	for {
		conn := c.establish(ctx, bo, &attempts)
		if conn == nil {
			if c.status.get().State == Failed {
				cause = apierr.ErrConnectionFailed
			}
			return
		}
		if shutdown := c.serve(ctx, conn); shutdown {
			return
		}
		// Session lost: short fixed pause, then a fresh establishment
		// cycle. The backoff attempt counter was reset on connect, so
		// the next cycle starts over at Connecting.
		select {
		case <-time.After(c.cfg.WS.InitialRetryDelay):
		case <-ctx.Done():
			c.status.set(Status{State: Disconnected})
			return
		}
	}
}

// establish opens the socket, retrying with exponential backoff. The
// attempt counter persists across calls and resets to zero only on a
// successful connect; the ceiling applies to establishment failures,
// never to losses of an already-established session. Returns nil once
// attempts are exhausted (status Failed) or the context is cancelled.
func (c *Client) establish(ctx context.Context, bo *backoff.Backoff, attempts *int) *websocket.Conn {
	dialer := &websocket.Dialer{HandshakeTimeout: c.cfg.WS.ConnectionTimeout}

	for {
		if *attempts == 0 {
			c.status.set(Status{State: Connecting})
		} else {
			c.status.set(Status{State: Reconnecting, Attempt: *attempts})
		}
		log.Info().
			Int("attempt", *attempts).
			Str("url", c.cfg.WS.URL).
			Dur("timeout", c.cfg.WS.ConnectionTimeout).
			Msg("starting websocket connection attempt")

		dialCtx, cancel := context.WithTimeout(ctx, c.cfg.WS.ConnectionTimeout)
		conn, resp, err := dialer.DialContext(dialCtx, c.cfg.WS.URL, nil)
		cancel()

		if err == nil {
			*attempts = 0
			c.status.set(Status{State: Connected})
			ev := log.Info()
			if resp != nil {
				ev = ev.Int("handshake_status", resp.StatusCode)
			}
			ev.Msg("websocket connection established")
			return conn
		}
		if ctx.Err() != nil {
			c.status.set(Status{State: Disconnected})
			return nil
		}

		*attempts++
		if *attempts >= c.cfg.WS.MaxReconnectAttempts {
			log.Error().
				Int("max_attempts", c.cfg.WS.MaxReconnectAttempts).
				Err(err).
				Msg("max reconnection attempts reached, giving up")
			c.status.set(Status{State: Failed})
			return nil
		}

		delay := bo.ForAttempt(float64(*attempts - 1))
		log.Warn().
			Int("attempt", *attempts).
			Dur("retry_delay", delay).
			Err(err).
			Msg("websocket connection failed, retrying")
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			c.status.set(Status{State: Disconnected})
			return nil
		}
	}
}

// serve multiplexes one session: a fair select over the outbound
// message queue and the inbound frame channel fed by the session's
// read goroutine. Returns true when the session ended by shutdown or
// forced stop, false on connection loss.
func (c *Client) serve(ctx context.Context, conn *websocket.Conn) bool {
	pending := make(map[string]chan callResult)
	frames := make(chan inboundFrame, 8)

	conn.SetPingHandler(func(appData string) error {
		// Answer on the same socket with the same payload. WriteControl
		// may be called from the read goroutine concurrently with the
		// supervisor's writes. An error here surfaces as the read
		// loop's terminal error, ending the session.
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(pongWriteWait))
		if err != nil {
			log.Error().Err(err).Msg("failed to send pong")
		}
		return err
	})

	go readLoop(conn, frames)

	for {
		select {
		case msg := <-c.reqCh:
			if msg.shutdown != nil {
				c.handleShutdown(conn, frames, pending, msg.shutdown)
				return true
			}
			if !c.writeRequest(conn, msg.req, pending) {
				c.teardown(conn, frames, pending, apierr.ErrConnectionLost)
				return false
			}
		case fr, ok := <-frames:
			if !ok || fr.err != nil {
				if ok {
					log.Warn().Err(fr.err).Msg("websocket session ended")
				}
				c.teardown(conn, frames, pending, apierr.ErrConnectionLost)
				return false
			}
			dispatch(fr.data, pending)
		case <-ctx.Done():
			c.teardown(conn, frames, pending, apierr.ErrConnectionClosed)
			return true
		}
	}
}

// readLoop feeds inbound text frames to the supervisor and closes the
// channel after delivering the terminal read error. Control frames are
// handled by the connection's handlers; binary frames carry nothing
// for the request channel.
func readLoop(conn *websocket.Conn, frames chan<- inboundFrame) {
	defer close(frames)
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			frames <- inboundFrame{err: err}
			return
		}
		if messageType == websocket.TextMessage {
			frames <- inboundFrame{data: data}
		}
	}
}

// writeRequest serializes one request onto the socket and registers
// its response slot in the correlation table. Returns false when the
// write failed and the session must end; the caller has already been
// given its error in that case.
func (c *Client) writeRequest(conn *websocket.Conn, req *requestMessage, pending map[string]chan callResult) bool {
	data, err := json.Marshal(wireRequest{ID: req.id, Method: req.method, Params: req.params})
	if err != nil {
		req.resp <- callResult{err: fmt.Errorf("failed to serialize request: %w", err)}
		return true
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		req.resp <- callResult{err: fmt.Errorf("failed to send websocket message: %w", err)}
		return false
	}
	pending[req.id] = req.resp

	if len(pending) > 100 {
		log.Warn().Int("pending", len(pending)).Msg("high pending request count")
	}
	log.Debug().
		Str("id", req.id).
		Str("method", req.method).
		Int("pending", len(pending)).
		Msg("request dispatched")
	return true
}

// dispatch correlates one inbound frame to its pending request and
// delivers the terminal outcome. Unparseable frames and unknown ids
// are logged and discarded; neither is fatal to the connection.
func dispatch(data []byte, pending map[string]chan callResult) {
	resp, err := decodeResponse(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse websocket response")
		return
	}
	if resp.ID == "" {
		log.Warn().Msg("received websocket message without id")
		return
	}
	slot, ok := pending[resp.ID]
	if !ok {
		log.Warn().Str("id", resp.ID).Msg("no pending request for response id")
		return
	}
	delete(pending, resp.ID)

	result, rerr := resp.result()
	slot <- callResult{result: result, err: rerr}
}

// handleShutdown runs the close handshake: publish Disconnected, send
// a close frame, keep correlating late responses until the server
// acknowledges or the bound elapses, then drain whatever is left and
// report the outcome on the completion slot.
func (c *Client) handleShutdown(conn *websocket.Conn, frames chan inboundFrame, pending map[string]chan callResult, compl chan error) {
	c.status.set(Status{State: Disconnected})

	closeFrame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteMessage(websocket.CloseMessage, closeFrame); err != nil {
		c.teardown(conn, frames, pending, apierr.ErrConnectionClosed)
		compl <- fmt.Errorf("failed to send close frame: %w", err)
		return
	}

	timer := time.NewTimer(c.cfg.WS.CloseAckTimeout)
	defer timer.Stop()

	acked := false
wait:
	for {
		select {
		case fr, ok := <-frames:
			if !ok || fr.err != nil {
				// The read loop terminates on the close acknowledgment
				// (or any other session end, which equally finishes the
				// handshake from our side).
				acked = true
				break wait
			}
			dispatch(fr.data, pending)
		case <-timer.C:
			break wait
		}
	}

	c.teardown(conn, frames, pending, apierr.ErrConnectionClosed)
	if acked {
		compl <- nil
	} else {
		compl <- apierr.ErrCloseAckTimeout
	}
}

// teardown ends one session: closes the socket, lets the read
// goroutine finish, and resolves every correlation table entry with
// the given error so no slot is ever left dangling into the next
// session.
func (c *Client) teardown(conn *websocket.Conn, frames chan inboundFrame, pending map[string]chan callResult, cause error) {
	conn.Close()
	for range frames {
	}
	if len(pending) > 0 {
		log.Info().Int("pending", len(pending)).Err(cause).Msg("resolving pending requests")
	}
	for id, slot := range pending {
		delete(pending, id)
		slot <- callResult{err: cause}
	}
}

// drainQueue resolves any requests still sitting in the outbound
// queue after the supervisor has terminated, so their callers fail
// fast instead of waiting out their timeouts.
func (c *Client) drainQueue(cause error) {
	for {
		select {
		case msg := <-c.reqCh:
			if msg.req != nil {
				msg.req.resp <- callResult{err: cause}
			}
			if msg.shutdown != nil {
				msg.shutdown <- nil
			}
		default:
			return
		}
	}
}
