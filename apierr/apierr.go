// Package apierr defines the error taxonomy shared by the REST and
// WebSocket clients: structured API errors returned by the exchange and
// sentinel errors for transport-level failures.
package apierr

import (
	"errors"
	"fmt"
)

// Transport-level sentinel errors. Callers match them with errors.Is.
var (
	// ErrConnectionLost is delivered to every pending request when an
	// established session drops before its response arrives.
	ErrConnectionLost = errors.New("websocket connection lost")

	// ErrConnectionClosed is delivered to pending requests drained during
	// a graceful shutdown.
	ErrConnectionClosed = errors.New("connection closed during shutdown")

	// ErrConnectionFailed means the supervisor gave up connecting after
	// exhausting its reconnect attempts.
	ErrConnectionFailed = errors.New("connection failed permanently")

	// ErrClientClosed is returned by calls made after Close.
	ErrClientClosed = errors.New("websocket client not initialized")

	// ErrRequestTimeout is the caller-side per-call timeout. The request
	// may still resolve inside the supervisor; the outcome is unknown,
	// not necessarily failed.
	ErrRequestTimeout = errors.New("websocket request timeout")

	// ErrCloseAckTimeout means the server never acknowledged our close
	// frame within the configured wait.
	ErrCloseAckTimeout = errors.New("close acknowledgment timeout")

	// ErrShutdownTimeout means the supervisor did not complete the close
	// handshake within the outer shutdown timeout.
	ErrShutdownTimeout = errors.New("shutdown timeout")

	// ErrNoAuth is returned when a signed call is attempted without a
	// configured signer.
	ErrNoAuth = errors.New("no authentication configured")
)

// Category buckets the exchange's error codes into coarse classes.
type Category int

const (
	CategoryUnknown Category = iota
	// CategoryServerOrNetwork covers the 10xx range (server side or
	// connectivity issues).
	CategoryServerOrNetwork
	// CategoryRequestIssues covers the 11xx range (malformed or rejected
	// request content).
	CategoryRequestIssues
	// CategoryTrading covers the 20xx range (order placement and account
	// level rejections).
	CategoryTrading
)

func (c Category) String() string {
	switch c {
	case CategoryServerOrNetwork:
		return "server_or_network"
	case CategoryRequestIssues:
		return "request_issues"
	case CategoryTrading:
		return "trading"
	default:
		return "unknown"
	}
}

// CategoryFromCode maps an exchange error code to its Category.
func CategoryFromCode(code int) Category {
	switch {
	case code <= -1000 && code > -1100:
		return CategoryServerOrNetwork
	case code <= -1100 && code > -1200:
		return CategoryRequestIssues
	case code <= -2000 && code > -2100:
		return CategoryTrading
	default:
		return CategoryUnknown
	}
}

// APIError is the structured {code, msg} error body returned by the
// exchange for a specific request, over either transport.
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// NewAPIError builds an APIError from a wire code and message.
func NewAPIError(code int, msg string) *APIError {
	return &APIError{Code: code, Msg: msg}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance api error %d: %s", e.Code, e.Msg)
}

// Category returns the coarse class of this error's code.
func (e *APIError) Category() Category {
	return CategoryFromCode(e.Code)
}

// IsAuthError reports whether the code indicates a credential or
// signature problem rather than a malformed request.
func (e *APIError) IsAuthError() bool {
	switch e.Code {
	case -1002, -1021, -1022, -2014, -2015:
		return true
	}
	return false
}

// InvalidParameter describes a request specification field that failed
// client-side validation before anything was sent.
type InvalidParameter struct {
	Name   string
	Reason string
}

func (e *InvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Reason)
}

// EmptyParameter reports a required field that was left empty.
func EmptyParameter(name string) *InvalidParameter {
	return &InvalidParameter{Name: name, Reason: "must not be empty"}
}

// ParameterRange reports a field outside its allowed range.
func ParameterRange(name string, min, max int) *InvalidParameter {
	return &InvalidParameter{Name: name, Reason: fmt.Sprintf("must be between %d and %d", min, max)}
}
