package ws

import (
	"encoding/json"
	"fmt"

	"github.com/tradewire/binance-spot/apierr"
)

// wireRequest is the outbound JSON envelope. Params is omitted
// entirely when nil so empty requests stay `{"id":..,"method":..}`.
type wireRequest struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// wireError is the structured error object inside a failed response.
type wireError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// wireResponse is the inbound JSON envelope. The ID is the sole
// correlation key back to the request that produced it.
type wireResponse struct {
	ID     string          `json:"id"`
	Status *int            `json:"status"`
	Result json.RawMessage `json:"result"`
	Error  *wireError      `json:"error"`
}

func decodeResponse(data []byte) (*wireResponse, error) {
	resp := &wireResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("failed to parse response envelope: %w", err)
	}
	return resp, nil
}

// result extracts the terminal outcome of the envelope: the raw result
// on success, a typed API error when the server returned {code,msg},
// and a plain error for a non-200 status without an error object.
func (r *wireResponse) result() (json.RawMessage, error) {
	if r.Error != nil {
		return nil, apierr.NewAPIError(r.Error.Code, r.Error.Msg)
	}
	if r.Status != nil && *r.Status != 200 {
		return nil, fmt.Errorf("websocket status error: %d", *r.Status)
	}
	if len(r.Result) == 0 {
		return nil, fmt.Errorf("missing result field in response")
	}
	return r.Result, nil
}
