package ws

import (
	"strings"

	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/auth"
)

// signParams folds authentication into the outgoing parameters: the
// spec's fields are flattened into query values, stamped with
// apiKey/timestamp/recvWindow, signed over the sorted canonical
// payload, and returned as the final params object. The values in the
// sent object are the same URL-encoded strings that were signed, so
// signature verification on the server sees identical bytes.
func (c *Client) signParams(params any) (map[string]any, error) {
	if c.signer == nil {
		return nil, apierr.ErrNoAuth
	}

	values, err := auth.Flatten(params)
	if err != nil {
		return nil, err
	}

	recvWindow := int64(5000)
	if c.cfg.Auth != nil && c.cfg.Auth.RecvWindow > 0 {
		recvWindow = c.cfg.Auth.RecvWindow
	}

	_, payload, err := auth.SignQuery(values, c.signer, recvWindow, true)
	if err != nil {
		return nil, err
	}

	final := make(map[string]any, len(values))
	for _, pair := range strings.Split(payload, "&") {
		if key, val, ok := strings.Cut(pair, "="); ok {
			final[key] = val
		}
	}
	final["signature"] = values.Get("signature")
	return final, nil
}
