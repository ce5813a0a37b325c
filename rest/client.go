// Package rest is the stateless REST transport: serialize a request
// specification into query parameters, perform the HTTP call, and
// decode the JSON response or the exchange's {code,msg} error body.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/auth"
	"github.com/tradewire/binance-spot/config"
)

// Client is the REST transport. It is stateless apart from the
// underlying connection pool and safe for concurrent use.
type Client struct {
	cfg    *config.Config
	signer auth.Signer
	hc     *http.Client
}

// New builds a REST client. A nil signer is valid for public-only use.
func New(cfg *config.Config, signer auth.Signer) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.Rest.ConnectTimeout,
		}).DialContext,
		MaxIdleConnsPerHost:   cfg.Rest.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.Rest.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.Rest.ConnectTimeout,
		ResponseHeaderTimeout: cfg.Rest.RequestTimeout,
	}
	return &Client{
		cfg:    cfg,
		signer: signer,
		hc: &http.Client{
			Transport: transport,
			Timeout:   cfg.Rest.RequestTimeout,
		},
	}
}

// do runs one request: flatten the spec into query values, sign when
// requested, call, and return the raw JSON body.
func (c *Client) do(ctx context.Context, httpMethod, endpoint string, params any, signed bool) (json.RawMessage, error) {
	start := time.Now()

	values, err := auth.Flatten(params)
	if err != nil {
		return nil, err
	}
	if signed {
		if c.signer == nil {
			return nil, apierr.ErrNoAuth
		}
		recvWindow := int64(5000)
		if c.cfg.Auth != nil && c.cfg.Auth.RecvWindow > 0 {
			recvWindow = c.cfg.Auth.RecvWindow
		}
		values, _, err = auth.SignQuery(values, c.signer, recvWindow, false)
		if err != nil {
			return nil, err
		}
	}

	u, err := url.Parse(c.cfg.Rest.BaseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint url: %w", err)
	}
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, httpMethod, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.Rest.UserAgent)
	if signed {
		req.Header.Set("X-MBX-APIKEY", c.signer.APIKey())
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Debug().
		Str("method", httpMethod).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("rest request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &apierr.APIError{}
		if json.Unmarshal(body, apiErr) == nil && apiErr.Code != 0 {
			return nil, apiErr
		}
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

// request runs do and decodes the result into out, validating the
// spec first. A nil out discards the body.
func (c *Client) request(ctx context.Context, httpMethod, endpoint string, spec any, out any, signed bool) error {
	if v, ok := spec.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	body, err := c.do(ctx, httpMethod, endpoint, spec, signed)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
