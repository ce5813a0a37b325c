// Package auth provides request signing for authenticated API calls.
// A Signer produces a signature over the canonical, alphabetically
// sorted query payload; the same payload format is shared by the REST
// and WebSocket transports.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer signs canonical request payloads and identifies the API key
// the signature belongs to.
type Signer interface {
	// Sign returns the signature for the given canonical payload.
	Sign(payload string) (string, error)
	// APIKey returns the key sent alongside signed requests.
	APIKey() string
}

// HMACSigner signs payloads with HMAC-SHA256, hex encoded.
type HMACSigner struct {
	apiKey string
	secret []byte
}

// NewHMACSigner builds a signer from an API key and its secret.
func NewHMACSigner(apiKey, secret string) *HMACSigner {
	return &HMACSigner{apiKey: apiKey, secret: []byte(secret)}
}

// Sign implements Signer.
func (s *HMACSigner) Sign(payload string) (string, error) {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// APIKey implements Signer.
func (s *HMACSigner) APIKey() string {
	return s.apiKey
}
