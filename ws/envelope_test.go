package ws

import (
	"errors"
	"strings"
	"testing"

	"github.com/tradewire/binance-spot/apierr"
)

func TestDecodeResponseSuccess(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"id":"abc","status":200,"result":{"serverTime":1700000000000}}`))
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	raw, err := resp.result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if !strings.Contains(string(raw), "serverTime") {
		t.Errorf("unexpected result payload %s", raw)
	}
}

func TestDecodeResponseAPIError(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"id":"abc","status":400,"error":{"code":-1121,"msg":"Invalid symbol."}}`))
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	_, err = resp.result()
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("result err = %v, want APIError", err)
	}
	if apiErr.Code != -1121 || apiErr.Msg != "Invalid symbol." {
		t.Errorf("got %+v", apiErr)
	}
	if apiErr.Category() != apierr.CategoryRequestIssues {
		t.Errorf("category = %v, want request issues", apiErr.Category())
	}
}

func TestDecodeResponseStatusWithoutError(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"id":"abc","status":418}`))
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if _, err := resp.result(); err == nil || !strings.Contains(err.Error(), "418") {
		t.Errorf("result err = %v, want status error mentioning 418", err)
	}
}

func TestDecodeResponseMissingResult(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"id":"abc","status":200}`))
	if err != nil {
		t.Fatalf("decodeResponse: %v", err)
	}
	if _, err := resp.result(); err == nil {
		t.Error("result succeeded without a result field")
	}
}

func TestDecodeResponseMalformed(t *testing.T) {
	if _, err := decodeResponse([]byte(`{"id":`)); err == nil {
		t.Error("decodeResponse accepted truncated JSON")
	}
}

func TestNormalizeParams(t *testing.T) {
	tests := []struct {
		name   string
		params any
		empty  bool
	}{
		{"nil", nil, true},
		{"empty map", map[string]string{}, true},
		{"empty struct", struct{}{}, true},
		{"populated", map[string]string{"symbol": "BTCUSDT"}, false},
	}
	for _, tt := range tests {
		raw, err := normalizeParams(tt.params)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got := raw == nil; got != tt.empty {
			t.Errorf("%s: empty = %v, want %v (raw %s)", tt.name, got, tt.empty, raw)
		}
	}
}
