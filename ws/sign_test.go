package ws

import (
	"errors"
	"testing"

	"github.com/tradewire/binance-spot/apierr"
	"github.com/tradewire/binance-spot/auth"
	"github.com/tradewire/binance-spot/config"
)

func TestSignParamsStampsAuthFields(t *testing.T) {
	cfg := config.Default()
	c := &Client{cfg: cfg, signer: auth.NewHMACSigner("test-key", "test-secret")}

	params, err := c.signParams(map[string]string{"symbol": "BTCUSDT", "side": "SELL"})
	if err != nil {
		t.Fatalf("signParams: %v", err)
	}

	for _, key := range []string{"symbol", "side", "apiKey", "timestamp", "recvWindow", "signature"} {
		if _, ok := params[key]; !ok {
			t.Errorf("signed params missing %q", key)
		}
	}
	if params["apiKey"] != "test-key" {
		t.Errorf("apiKey = %v", params["apiKey"])
	}
	if params["symbol"] != "BTCUSDT" {
		t.Errorf("symbol = %v", params["symbol"])
	}
	sig, ok := params["signature"].(string)
	if !ok || len(sig) != 64 {
		t.Errorf("signature = %v, want 64 hex chars", params["signature"])
	}
}

func TestSignParamsRecvWindowFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.RecvWindow = 10000
	c := &Client{cfg: cfg, signer: auth.NewHMACSigner("k", "s")}

	params, err := c.signParams(nil)
	if err != nil {
		t.Fatalf("signParams: %v", err)
	}
	if params["recvWindow"] != "10000" {
		t.Errorf("recvWindow = %v, want 10000", params["recvWindow"])
	}
}

func TestSignParamsWithoutSigner(t *testing.T) {
	c := &Client{cfg: config.Default()}
	if _, err := c.signParams(nil); !errors.Is(err, apierr.ErrNoAuth) {
		t.Errorf("signParams = %v, want ErrNoAuth", err)
	}
}
