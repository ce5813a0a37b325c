package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WS == nil || cfg.Rest == nil || cfg.Auth == nil {
		t.Fatalf("default config has nil sections: %+v", cfg)
	}
	if cfg.WS.URL != defaultWSURL {
		t.Errorf("ws url = %q", cfg.WS.URL)
	}
	if cfg.WS.MaxReconnectAttempts != 5 {
		t.Errorf("max_reconnect_attempts = %d", cfg.WS.MaxReconnectAttempts)
	}
	if cfg.WS.InitialRetryDelay != time.Second {
		t.Errorf("initial_retry_delay = %v", cfg.WS.InitialRetryDelay)
	}
	if cfg.WS.CallTimeout != 30*time.Second {
		t.Errorf("call_timeout = %v", cfg.WS.CallTimeout)
	}
	if cfg.Rest.BaseURL != defaultRestURL {
		t.Errorf("rest base_url = %q", cfg.Rest.BaseURL)
	}
	if cfg.Auth.RecvWindow != 5000 {
		t.Errorf("recv_window = %d", cfg.Auth.RecvWindow)
	}
	if cfg.Auth.APIKey != "" {
		t.Errorf("api_key = %q, want unauthenticated default", cfg.Auth.APIKey)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
ws:
  url: wss://testnet.binance.vision/ws-api/v3
  max_reconnect_attempts: 3
  call_timeout: 5s
auth:
  api_key: file-key
  recv_window: 10000
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WS.URL != "wss://testnet.binance.vision/ws-api/v3" {
		t.Errorf("ws url = %q", cfg.WS.URL)
	}
	if cfg.WS.MaxReconnectAttempts != 3 {
		t.Errorf("max_reconnect_attempts = %d", cfg.WS.MaxReconnectAttempts)
	}
	if cfg.WS.CallTimeout != 5*time.Second {
		t.Errorf("call_timeout = %v", cfg.WS.CallTimeout)
	}
	if cfg.Auth.APIKey != "file-key" {
		t.Errorf("api_key = %q", cfg.Auth.APIKey)
	}
	if cfg.Auth.RecvWindow != 10000 {
		t.Errorf("recv_window = %d", cfg.Auth.RecvWindow)
	}
	// Untouched keys keep their defaults.
	if cfg.WS.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown_timeout = %v", cfg.WS.ShutdownTimeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BINANCE_AUTH_API_KEY", "env-key")
	t.Setenv("BINANCE_WS_MAX_RECONNECT_ATTEMPTS", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("api_key = %q, want env override", cfg.Auth.APIKey)
	}
	if cfg.WS.MaxReconnectAttempts != 7 {
		t.Errorf("max_reconnect_attempts = %d, want env override", cfg.WS.MaxReconnectAttempts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}
