package ws

import (
	"testing"
	"time"

	"github.com/jpillora/backoff"
)

func TestRetryDelaySchedule(t *testing.T) {
	// The delay before attempt k (k >= 1) is min(initial*2^(k-1), max).
	bo := &backoff.Backoff{
		Min:    time.Second,
		Max:    8 * time.Second,
		Factor: 2,
	}
	want := []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		8 * time.Second,
		8 * time.Second,
	}
	for k, expected := range want {
		if got := bo.ForAttempt(float64(k)); got != expected {
			t.Errorf("delay for attempt %d = %v, want %v", k+1, got, expected)
		}
	}
}
