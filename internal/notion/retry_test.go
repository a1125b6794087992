package notion

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRetry_429ThenSuccess(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			writeJSON(w, http.StatusTooManyRequests, `{"code":"rate_limited","message":"slow down"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"object":"user","id":"u1"}`)
	})

	result, err := env.client.Get(context.Background(), "/v1/users/me", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 2 {
		t.Errorf("expected 2 requests, got %d", hits)
	}
	if result["id"] != "u1" {
		t.Errorf("unexpected result: %v", result)
	}
	if len(env.timer.waits) != 1 || env.timer.waits[0] != 500*time.Millisecond {
		t.Errorf("expected single 500ms wait, got %v", env.timer.waits)
	}
}

func TestRetry_ExhaustedAfterThreeRetries(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusTooManyRequests, `{"code":"rate_limited","message":"Rate limited"}`)
	})

	_, err := env.client.Post(context.Background(), "/v1/search", map[string]any{"query": "x"})

	if hits != 4 {
		t.Errorf("expected 4 requests (1 + 3 retries), got %d", hits)
	}
	if !errors.Is(err, ErrRateLimitExceeded) {
		t.Fatalf("expected ErrRateLimitExceeded, got %v", err)
	}
	apiErr, ok := IsAPIError(err)
	if !ok || apiErr.Code != "rate_limited" {
		t.Errorf("expected rate_limited APIError, got %v", err)
	}

	// Паузы удваиваются: 500ms, 1s, 2s
	want := []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second}
	if len(env.timer.waits) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), env.timer.waits)
	}
	for i, d := range want {
		if env.timer.waits[i] != d {
			t.Errorf("wait %d: expected %v, got %v", i, d, env.timer.waits[i])
		}
	}
}

func TestRetry_RetryAfterHeader(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		switch hits {
		case 1:
			w.Header().Set("Retry-After", "0")
			writeJSON(w, http.StatusTooManyRequests, `{}`)
		case 2:
			w.Header().Set("Retry-After", "7")
			writeJSON(w, http.StatusTooManyRequests, `{}`)
		case 3:
			// Без заголовка — экспоненциальная пауза по номеру попытки
			writeJSON(w, http.StatusTooManyRequests, `{}`)
		default:
			writeJSON(w, http.StatusOK, `{"ok":true}`)
		}
	})

	if _, err := env.client.Get(context.Background(), "/v1/users", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []time.Duration{0, 7 * time.Second, 2 * time.Second}
	if len(env.timer.waits) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), env.timer.waits)
	}
	for i, d := range want {
		if env.timer.waits[i] != d {
			t.Errorf("wait %d: expected %v, got %v", i, d, env.timer.waits[i])
		}
	}
}

func TestRetry_NoRetryOnServerError(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusInternalServerError, `{"code":"internal_server_error","message":"boom"}`)
	})

	_, err := env.client.Get(context.Background(), "/v1/users/me", nil)

	if hits != 1 {
		t.Errorf("5xx must not be retried, got %d requests", hits)
	}
	apiErr, ok := IsAPIError(err)
	if !ok || apiErr.StatusCode != 500 {
		t.Errorf("expected 500 APIError, got %v", err)
	}
	if len(env.timer.waits) != 0 {
		t.Errorf("expected no waits, got %v", env.timer.waits)
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		cancel()
		writeJSON(w, http.StatusTooManyRequests, `{}`)
	})

	_, err := env.client.Get(ctx, "/v1/users/me", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if hits > 1 {
		t.Errorf("expected no retries after cancel, got %d requests", hits)
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"0", 0},
		{"3", 3 * time.Second},
		{"", noRetryAfter},
		{"-1", noRetryAfter},
		{"1.5", noRetryAfter},
		{"Wed, 21 Oct 2015 07:28:00 GMT", noRetryAfter},
	}

	for _, tt := range tests {
		if got := parseRetryAfter(tt.in); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
