package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/afero"
)

// fakeTimer срабатывает сразу и запоминает запрошенные паузы.
type fakeTimer struct {
	waits []time.Duration
	c     chan time.Time
}

func (f *fakeTimer) Start(d time.Duration) {
	f.waits = append(f.waits, d)
	f.c = make(chan time.Time, 1)
	f.c <- time.Now()
}

func (f *fakeTimer) Stop() {}

func (f *fakeTimer) C() <-chan time.Time { return f.c }

// testEnv — клиент, направленный на httptest-сервер.
type testEnv struct {
	client *Client
	server *httptest.Server
	timer  *fakeTimer
	diag   *bytes.Buffer
	fs     afero.Fs
}

func newTestEnv(t *testing.T, handler http.HandlerFunc) *testEnv {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	env := &testEnv{
		server: server,
		timer:  &fakeTimer{},
		diag:   &bytes.Buffer{},
		fs:     afero.NewMemMapFs(),
	}

	client, err := NewClient(Config{
		Token:   "test-token",
		BaseURL: server.URL,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Diag:    env.diag,
		FS:      env.fs,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.newTimer = func() backoff.Timer { return env.timer }
	env.client = client

	return env
}

// writeJSON отвечает JSON-телом с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestClient_Headers(t *testing.T) {
	var got http.Header

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, `{"object":"user"}`)
	})

	if _, err := env.client.Get(context.Background(), "/v1/users/me", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Get("Authorization") != "Bearer test-token" {
		t.Errorf("expected bearer token, got %q", got.Get("Authorization"))
	}
	if got.Get("Notion-Version") != "2025-09-03" {
		t.Errorf("expected Notion-Version 2025-09-03, got %q", got.Get("Notion-Version"))
	}
	if got.Get("Content-Type") != "application/json" {
		t.Errorf("expected application/json, got %q", got.Get("Content-Type"))
	}
}

func TestClient_Get(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v1/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page_size") != "10" {
			t.Errorf("expected page_size=10, got %q", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, `{"object":"list","results":[]}`)
	})

	result, err := env.client.Get(context.Background(), "/v1/users", map[string][]string{"page_size": {"10"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["object"] != "list" {
		t.Errorf("expected object=list, got %v", result["object"])
	}
}

func TestClient_PostWithBody(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["query"] != "roadmap" {
			t.Errorf("expected query=roadmap, got %v", body["query"])
		}
		writeJSON(w, http.StatusOK, `{"object":"list"}`)
	})

	_, err := env.client.Post(context.Background(), "/v1/search", map[string]any{"query": "roadmap"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_PostWithoutBody(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if len(data) != 0 {
			t.Errorf("expected empty body, got %q", data)
		}
		writeJSON(w, http.StatusOK, `{"id":"fu-1","status":"uploaded"}`)
	})

	result, err := env.client.Post(context.Background(), "/v1/file_uploads/fu-1/complete", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["status"] != "uploaded" {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestClient_PatchAndDelete(t *testing.T) {
	var methods []string

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		writeJSON(w, http.StatusOK, `{"object":"block"}`)
	})

	ctx := context.Background()
	if _, err := env.client.Patch(ctx, "/v1/blocks/b1", map[string]any{"archived": true}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if _, err := env.client.Delete(ctx, "/v1/blocks/b1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if strings.Join(methods, ",") != "PATCH,DELETE" {
		t.Errorf("unexpected methods: %v", methods)
	}
}

func TestClient_APIError(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find page"}`)
	})

	_, err := env.client.Get(context.Background(), "/v1/pages/missing", nil)

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Code != "object_not_found" {
		t.Errorf("expected object_not_found, got %s", apiErr.Code)
	}

	want := "Notion API error (404 Not Found): [object_not_found] Could not find page"
	if err.Error() != want {
		t.Errorf("unexpected error text:\n got: %s\nwant: %s", err.Error(), want)
	}
}

func TestClient_APIError_Unauthorized(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"code":"unauthorized","message":"API token is invalid."}`)
	})

	_, err := env.client.Get(context.Background(), "/v1/users/me", nil)

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 401 || apiErr.Message != "API token is invalid." {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if errors.Is(err, ErrRateLimitExceeded) {
		t.Error("401 must not match ErrRateLimitExceeded")
	}
}

func TestClient_APIError_MissingFields(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{}`)
	})

	_, err := env.client.Post(context.Background(), "/v1/pages", map[string]any{})

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != "unknown" {
		t.Errorf("expected code=unknown, got %s", apiErr.Code)
	}
	if apiErr.Message != "Unknown error" {
		t.Errorf("expected 'Unknown error', got %s", apiErr.Message)
	}
}

func TestClient_ResponseNotJSON(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := env.client.Get(context.Background(), "/v1/users/me", nil)

	if !errors.Is(err, ErrResponseParse) {
		t.Fatalf("expected ErrResponseParse, got %v", err)
	}
	if _, ok := IsAPIError(err); ok {
		t.Error("parse error must not be an *APIError")
	}
}

func TestClient_SuccessNotObject(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[1,2,3]`)
	})

	_, err := env.client.Get(context.Background(), "/v1/users", nil)
	if !errors.Is(err, ErrResponseParse) {
		t.Fatalf("expected ErrResponseParse, got %v", err)
	}
}

func TestClient_NetworkError(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {})
	env.server.Close()

	_, err := env.client.Get(context.Background(), "/v1/users/me", nil)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestNewClient_InvalidToken(t *testing.T) {
	_, err := NewClient(Config{Token: "bad\ntoken"})
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{Token: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("expected %s, got %s", DefaultBaseURL, client.BaseURL())
	}
	if client.DryRun() {
		t.Error("dry-run must be off by default")
	}

	client.SetDryRun(true)
	if !client.DryRun() {
		t.Error("SetDryRun(true) did not enable dry-run")
	}
}

// Dry-run

func TestClient_DryRun_SkipsMutations(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusOK, `{}`)
	})
	env.client.SetDryRun(true)

	ctx := context.Background()
	result, err := env.client.Post(ctx, "/v1/pages", map[string]any{"properties": map[string]any{}})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, err := env.client.Patch(ctx, "/v1/blocks/b1", map[string]any{"archived": true}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if _, err := env.client.Delete(ctx, "/v1/blocks/b1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if hits != 0 {
		t.Errorf("expected no requests in dry-run, got %d", hits)
	}
	if result["dry_run"] != true || result["method"] != "POST" || result["path"] != "/v1/pages" {
		t.Errorf("unexpected dry-run result: %v", result)
	}

	diag := env.diag.String()
	for _, want := range []string{
		"[dry-run] POST " + env.server.URL + "/v1/pages",
		"[dry-run] Body: {",
		"[dry-run] PATCH " + env.server.URL + "/v1/blocks/b1",
		"[dry-run] DELETE " + env.server.URL + "/v1/blocks/b1",
	} {
		if !strings.Contains(diag, want) {
			t.Errorf("preview should contain %q, got:\n%s", want, diag)
		}
	}
}

func TestClient_DryRun_GetStillSent(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusOK, `{"object":"user"}`)
	})
	env.client.SetDryRun(true)

	result, err := env.client.Get(context.Background(), "/v1/users/me", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 1 {
		t.Errorf("GET must be sent in dry-run, got %d requests", hits)
	}
	if result["object"] != "user" {
		t.Errorf("unexpected result: %v", result)
	}
}
