package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestUploadFile_CreateSendComplete(t *testing.T) {
	var order []string

	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		order = append(order, r.Method+" "+r.URL.Path)

		switch r.URL.Path {
		case "/v1/file_uploads":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["mode"] != "single_part" || body["filename"] != "report.pdf" {
				t.Errorf("unexpected create body: %v", body)
			}
			if _, ok := body["content_type"]; ok {
				t.Errorf("content_type must be omitted, got %v", body["content_type"])
			}
			writeJSON(w, http.StatusOK, `{"id":"fu-42","status":"pending"}`)
		case "/v1/file_uploads/fu-42/send":
			if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				t.Errorf("send must be multipart, got %s", r.Header.Get("Content-Type"))
			}
			writeJSON(w, http.StatusOK, `{"id":"fu-42","status":"uploaded"}`)
		case "/v1/file_uploads/fu-42/complete":
			writeJSON(w, http.StatusOK, `{"id":"fu-42","status":"upload_completed"}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			writeJSON(w, http.StatusNotFound, `{}`)
		}
	})

	afero.WriteFile(env.fs, "/data/report.pdf", []byte("fake pdf content"), 0o644)

	var steps []string
	result, err := env.client.UploadFile(context.Background(), "/data/report.pdf", "", func(s UploadStep) {
		steps = append(steps, s.Name+":"+s.UploadID)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{
		"POST /v1/file_uploads",
		"POST /v1/file_uploads/fu-42/send",
		"POST /v1/file_uploads/fu-42/complete",
	}
	if strings.Join(order, "|") != strings.Join(wantOrder, "|") {
		t.Errorf("unexpected request order: %v", order)
	}
	if strings.Join(steps, ",") != "create:,send:fu-42,complete:fu-42" {
		t.Errorf("unexpected steps: %v", steps)
	}
	if result["status"] != "upload_completed" {
		t.Errorf("expected complete response, got %v", result)
	}
}

func TestUploadFile_ContentType(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/file_uploads" {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["content_type"] != "text/markdown" {
				t.Errorf("expected content_type text/markdown, got %v", body["content_type"])
			}
		}
		writeJSON(w, http.StatusOK, `{"id":"fu-1"}`)
	})

	afero.WriteFile(env.fs, "notes.md", []byte("# notes"), 0o644)

	if _, err := env.client.UploadFile(context.Background(), "notes.md", "text/markdown", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUploadFile_MissingUploadID(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusOK, `{"status":"pending"}`)
	})

	afero.WriteFile(env.fs, "a.txt", []byte("a"), 0o644)

	_, err := env.client.UploadFile(context.Background(), "a.txt", "", nil)
	if !errors.Is(err, ErrMissingUploadID) {
		t.Fatalf("expected ErrMissingUploadID, got %v", err)
	}
	if hits != 1 {
		t.Errorf("expected only the create request, got %d", hits)
	}
}

func TestUploadFile_StopsOnSendError(t *testing.T) {
	var paths []string
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/v1/file_uploads" {
			writeJSON(w, http.StatusOK, `{"id":"fu-1"}`)
			return
		}
		writeJSON(w, http.StatusBadRequest, `{"code":"validation_error","message":"file too large"}`)
	})

	afero.WriteFile(env.fs, "big.bin", []byte("data"), 0o644)

	_, err := env.client.UploadFile(context.Background(), "big.bin", "", nil)

	apiErr, ok := IsAPIError(err)
	if !ok || apiErr.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("complete must not be called after failed send, got %v", paths)
	}
}

func TestUploadFile_DryRunPreviewsAllSteps(t *testing.T) {
	hits := 0
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, http.StatusOK, `{}`)
	})
	env.client.SetDryRun(true)

	afero.WriteFile(env.fs, "/tmp/photo.png", []byte("png"), 0o644)

	result, err := env.client.UploadFile(context.Background(), "/tmp/photo.png", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits != 0 {
		t.Errorf("dry-run must not send requests, got %d", hits)
	}
	if result["path"] != "/v1/file_uploads/{upload_id}/complete" {
		t.Errorf("unexpected result: %v", result)
	}

	diag := env.diag.String()
	for _, want := range []string{
		"[dry-run] POST " + env.server.URL + "/v1/file_uploads\n",
		"[dry-run] POST " + env.server.URL + "/v1/file_uploads/{upload_id}/send\n",
		"[dry-run] File: /tmp/photo.png (3 bytes)",
		"[dry-run] POST " + env.server.URL + "/v1/file_uploads/{upload_id}/complete\n",
	} {
		if !strings.Contains(diag, want) {
			t.Errorf("preview should contain %q, got:\n%s", want, diag)
		}
	}
}
