package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/afero"
	"golang.org/x/net/http/httpguts"
)

const (
	// DefaultBaseURL — адрес Notion API.
	DefaultBaseURL = "https://api.notion.com"

	// APIVersion — значение заголовка Notion-Version.
	APIVersion = "2025-09-03"

	defaultHTTPTimeout = 60 * time.Second
)

// Config — параметры создания клиента.
type Config struct {
	Token      string       // integration token
	BaseURL    string       // по умолчанию DefaultBaseURL
	DryRun     bool         // не выполнять мутирующие запросы
	UserAgent  string       // опционально
	HTTPClient *http.Client // по умолчанию клиент с таймаутом 60s
	Logger     *slog.Logger // по умолчанию slog.Default()
	Diag       io.Writer    // вывод превью dry-run, по умолчанию stderr
	FS         afero.Fs     // чтение файлов для multipart, по умолчанию ОС
	Metrics    *Metrics     // nil — без метрик
}

// Client — HTTP-шлюз к Notion API.
type Client struct {
	baseURL    string
	dryRun     bool
	headers    http.Header
	httpClient *http.Client
	logger     *slog.Logger
	diag       io.Writer
	fs         afero.Fs
	metrics    *Metrics

	// newTimer подменяется в тестах, чтобы не ждать паузы backoff.
	newTimer func() backoff.Timer
}

// NewClient создаёт клиент. Токен с управляющими символами отвергается
// сразу: такой заголовок всё равно не уйдёт в сеть.
func NewClient(cfg Config) (*Client, error) {
	auth := "Bearer " + cfg.Token
	if !httpguts.ValidHeaderFieldValue(auth) {
		return nil, fmt.Errorf("%w: invalid API token format", ErrConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	headers := make(http.Header)
	headers.Set("Authorization", auth)
	headers.Set("Notion-Version", APIVersion)
	if cfg.UserAgent != "" {
		headers.Set("User-Agent", cfg.UserAgent)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		dryRun:     cfg.DryRun,
		headers:    headers,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		diag:       cfg.Diag,
		fs:         cfg.FS,
		metrics:    cfg.Metrics,
		newTimer:   func() backoff.Timer { return nil },
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.diag == nil {
		c.diag = os.Stderr
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	return c, nil
}

// BaseURL возвращает адрес API без завершающего слэша.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetDryRun включает или выключает dry-run.
func (c *Client) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// DryRun сообщает, включён ли dry-run.
func (c *Client) DryRun() bool {
	return c.dryRun
}

// --- Verbs ---

// Get выполняет GET. Dry-run на чтение не влияет.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	return c.send(ctx, &request{method: http.MethodGet, path: path, query: query})
}

// Post выполняет POST; body может быть nil.
func (c *Client) Post(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.sendJSON(ctx, http.MethodPost, path, body)
}

// Patch выполняет PATCH.
func (c *Client) Patch(ctx context.Context, path string, body any) (map[string]any, error) {
	return c.sendJSON(ctx, http.MethodPatch, path, body)
}

// Delete выполняет DELETE.
func (c *Client) Delete(ctx context.Context, path string) (map[string]any, error) {
	return c.sendJSON(ctx, http.MethodDelete, path, nil)
}

// PostMultipart отправляет файл как multipart/form-data.
//
// Файл читается целиком до любых сетевых действий (и до dry-run),
// поэтому ошибка чтения всегда ErrFileRead без обращения к API.
func (c *Client) PostMultipart(ctx context.Context, path, filePath string, partNumber *int) (map[string]any, error) {
	data, err := afero.ReadFile(c.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, filePath, err)
	}

	if c.dryRun {
		c.metrics.observeDryRun(http.MethodPost)
		fmt.Fprintf(c.diag, "[dry-run] POST %s%s\n", c.baseURL, path)
		fmt.Fprintf(c.diag, "[dry-run] File: %s (%d bytes)\n", filePath, len(data))
		if partNumber != nil {
			fmt.Fprintf(c.diag, "[dry-run] Part number: %d\n", *partNumber)
		}
		return map[string]any{
			"dry_run":   true,
			"method":    http.MethodPost,
			"path":      path,
			"file":      filePath,
			"file_size": len(data),
		}, nil
	}

	name := filepath.Base(filePath)
	return c.send(ctx, &request{
		method: http.MethodPost,
		path:   path,
		file: &filePart{
			name:       name,
			mimeType:   MIMEFromFilename(name),
			data:       data,
			partNumber: partNumber,
		},
	})
}

// sendJSON — общий путь для мутирующих JSON-глаголов с перехватом dry-run.
func (c *Client) sendJSON(ctx context.Context, method, path string, body any) (map[string]any, error) {
	if c.dryRun {
		return c.previewDryRun(method, path, body)
	}

	r, err := newJSONRequest(method, path, body)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, r)
}

// previewDryRun печатает запрос вместо отправки.
func (c *Client) previewDryRun(method, path string, body any) (map[string]any, error) {
	c.metrics.observeDryRun(method)
	fmt.Fprintf(c.diag, "[dry-run] %s %s%s\n", method, c.baseURL, path)
	if body != nil {
		pretty, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		fmt.Fprintf(c.diag, "[dry-run] Body: %s\n", pretty)
	}
	return map[string]any{
		"dry_run": true,
		"method":  method,
		"path":    path,
	}, nil
}
