package cli

import (
	"context"

	"github.com/shaiso/notion-cli/internal/config"
	"github.com/shaiso/notion-cli/internal/notion"
	"github.com/shaiso/notion-cli/internal/telemetry"
)

// ClientFunc лениво создаёт клиент API после парсинга флагов.
type ClientFunc func(ctx context.Context) (*notion.Client, error)

// OutputFunc создаёт Output с учётом --output и --raw.
type OutputFunc func() *Output

// PageFunc возвращает пагинацию из глобальных флагов.
type PageFunc func() notion.Pagination

// store открывает хранилище конфигурации.
func (a *app) store() (*config.Store, error) {
	dir := a.opts.ConfigDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return nil, err
		}
	}
	return config.NewStore(a.opts.FS, dir, a.opts.Getenv), nil
}

// newClient создаёт клиент для указанного токена.
// Используется и командами, и init (до сохранения конфигурации).
func (a *app) newClient(ctx context.Context, token, baseURL string) (*notion.Client, error) {
	return notion.NewClient(notion.Config{
		Token:      token,
		BaseURL:    baseURL,
		DryRun:     a.flags.dryRun,
		UserAgent:  "notion-cli/" + a.opts.Version,
		HTTPClient: a.opts.HTTPClient,
		Logger:     telemetry.FromContext(ctx),
		Diag:       a.opts.Stderr,
		FS:         a.opts.FS,
		Metrics:    a.metrics,
	})
}

// client загружает конфигурацию и создаёт клиент; результат кешируется
// на время выполнения команды.
func (a *app) client(ctx context.Context) (*notion.Client, error) {
	if a.cached != nil {
		return a.cached, nil
	}

	store, err := a.store()
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	token, err := cfg.Token()
	if err != nil {
		return nil, err
	}

	client, err := a.newClient(ctx, token, cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	a.cached = client
	return client, nil
}

// output создаёт Output; --raw имеет приоритет над --output.
func (a *app) output() *Output {
	format := Format(a.flags.output)
	if a.flags.raw {
		format = FormatRaw
	}
	return NewOutput(format, a.opts.Stdout, a.opts.Stderr)
}

// pagination собирает пагинацию из глобальных флагов.
func (a *app) pagination() notion.Pagination {
	return notion.Pagination{
		PageSize:    a.flags.pageSize,
		StartCursor: a.flags.startCursor,
	}
}
