package config

import "errors"

var (
	// ErrNoToken — токен не найден ни в окружении, ни в файле.
	ErrNoToken = errors.New("No API token configured. Run `notion init` or set NOTION_API_TOKEN environment variable.")

	// ErrInvalidConfig — файл не разбирается или содержит неверные значения.
	ErrInvalidConfig = errors.New("invalid config")
)
