// Package config хранит настройки notion CLI.
//
// # Источники
//
// Токен ищется в порядке приоритета:
//  1. переменная окружения NOTION_API_TOKEN (файл при этом не читается)
//  2. YAML-файл $XDG_CONFIG_HOME/notion-cli/config.yaml
//
// NOTION_BASE_URL переопределяет адрес API в любом случае.
//
// # Хранилище
//
// Store работает поверх afero.Fs: в CLI это файловая система ОС,
// в тестах — afero.NewMemMapFs(). Сохранение атомарное: временный
// файл в том же каталоге и rename, права 0600.
//
//	store := config.NewStore(afero.NewOsFs(), dir, os.Getenv)
//	cfg, err := store.Load()
//	token, err := cfg.Token()
package config
