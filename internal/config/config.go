package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// EnvToken — переменная окружения с токеном интеграции.
	EnvToken = "NOTION_API_TOKEN"

	// EnvBaseURL — переменная окружения с адресом API.
	EnvBaseURL = "NOTION_BASE_URL"

	dirName  = "notion-cli"
	fileName = "config.yaml"

	dirMode  os.FileMode = 0o700
	fileMode os.FileMode = 0o600
)

// Config — сохраняемые настройки CLI.
type Config struct {
	APIToken string `yaml:"api_token,omitempty" json:"api_token"`
	BaseURL  string `yaml:"base_url,omitempty" json:"base_url"`
}

// Token возвращает токен или ErrNoToken, если он не задан.
func (c *Config) Token() (string, error) {
	if c.APIToken == "" {
		return "", ErrNoToken
	}
	return c.APIToken, nil
}

// Validate проверяет base_url, если он задан.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, is.RequestURL, validation.By(httpScheme)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func httpScheme(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("must use http or https")
	}
	return nil
}

// Store — чтение и запись конфигурации.
type Store struct {
	fs     afero.Fs
	dir    string
	getenv func(string) string
}

// NewStore создаёт хранилище в каталоге dir.
// getenv == nil означает os.Getenv.
func NewStore(fs afero.Fs, dir string, getenv func(string) string) *Store {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Store{fs: fs, dir: dir, getenv: getenv}
}

// DefaultDir возвращает каталог конфигурации пользователя.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}
	return filepath.Join(base, dirName), nil
}

// Path возвращает путь к файлу конфигурации.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load читает конфигурацию. Отсутствие файла — не ошибка.
func (s *Store) Load() (*Config, error) {
	cfg := &Config{}

	if token := s.getenv(EnvToken); token != "" {
		cfg.APIToken = token
	} else if err := s.readFile(cfg); err != nil {
		return nil, err
	}

	if baseURL := s.getenv(EnvBaseURL); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Store) readFile(cfg *Config) error {
	path := s.Path()

	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// Save атомарно записывает конфигурацию с правами 0600.
func (s *Store) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := s.fs.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.dir, err)
	}

	f, err := afero.TempFile(s.fs, s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()
	defer s.fs.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := s.fs.Chmod(tmp, fileMode); err != nil {
		return fmt.Errorf("failed to set config permissions: %w", err)
	}

	if err := s.fs.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.Path(), err)
	}
	return nil
}
