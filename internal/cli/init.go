package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	mcli "github.com/mitchellh/cli"
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/config"
)

// IntegrationsURL — страница создания интеграций Notion.
const IntegrationsURL = "https://www.notion.so/my-integrations"

// newInitCmd создаёт команду первичной настройки: запрос токена,
// проверка соединения и сохранение конфигурации.
func newInitCmd(a *app) *cobra.Command {
	var openBrowser bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and test connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.output()
			ui := &mcli.BasicUi{
				Reader:      a.opts.Stdin,
				Writer:      a.opts.Stderr,
				ErrorWriter: a.opts.Stderr,
			}
			// Скрытый ввод возможен только с настоящего терминала
			askToken := ui.Ask
			if a.opts.Stdin == os.Stdin {
				askToken = ui.AskSecret
			}

			out.Info("Notion CLI initialization")

			store, err := a.store()
			if err != nil {
				return err
			}
			cfg, err := store.Load()
			if errors.Is(err, config.ErrInvalidConfig) {
				out.Info(fmt.Sprintf("Ignoring invalid config: %v", err))
				cfg, err = &config.Config{}, nil
			}
			if err != nil {
				return err
			}

			if cfg.APIToken != "" {
				out.Info(fmt.Sprintf("Existing token found (%s...)", tokenPrefix(cfg.APIToken)))
				answer, err := ui.Ask("Keep existing token? [Y/n]")
				if err != nil {
					return err
				}
				if !isYes(answer, true) {
					cfg.APIToken = ""
				}
			}

			if cfg.APIToken == "" {
				out.Info("You can create an integration at " + IntegrationsURL)
				if openBrowser {
					if err := a.opts.OpenBrowser(IntegrationsURL); err != nil {
						out.Info(fmt.Sprintf("Could not open browser: %v", err))
					}
				}

				token, err := askToken("Enter your Notion API token:")
				if err != nil {
					return err
				}
				cfg.APIToken = strings.TrimSpace(token)
			}

			token, err := cfg.Token()
			if err != nil {
				return err
			}

			out.Info("Testing connection...")
			client, err := a.newClient(cmd.Context(), token, cfg.BaseURL)
			if err != nil {
				return err
			}
			user, err := client.Me(cmd.Context())
			if err != nil {
				out.Error("Please check your API token and try again.")
				return fmt.Errorf("connection failed: %w", err)
			}

			name := stringOr(user["name"], "Unknown")
			botType := stringOr(user["type"], "unknown")
			workspace := "Unknown workspace"
			if bot, ok := user["bot"].(map[string]any); ok {
				workspace = stringOr(bot["workspace_name"], workspace)
			}
			out.Success(fmt.Sprintf("Connected as %s (%s)", out.Bold(name), botType))
			out.Success(fmt.Sprintf("Workspace: %s", out.Bold(workspace)))

			if err := store.Save(cfg); err != nil {
				return err
			}
			out.Success(fmt.Sprintf("Config saved to %s", store.Path()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&openBrowser, "open", false, "Open the Notion integrations page in a browser")

	return cmd
}

// tokenPrefix возвращает первые 8 символов токена для подсказки.
func tokenPrefix(token string) string {
	if len(token) > 8 {
		return token[:8]
	}
	return token
}

// isYes разбирает ответ y/n; пустой ответ — def.
func isYes(answer string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def
	case "y", "yes":
		return true
	default:
		return false
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}
