// Notion CLI — инструмент командной строки для работы с Notion API.
//
// Использование:
//
//	notion [--output pretty|json|raw] [--raw] [--dry-run] <command> <subcommand> [flags]
//
// Команды:
//
//	init         Настройка токена и проверка соединения
//	search       Поиск страниц и data sources
//	user         Пользователи
//	page         Страницы
//	block        Блоки
//	comment      Комментарии
//	db           Базы данных
//	ds           Data sources
//	file-upload  Загрузка файлов
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/notion-cli/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.Options{Version: version}); err != nil {
		stop()
		os.Exit(1)
	}
}
