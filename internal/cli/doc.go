// Package cli реализует инструмент командной строки notion.
//
// # Обзор
//
// Каждая команда разбирает аргументы, собирает JSON-тело, делает один
// вызов шлюза internal/notion и печатает ответ. Бизнес-логики в командах
// нет: всё, что касается HTTP, retry и dry-run, живёт в шлюзе.
//
// # Ключевые компоненты
//
// ## app
//
// Связывает глобальные флаги, конфигурацию (internal/config) и клиент.
// Клиент создаётся лениво после парсинга PersistentFlags и кешируется
// на время команды. init создаёт клиент сам: токена ещё нет в конфиге.
//
// ## Output
//
// Форматирование вывода:
//   - pretty, json — JSON с отступами
//   - raw (или --raw) — JSON одной строкой
//
// Данные выводятся в stdout, сообщения (✓ → ✗) — в stderr.
// Это позволяет использовать pipe: notion user list --raw | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - search
//   - user: me, get, list
//   - page: get, create, update, move, property
//   - block: get, children, append, update, delete
//   - comment: list, create
//   - db: get
//   - ds: get, create, update, query, templates
//   - file-upload: create, send, complete, get, list, upload
//   - init, completion, manpage
//
// Каждая группа создаётся через фабричную функцию (NewPageCmd и т.д.),
// принимающую clientFn, outputFn и pageFn — замыкания, которые читают
// флаги уже после их парсинга.
//
// ## Validation
//
// Значения флагов проверяются ozzo-validation до обращения к API.
// Ошибки разбора JSON во флагах собираются go-multierror и
// сообщаются все сразу.
package cli
