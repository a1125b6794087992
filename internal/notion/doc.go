// Package notion реализует HTTP-шлюз к Notion API.
//
// # Обзор
//
// Client — единственная точка выхода в сеть для всех команд CLI.
// Он инкапсулирует:
//   - статические заголовки (Authorization: Bearer, Notion-Version, Content-Type)
//   - retry на 429 с exponential backoff (500ms, 1s, 2s) или Retry-After
//   - трансляцию ошибок API в *APIError
//   - dry-run: мутирующие запросы не отправляются, а печатаются
//   - multipart-загрузку файлов с определением MIME по расширению
//
// # Глаголы
//
//	client.Get(ctx, "/v1/users/me", nil)
//	client.Post(ctx, "/v1/search", map[string]any{"query": "roadmap"})
//	client.Patch(ctx, "/v1/pages/"+id, body)
//	client.Delete(ctx, "/v1/blocks/"+id)
//	client.PostMultipart(ctx, "/v1/file_uploads/"+id+"/send", "report.pdf", nil)
//
// Get никогда не перехватывается dry-run — чтение выполняется всегда.
//
// # Retry
//
// Запрос описывается значением request и пересобирается на каждой попытке,
// включая тело multipart из уже прочитанных в память байт. Политика
// построена на cenkalti/backoff: ExponentialBackOff без джиттера,
// WithMaxRetries(3), поверх — подмена интервала значением Retry-After.
// Любой другой статус (включая 5xx) возвращается сразу.
//
// # Ресурсы
//
// Поверх глаголов — тонкие обёртки по ресурсам API (users.go, pages.go,
// blocks.go, ...). Они только собирают путь, query и JSON-тело.
// UploadFile выполняет составной сценарий create → send → complete.
package notion
