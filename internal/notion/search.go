package notion

import "context"

// Значения фильтра поиска по типу объекта.
const (
	SearchFilterPage       = "page"
	SearchFilterDataSource = "data_source"
)

// Search ищет страницы и data sources по заголовку.
// Пустой filterType означает поиск без фильтра.
func (c *Client) Search(ctx context.Context, query, filterType string, p Pagination) (map[string]any, error) {
	body := map[string]any{"query": query}
	if filterType != "" {
		body["filter"] = map[string]any{
			"value":    filterType,
			"property": "object",
		}
	}
	p.body(body)
	return c.Post(ctx, "/v1/search", body)
}
