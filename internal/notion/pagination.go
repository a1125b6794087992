package notion

import (
	"net/url"
	"strconv"
)

// Pagination — параметры курсорной пагинации Notion.
// Нулевые значения не передаются.
type Pagination struct {
	PageSize    int
	StartCursor string
}

// query добавляет пагинацию в query string (GET-списки).
func (p Pagination) query(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.StartCursor != "" {
		q.Set("start_cursor", p.StartCursor)
	}
	return q
}

// body добавляет пагинацию в тело запроса (search, query).
func (p Pagination) body(b map[string]any) {
	if p.PageSize > 0 {
		b["page_size"] = p.PageSize
	}
	if p.StartCursor != "" {
		b["start_cursor"] = p.StartCursor
	}
}

// richText — массив rich_text из одного текстового фрагмента.
func richText(content string) []any {
	return []any{
		map[string]any{
			"type": "text",
			"text": map[string]any{"content": content},
		},
	}
}
