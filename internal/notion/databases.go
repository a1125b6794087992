package notion

import "context"

// RetrieveDatabase возвращает метаданные базы данных.
func (c *Client) RetrieveDatabase(ctx context.Context, id string) (map[string]any, error) {
	return c.Get(ctx, "/v1/databases/"+id, nil)
}

// --- Data sources ---

// RetrieveDataSource возвращает data source по ID.
func (c *Client) RetrieveDataSource(ctx context.Context, id string) (map[string]any, error) {
	return c.Get(ctx, "/v1/data_sources/"+id, nil)
}

// CreateDataSource создаёт data source под страницей parentID.
func (c *Client) CreateDataSource(ctx context.Context, parentID, title string, properties any) (map[string]any, error) {
	body := map[string]any{
		"parent": map[string]any{"page_id": parentID},
		"title":  richText(title),
	}
	if properties != nil {
		body["properties"] = properties
	}
	return c.Post(ctx, "/v1/data_sources", body)
}

// UpdateDataSource отправляет data как есть.
func (c *Client) UpdateDataSource(ctx context.Context, id string, data any) (map[string]any, error) {
	return c.Patch(ctx, "/v1/data_sources/"+id, data)
}

// QueryDataSource выполняет запрос к data source.
// Пагинация передаётся в теле, а не в query string.
func (c *Client) QueryDataSource(ctx context.Context, id string, filter, sorts any, p Pagination) (map[string]any, error) {
	body := map[string]any{}
	if filter != nil {
		body["filter"] = filter
	}
	if sorts != nil {
		body["sorts"] = sorts
	}
	p.body(body)
	return c.Post(ctx, "/v1/data_sources/"+id+"/query", body)
}

// ListDataSourceTemplates возвращает шаблоны data source.
func (c *Client) ListDataSourceTemplates(ctx context.Context, id string) (map[string]any, error) {
	return c.Get(ctx, "/v1/data_sources/"+id+"/templates", nil)
}
