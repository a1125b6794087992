package notion

import "context"

// RetrieveBlock возвращает блок по ID.
func (c *Client) RetrieveBlock(ctx context.Context, id string) (map[string]any, error) {
	return c.Get(ctx, "/v1/blocks/"+id, nil)
}

// ListBlockChildren возвращает дочерние блоки.
func (c *Client) ListBlockChildren(ctx context.Context, id string, p Pagination) (map[string]any, error) {
	return c.Get(ctx, "/v1/blocks/"+id+"/children", p.query(nil))
}

// AppendBlockChildren добавляет блоки в конец или после блока after.
func (c *Client) AppendBlockChildren(ctx context.Context, id string, children any, after string) (map[string]any, error) {
	body := map[string]any{"children": children}
	if after != "" {
		body["after"] = after
	}
	return c.Patch(ctx, "/v1/blocks/"+id+"/children", body)
}

// UpdateBlock отправляет data как тело PATCH; archived, если задан,
// добавляется к нему.
func (c *Client) UpdateBlock(ctx context.Context, id string, data map[string]any, archived *bool) (map[string]any, error) {
	body := make(map[string]any, len(data)+1)
	for k, v := range data {
		body[k] = v
	}
	if archived != nil {
		body["archived"] = *archived
	}
	return c.Patch(ctx, "/v1/blocks/"+id, body)
}

// DeleteBlock архивирует блок.
func (c *Client) DeleteBlock(ctx context.Context, id string) (map[string]any, error) {
	return c.Delete(ctx, "/v1/blocks/"+id)
}
