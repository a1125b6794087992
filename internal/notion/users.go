package notion

import "context"

// Me возвращает бота, которому принадлежит токен.
func (c *Client) Me(ctx context.Context) (map[string]any, error) {
	return c.Get(ctx, "/v1/users/me", nil)
}

// RetrieveUser возвращает пользователя по ID.
func (c *Client) RetrieveUser(ctx context.Context, id string) (map[string]any, error) {
	return c.Get(ctx, "/v1/users/"+id, nil)
}

// ListUsers возвращает пользователей workspace.
func (c *Client) ListUsers(ctx context.Context, p Pagination) (map[string]any, error) {
	return c.Get(ctx, "/v1/users", p.query(nil))
}
