package notion

import (
	"context"
	"net/url"
)

// ListComments возвращает комментарии к блоку или странице.
func (c *Client) ListComments(ctx context.Context, blockID string, p Pagination) (map[string]any, error) {
	return c.Get(ctx, "/v1/comments", p.query(url.Values{"block_id": {blockID}}))
}

// CreateComment добавляет текстовый комментарий к странице.
func (c *Client) CreateComment(ctx context.Context, pageID, text string) (map[string]any, error) {
	return c.Post(ctx, "/v1/comments", map[string]any{
		"parent":    map[string]any{"page_id": pageID},
		"rich_text": richText(text),
	})
}
