package notion

import (
	"context"
	"fmt"
	"net/url"
)

// Типы родителя для MovePage.
const (
	ParentPage      = "page"
	ParentDatabase  = "database"
	ParentWorkspace = "workspace"
)

// CreatePageParams — параметры создания страницы.
type CreatePageParams struct {
	ParentID       string
	DatabaseParent bool // родитель — база данных, а не страница
	Properties     any
	Children       any // nil — без дочерних блоков
}

// RetrievePage возвращает страницу; filterProperties ограничивает
// набор возвращаемых свойств.
func (c *Client) RetrievePage(ctx context.Context, id string, filterProperties []string) (map[string]any, error) {
	var q url.Values
	if len(filterProperties) > 0 {
		q = url.Values{"filter_properties": filterProperties}
	}
	return c.Get(ctx, "/v1/pages/"+id, q)
}

// CreatePage создаёт страницу под страницей или базой данных.
func (c *Client) CreatePage(ctx context.Context, params CreatePageParams) (map[string]any, error) {
	parent := map[string]any{"page_id": params.ParentID}
	if params.DatabaseParent {
		parent = map[string]any{"database_id": params.ParentID}
	}

	body := map[string]any{
		"parent":     parent,
		"properties": params.Properties,
	}
	if params.Children != nil {
		body["children"] = params.Children
	}
	return c.Post(ctx, "/v1/pages", body)
}

// UpdatePage обновляет свойства страницы; archived == nil не меняет архивность.
func (c *Client) UpdatePage(ctx context.Context, id string, properties any, archived *bool) (map[string]any, error) {
	body := map[string]any{"properties": properties}
	if archived != nil {
		body["archived"] = *archived
	}
	return c.Patch(ctx, "/v1/pages/"+id, body)
}

// MovePage переносит страницу к новому родителю.
// Для workspace parentID игнорируется.
func (c *Client) MovePage(ctx context.Context, id, parentType, parentID string) (map[string]any, error) {
	var parent map[string]any
	switch parentType {
	case ParentPage:
		parent = map[string]any{"type": "page_id", "page_id": parentID}
	case ParentDatabase:
		parent = map[string]any{"type": "database_id", "database_id": parentID}
	case ParentWorkspace:
		parent = map[string]any{"type": "workspace"}
	default:
		return nil, fmt.Errorf("%w: %s. Use 'page', 'database', or 'workspace'", ErrInvalidParentType, parentType)
	}
	return c.Post(ctx, "/v1/pages/"+id+"/move", map[string]any{"parent": parent})
}

// RetrievePageProperty возвращает значение свойства страницы.
func (c *Client) RetrievePageProperty(ctx context.Context, pageID, propertyID string, p Pagination) (map[string]any, error) {
	return c.Get(ctx, "/v1/pages/"+pageID+"/properties/"+propertyID, p.query(nil))
}
