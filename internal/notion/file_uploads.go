package notion

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
)

// Режимы создания загрузки.
const (
	UploadModeSinglePart  = "single_part"
	UploadModeMultiPart   = "multi_part"
	UploadModeExternalURL = "external_url"
)

// CreateFileUploadParams — параметры POST /v1/file_uploads.
// Пустые поля не передаются.
type CreateFileUploadParams struct {
	Mode          string
	Filename      string
	ContentType   string
	NumberOfParts int
	ExternalURL   string
}

func (p CreateFileUploadParams) body() map[string]any {
	body := map[string]any{"mode": p.Mode}
	if p.Filename != "" {
		body["filename"] = p.Filename
	}
	if p.ContentType != "" {
		body["content_type"] = p.ContentType
	}
	if p.NumberOfParts > 0 {
		body["number_of_parts"] = p.NumberOfParts
	}
	if p.ExternalURL != "" {
		body["external_url"] = p.ExternalURL
	}
	return body
}

// CreateFileUpload открывает сессию загрузки.
func (c *Client) CreateFileUpload(ctx context.Context, params CreateFileUploadParams) (map[string]any, error) {
	return c.Post(ctx, "/v1/file_uploads", params.body())
}

// SendFileUpload отправляет файл (или его часть) в сессию.
func (c *Client) SendFileUpload(ctx context.Context, id, filePath string, partNumber *int) (map[string]any, error) {
	return c.PostMultipart(ctx, "/v1/file_uploads/"+id+"/send", filePath, partNumber)
}

// CompleteFileUpload завершает загрузку. Тело запроса пустое.
func (c *Client) CompleteFileUpload(ctx context.Context, id string) (map[string]any, error) {
	return c.Post(ctx, "/v1/file_uploads/"+id+"/complete", nil)
}

// RetrieveFileUpload возвращает сессию загрузки.
func (c *Client) RetrieveFileUpload(ctx context.Context, id string) (map[string]any, error) {
	return c.Get(ctx, "/v1/file_uploads/"+id, nil)
}

// ListFileUploads возвращает загрузки; пустой status — все.
func (c *Client) ListFileUploads(ctx context.Context, status string, p Pagination) (map[string]any, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return c.Get(ctx, "/v1/file_uploads", p.query(q))
}

// Этапы UploadFile.
const (
	StepCreate   = "create"
	StepSend     = "send"
	StepComplete = "complete"

	// dryRunUploadID подставляется вместо id в dry-run, где create
	// ничего не возвращает.
	dryRunUploadID = "{upload_id}"
)

// UploadStep — этап составной загрузки, передаётся в колбэк прогресса.
type UploadStep struct {
	Name     string // StepCreate, StepSend, StepComplete
	Filename string
	UploadID string // пусто до ответа create
}

// UploadFile загружает файл в один приём: create → send → complete.
//
// Этапы строго последовательны, каждый использует id из ответа create.
// Ошибка любого этапа прерывает загрузку; уже созданная сессия не
// отменяется, ошибка возвращается без обёртки. onStep может быть nil.
func (c *Client) UploadFile(ctx context.Context, filePath, contentType string, onStep func(UploadStep)) (map[string]any, error) {
	filename := filepath.Base(filePath)
	if filename == "." || filename == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: could not determine filename from %q", ErrFileRead, filePath)
	}
	step := func(name, id string) {
		if onStep != nil {
			onStep(UploadStep{Name: name, Filename: filename, UploadID: id})
		}
	}

	step(StepCreate, "")
	created, err := c.CreateFileUpload(ctx, CreateFileUploadParams{
		Mode:        UploadModeSinglePart,
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	id, _ := created["id"].(string)
	if id == "" && c.dryRun {
		id = dryRunUploadID
	}
	if id == "" {
		return nil, ErrMissingUploadID
	}

	step(StepSend, id)
	if _, err := c.SendFileUpload(ctx, id, filePath, nil); err != nil {
		return nil, err
	}

	step(StepComplete, id)
	return c.CompleteFileUpload(ctx, id)
}
