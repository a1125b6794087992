package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
)

const maxResponseBody = 32 * 1024 * 1024 // 32 MB

// request — описание логического запроса.
//
// Из него на каждой попытке собирается новый *http.Request, поэтому
// тело хранится в виде байт, а не io.Reader.
type request struct {
	method string
	path   string
	query  url.Values
	body   []byte    // JSON-тело, nil — без тела
	file   *filePart // multipart-часть, взаимоисключающая с body
}

// filePart — файл для multipart/form-data, уже прочитанный в память.
type filePart struct {
	name       string
	mimeType   string
	data       []byte
	partNumber *int
}

// newJSONRequest сериализует body один раз; nil означает запрос без тела.
func newJSONRequest(method, path string, body any) (*request, error) {
	r := &request{method: method, path: path}
	if body == nil {
		return r, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}
	r.body = data
	return r, nil
}

// build собирает *http.Request для очередной попытки.
func (r *request) build(ctx context.Context, baseURL string, headers http.Header) (*http.Request, error) {
	u := baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	contentType := "application/json"

	switch {
	case r.file != nil:
		buf, ct, err := r.file.encode()
		if err != nil {
			return nil, fmt.Errorf("encode multipart: %w", err)
		}
		bodyReader = buf
		contentType = ct
	case r.body != nil:
		bodyReader = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, bodyReader)
	if err != nil {
		return nil, err
	}

	for key, values := range headers {
		req.Header[key] = append([]string(nil), values...)
	}
	req.Header.Set("Content-Type", contentType)

	return req, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encode формирует тело multipart: часть file и, если задан, part_number.
func (f *filePart) encode() (*bytes.Buffer, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(f.name)))
	h.Set("Content-Type", f.mimeType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(f.data); err != nil {
		return nil, "", err
	}

	if f.partNumber != nil {
		if err := w.WriteField("part_number", strconv.Itoa(*f.partNumber)); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// decodeResponse читает тело и транслирует статус в результат или ошибку.
//
// Тело любого ответа обязано быть JSON: иначе ErrResponseParse.
// Не-2xx превращается в *APIError даже если тело не объект.
func decodeResponse(resp *http.Response) (map[string]any, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrNetwork, err)
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: HTTP %d: %v", ErrResponseParse, resp.StatusCode, err)
	}
	obj, _ := body.(map[string]any)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, obj)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrResponseParse, body)
	}
	return obj, nil
}
