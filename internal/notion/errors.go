package notion

import (
	"errors"
	"fmt"
	"net/http"
)

// Ошибки шлюза.
var (
	// ErrConfig — некорректная конфигурация клиента (например, токен
	// содержит символы, недопустимые в заголовке).
	ErrConfig = errors.New("invalid client configuration")

	// ErrNetwork — ошибка транспорта: соединение, DNS, таймаут.
	ErrNetwork = errors.New("network error")

	// ErrRateLimitExceeded — 429 после исчерпания всех попыток retry.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrResponseParse — тело ответа не является валидным JSON.
	ErrResponseParse = errors.New("failed to parse response as JSON")

	// ErrFileRead — локальный файл для multipart не удалось прочитать.
	ErrFileRead = errors.New("failed to read file")

	// ErrMissingUploadID — ответ create не содержит id загрузки.
	ErrMissingUploadID = errors.New("missing upload ID in create response")

	// ErrInvalidParentType — неизвестный тип родителя при перемещении страницы.
	ErrInvalidParentType = errors.New("invalid parent type")
)

const (
	defaultErrorMessage = "Unknown error"
	defaultErrorCode    = "unknown"
)

// APIError — ответ API с не-2xx статусом.
type APIError struct {
	StatusCode int    // HTTP-код ответа
	Code       string // поле code из тела, "unknown" если нет
	Message    string // поле message из тела, "Unknown error" если нет
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	return fmt.Sprintf("Notion API error (%d %s): [%s] %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Code, e.Message)
}

// Is позволяет проверять исчерпанный rate limit через errors.Is.
// Шлюз отдаёт 429 наружу только после исчерпания попыток.
func (e *APIError) Is(target error) bool {
	return target == ErrRateLimitExceeded && e.StatusCode == http.StatusTooManyRequests
}

// newAPIError собирает APIError из распарсенного тела ответа.
// body может быть nil, если тело — не JSON-объект.
func newAPIError(status int, body map[string]any) *APIError {
	e := &APIError{
		StatusCode: status,
		Code:       defaultErrorCode,
		Message:    defaultErrorMessage,
	}
	if s, ok := body["message"].(string); ok {
		e.Message = s
	}
	if s, ok := body["code"].(string); ok {
		e.Code = s
	}
	return e
}

// IsAPIError проверяет, является ли ошибка ответом API, и возвращает его.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
