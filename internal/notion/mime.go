package notion

import (
	"path/filepath"
	"strings"
)

const defaultMIMEType = "application/octet-stream"

// mimeTypes — фиксированная таблица расширение → MIME.
// Системная база mime не используется: результат не должен зависеть от ОС.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"json": "application/json",
	"csv":  "text/csv",
	"txt":  "text/plain",
	"html": "text/html",
	"htm":  "text/html",
	"mp4":  "video/mp4",
	"mp3":  "audio/mpeg",
	"zip":  "application/zip",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// MIMEFromFilename определяет MIME-тип по расширению файла (без учёта регистра).
// Для неизвестных расширений возвращает application/octet-stream.
func MIMEFromFilename(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return defaultMIMEType
}
