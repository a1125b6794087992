package notion

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// urlIDPattern — 32 hex-символа в конце пути URL Notion
// (https://www.notion.so/Title-<id>?v=...).
var urlIDPattern = regexp.MustCompile(`([0-9a-fA-F]{32})(?:[?#].*)?$`)

// ParseID нормализует идентификатор объекта Notion.
//
// Принимает UUID с дефисами или без и ссылки на страницы Notion,
// возвращает каноническую форму с дефисами. Всё остальное возвращается
// как есть: API само сообщит о неверном ID.
func ParseID(s string) string {
	s = strings.TrimSpace(s)

	if id, err := uuid.Parse(s); err == nil {
		return id.String()
	}

	if strings.Contains(s, "/") {
		if m := urlIDPattern.FindStringSubmatch(s); m != nil {
			if id, err := uuid.Parse(m[1]); err == nil {
				return id.String()
			}
		}
	}

	return s
}
