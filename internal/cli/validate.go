package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-multierror"

	"github.com/shaiso/notion-cli/internal/notion"
)

const maxPageSize = 100

// validateOutputFormat проверяет --output (без учёта регистра).
func validateOutputFormat(format string) error {
	err := validation.Validate(strings.ToLower(format),
		validation.In(string(FormatPretty), string(FormatJSON), string(FormatRaw)).
			Error("must be one of: pretty, json, raw"),
	)
	if err != nil {
		return fmt.Errorf("invalid --output %q: %w", format, err)
	}
	return nil
}

// validatePageSize проверяет --page-size, если флаг задан.
func validatePageSize(size int) error {
	err := validation.Validate(size,
		validation.Required.Error("must be between 1 and 100"),
		validation.Min(1).Error("must be between 1 and 100"),
		validation.Max(maxPageSize).Error("must be between 1 and 100"),
	)
	if err != nil {
		return fmt.Errorf("invalid --page-size %d: %w", size, err)
	}
	return nil
}

// validateSearchFilter проверяет --filter команды search.
func validateSearchFilter(filter string) error {
	err := validation.Validate(filter,
		validation.In(notion.SearchFilterPage, notion.SearchFilterDataSource).
			Error("must be page or data_source"),
	)
	if err != nil {
		return fmt.Errorf("invalid --filter %q: %w", filter, err)
	}
	return nil
}

// moveParams — аргументы page move.
type moveParams struct {
	ParentType string `json:"parent-type"`
	To         string `json:"to"`
}

// Validate реализует validation.Validatable.
func (p moveParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ParentType,
			validation.Required,
			validation.In(notion.ParentPage, notion.ParentDatabase, notion.ParentWorkspace).
				Error("must be page, database, or workspace"),
		),
		validation.Field(&p.To,
			validation.When(p.ParentType != notion.ParentWorkspace, validation.Required),
		),
	)
}

// uploadParams — аргументы file-upload create.
type uploadParams struct {
	Mode          string `json:"mode"`
	NumberOfParts int    `json:"number-of-parts"`
	ExternalURL   string `json:"external-url"`
}

// Validate реализует validation.Validatable.
func (p uploadParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Mode,
			validation.Required,
			validation.In(notion.UploadModeSinglePart, notion.UploadModeMultiPart, notion.UploadModeExternalURL).
				Error("must be single_part, multi_part, or external_url"),
		),
		validation.Field(&p.NumberOfParts,
			validation.When(p.Mode == notion.UploadModeMultiPart, validation.Required, validation.Min(1)),
		),
		validation.Field(&p.ExternalURL,
			validation.When(p.Mode == notion.UploadModeExternalURL, validation.Required, is.URL),
		),
	)
}

// jsonFlags разбирает JSON-значения флагов и накапливает ошибки,
// чтобы сообщить обо всех неверных флагах сразу.
type jsonFlags struct {
	errs *multierror.Error
}

// value разбирает обязательное JSON-значение флага.
func (j *jsonFlags) value(name, raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		j.errs = multierror.Append(j.errs, fmt.Errorf("Invalid JSON for %s: %v", name, err))
		return nil
	}
	return v
}

// optional разбирает JSON, если флаг задан; пустая строка — nil.
func (j *jsonFlags) optional(name, raw string) any {
	if raw == "" {
		return nil
	}
	return j.value(name, raw)
}

// object разбирает JSON, который обязан быть объектом.
func (j *jsonFlags) object(name, raw string) map[string]any {
	v := j.value(name, raw)
	if v == nil {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		j.errs = multierror.Append(j.errs, fmt.Errorf("Invalid JSON for %s: expected an object", name))
		return nil
	}
	return obj
}

// err возвращает накопленные ошибки или nil.
func (j *jsonFlags) err() error {
	return j.errs.ErrorOrNil()
}
