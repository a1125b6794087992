package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Format — формат вывода данных.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatRaw    Format = "raw"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	format  Format
	w       io.Writer // stdout для данных
	errW    io.Writer // stderr для сообщений
	colored bool
}

// NewOutput создаёт Output. Цвет включается, только если stderr — терминал.
func NewOutput(format Format, w, errW io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	if errW == nil {
		errW = os.Stderr
	}
	return &Output{
		format:  Format(strings.ToLower(string(format))),
		w:       w,
		errW:    errW,
		colored: errW == os.Stderr && !color.NoColor,
	}
}

// Print выводит ответ API: raw — одной строкой, иначе с отступами.
func (o *Output) Print(v any) error {
	var (
		data []byte
		err  error
	)
	if o.format == FormatRaw {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	_, err = fmt.Fprintln(o.w, string(data))
	return err
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	o.message(color.FgGreen, "✓", msg)
}

// Info выводит информационное сообщение в stderr.
func (o *Output) Info(msg string) {
	o.message(color.FgBlue, "→", msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	o.message(color.FgRed, "✗", msg)
}

func (o *Output) message(fg color.Attribute, marker, msg string) {
	c := color.New(fg, color.Bold)
	if o.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprintln(o.errW, c.Sprint(marker), msg)
}

// Bold выделяет значение в сообщениях (имя бота, workspace).
func (o *Output) Bold(s string) string {
	c := color.New(color.Bold)
	if o.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
