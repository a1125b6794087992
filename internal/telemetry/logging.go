package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel определяет уровень логирования из переменной окружения.
// Возможные значения: DEBUG, INFO, WARN, ERROR (без учёта регистра).
// Если переменная не задана, возвращается fallback.
func LogLevel(fallback slog.Level) slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return fallback
	}
}

// LoggerOptions — параметры SetupLogger.
type LoggerOptions struct {
	// Level — уровень по умолчанию, если LOG_LEVEL не задан.
	Level slog.Level

	// Verbose принудительно включает DEBUG независимо от LOG_LEVEL.
	Verbose bool
}

// SetupLogger инициализирует глобальный логгер, пишущий в w.
//
// CLI пишет логи в stderr, чтобы не смешивать их с JSON в stdout.
// Формат определяется переменной LOG_FORMAT:
//   - "text" (по умолчанию) — человекочитаемый формат
//   - "json" — для машинной обработки
func SetupLogger(w io.Writer, opts LoggerOptions) *slog.Logger {
	level := LogLevel(opts.Level)
	if opts.Verbose {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if os.Getenv("LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Ключи контекста для передачи данных в логгер.
type ctxKey string

const (
	// CtxLogger — ключ для логгера в контексте.
	CtxLogger ctxKey = "logger"
)

// WithLogger добавляет логгер в контекст.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, CtxLogger, logger)
}

// FromContext извлекает логгер из контекста.
// Если логгер не найден, возвращает глобальный.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(CtxLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithCommand возвращает логгер с добавленным именем команды.
func WithCommand(logger *slog.Logger, command string) *slog.Logger {
	return logger.With("command", command)
}
