// Package telemetry обеспечивает наблюдаемость CLI.
//
// Включает:
//   - logging.go — structured logging через slog (stderr, LOG_LEVEL, LOG_FORMAT)
//   - metrics.go — реестр Prometheus и выгрузка счётчиков в текстовом формате
//
// Метрики не экспортируются по HTTP: процесс живёт одну команду,
// поэтому с флагом --metrics счётчики печатаются в stderr при выходе.
package telemetry
