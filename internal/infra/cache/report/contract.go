package report

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
