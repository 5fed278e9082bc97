package report

import "errors"

var (
	// ErrCacheMiss возвращается, когда отчёта нет в кэше
	ErrCacheMiss = errors.New("report.cache: cache miss")

	// ErrCache возвращается при ошибке работы с Redis
	ErrCache = errors.New("report.cache: redis error")

	// ErrCodec возвращается при ошибке (де)сериализации отчёта
	ErrCodec = errors.New("report.cache: codec error")
)
