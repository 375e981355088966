package slog

import (
	"log/slog"
	"time"

	hourei "github.com/ToAmano/hourei-api"
)

// Ensure LoggingConverter implements hourei.Converter.
var _ hourei.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with operation logging. The format
// label tells the renderings apart when several converters share a logger.
type LoggingConverter struct {
	next   hourei.Converter
	format hourei.Format
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next hourei.Converter, format hourei.Format, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, format: format, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(xml string) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("statute conversion",
			"format", c.format,
			"in_bytes", len(xml),
			"out_bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(xml)
}
