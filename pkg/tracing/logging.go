package tracing

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = (*loggingSpan)(nil)
)

// LoggingTracer writes finished spans to a [slog.Logger] at debug level.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(operationName string) Span {
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &loggingSpan{
		logger:        logger,
		operationName: operationName,
		baggage:       make(map[string]any),
		start:         time.Now(),
	}
}

type loggingSpan struct {
	start         time.Time
	logger        *slog.Logger
	baggage       map[string]any
	operationName string
	mu            sync.Mutex
}

func (s *loggingSpan) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := make([]any, 0, len(s.baggage)*2+4)
	for k, v := range s.baggage {
		attrs = append(attrs, k, v)
	}

	attrs = append(attrs, "operation_name", s.operationName, "time_ms", time.Since(s.start).Seconds()*1e3)
	s.logger.Log(context.Background(), slog.LevelDebug, "trace", attrs...)
}

func (s *loggingSpan) SetBaggageItem(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baggage[key] = value
}
