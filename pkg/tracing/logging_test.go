package tracing_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/bookredirect/pkg/tracing"
)

func TestLoggingTracer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	span := tracing.NewLoggingTracer(logger).StartSpan("write_page")
	span.SetBaggageItem("path", "hashtables.html")
	span.Finish()

	out := buf.String()
	assert.Contains(t, out, "msg=trace")
	assert.Contains(t, out, "operation_name=write_page")
	assert.Contains(t, out, "path=hashtables.html")
	assert.Contains(t, out, "time_ms=")
}

func TestLoggingTracer_BelowLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tracing.NewLoggingTracer(logger).StartSpan("write_page").Finish()

	assert.Empty(t, buf.String())
}

func TestNopTracer(t *testing.T) {
	t.Parallel()

	span := tracing.NopTracer{}.StartSpan("noop")
	span.SetBaggageItem("k", "v")
	span.Finish()
}
