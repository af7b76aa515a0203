// Package tracing provides lightweight spans for timing units of work.
package tracing

// Tracer starts spans.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span is a timed unit of work. Callers must call Finish exactly once.
type Span interface {
	SetBaggageItem(key string, value any)
	Finish()
}

var (
	_ Tracer = NopTracer{}
	_ Span   = nopSpan{}
)

// NopTracer discards all spans.
type NopTracer struct{}

//nolint:ireturn
func (NopTracer) StartSpan(string) Span { return nopSpan{} }

type nopSpan struct{}

func (nopSpan) SetBaggageItem(string, any) {}

func (nopSpan) Finish() {}
