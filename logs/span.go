package logs

// Span identifies one logical unit of work in log records.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
