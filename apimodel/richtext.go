package apimodel

// SpanKind identifies the flavor of a rich-text span.
type SpanKind string

const (
	SpanText SpanKind = "text"
	SpanCode SpanKind = "code"
	SpanLink SpanKind = "link"
)

// Span is one element of a rich-text sequence. Target is only meaningful for
// link spans; it carries the link destination (URL or API reference).
type Span struct {
	Kind   SpanKind `json:"kind"`
	Value  string   `json:"value"`
	Target string   `json:"target,omitempty"`
}

// RichText is a sequence of spans. A nil sequence means "no text" and is
// emitted as an empty array, never as null.
type RichText []Span

// Text builds a single-span rich-text sequence; the common case for
// summaries produced by the upstream analyzer.
func Text(s string) RichText {
	if s == "" {
		return nil
	}
	return RichText{{Kind: SpanText, Value: s}}
}
