package kestrel

import "context"

// A Format selects the representation a response dispatcher writes.
//
// Format is a closed set: ParseFormat collapses every unknown selector into
// FormatDefault, so a switch over the three constants is exhaustive.
type Format string

const (
	// FormatDefault renders the page template directly.
	FormatDefault Format = "default"

	// FormatHTML renders the page template directly with the kestrel
	// marker set in the rendered context.
	FormatHTML Format = "html"

	// FormatJSON renders the page template into a JSON document wrapping
	// the HTML fragment.
	FormatJSON Format = "json"
)

// ParseFormat maps the raw selector to its Format.
// Anything other than "json" or "html" - the empty string included - is FormatDefault.
func ParseFormat(val string) Format {
	switch val {
	case "json":
		return FormatJSON
	case "html":
		return FormatHTML
	default:
		return FormatDefault
	}
}

func (f Format) String() string { return string(f) }

func (f Format) Valid() error {
	switch f {
	case FormatDefault, FormatHTML, FormatJSON:
		return nil
	default:
		return ErrNotValid
	}
}

// NewFormatContext stashes the Format in ctx.
func NewFormatContext(ctx context.Context, f Format) context.Context {
	return context.WithValue(ctx, FormatKey, f)
}

// FormatFromContext retrieves the Format stashed in ctx,
// returning FormatDefault when none was stashed.
func FormatFromContext(ctx context.Context) Format {
	f, ok := ctx.Value(FormatKey).(Format)
	if !ok {
		return FormatDefault
	}

	return f
}
