package highlight

import (
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
)

// Code is a code block comprised of multiple text nodes.
type Code struct {
	Spans []Span
}

// Text returns the source text of the code block.
// Error messages are not included.
func (c *Code) Text() string {
	if c == nil {
		return ""
	}

	var sb strings.Builder
	for _, span := range c.Spans {
		switch s := span.(type) {
		case *TextSpan:
			sb.Write(s.Text)
		case *TokenSpan:
			for _, tok := range s.Tokens {
				sb.WriteString(tok.Value)
			}
		}
	}
	return sb.String()
}

type (
	// Span is a part of a code block.
	Span interface{ span() }

	// TextSpan is a span rendered as-is.
	TextSpan struct {
		Text []byte
	}

	// TokenSpan is a span of code
	// that is highlighted with chroma.
	TokenSpan struct {
		Tokens []chroma.Token
	}

	// ErrorSpan is a special span
	// that represents a failure operation.
	//
	// This renders in a visible way
	// to avoid failing silently.
	ErrorSpan struct {
		Msg string
		Err error
	}
)

var (
	_ Span = (*TextSpan)(nil)
	_ Span = (*TokenSpan)(nil)
	_ Span = (*ErrorSpan)(nil)
)

func (*TextSpan) span()  {}
func (*TokenSpan) span() {}
func (*ErrorSpan) span() {}
