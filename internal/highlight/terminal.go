package highlight

import (
	"bytes"
	"fmt"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
)

// Terminal renders the given code block
// with 256-color ANSI escape sequences.
//
// If style is nil, [DefaultStyle] is used.
func Terminal(code *Code, style *chroma.Style) (string, error) {
	if code == nil {
		return "", nil
	}
	if style == nil {
		style = DefaultStyle
	}

	var buf bytes.Buffer
	for _, span := range code.Spans {
		switch s := span.(type) {
		case *TokenSpan:
			err := formatters.TTY256.Format(&buf, style, chroma.Literator(s.Tokens...))
			if err != nil {
				return "", errtrace.Wrap(err)
			}
		case *TextSpan:
			buf.Write(s.Text)
		case *ErrorSpan:
			fmt.Fprintf(&buf, "%v: %v\n", s.Msg, s.Err)
		default:
			panic(fmt.Sprintf("unrecognized node type %T", s))
		}
	}
	return buf.String(), nil
}
