package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Layout holds the box styling applied to highlighted code blocks.
// Values are CSS lengths; empty values are left out.
type Layout struct {
	Margin     string
	Padding    string
	FontSize   string
	LineHeight string
}

// DefaultLayout is the layout snippets are rendered with.
var DefaultLayout = Layout{
	Margin:     "0",
	Padding:    "1rem",
	FontSize:   "0.875rem",
	LineHeight: "1.5",
}

// CSS returns the layout as CSS declarations
// suitable for a 'style' attribute.
func (l Layout) CSS() string {
	var decls []string
	add := func(prop, value string) {
		if len(value) > 0 {
			decls = append(decls, prop+": "+value)
		}
	}
	add("margin", l.Margin)
	add("padding", l.Padding)
	add("font-size", l.FontSize)
	add("line-height", l.LineHeight)
	return strings.Join(decls, "; ")
}

// Highlighter turns [Code] into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	// Layout of the <pre> block holding the code.
	// This is always inlined, even with UseClasses.
	Layout Layout

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		if h.Style == nil {
			h.Style = DefaultStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// Highlight renders the given code block into HTML.
func (h *Highlighter) Highlight(code *Code) string {
	h.init()

	if code == nil {
		return ""
	}

	layout := h.Layout.CSS()
	r := codeRenderer{fmt: h.formatter, sty: h.Style}
	if h.UseClasses {
		fmt.Fprintf(&r, "<pre class=%q", chroma.StandardTypes[chroma.PreWrapper])
		if len(layout) > 0 {
			fmt.Fprintf(&r, " style=%q", layout)
		}
		r.WriteString(">")
	} else {
		style := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper))
		if len(layout) > 0 {
			style += "; " + layout
		}
		fmt.Fprintf(&r, "<pre style=%q>", style)
	}
	r.WriteString("<code>")
	r.RenderSpans(code.Spans)
	r.WriteString("</code></pre>")
	return r.String()
}

type codeRenderer struct {
	bytes.Buffer

	fmt chroma.Formatter
	sty *chroma.Style
}

func (r *codeRenderer) RenderSpans(spans []Span) {
	for _, span := range spans {
		r.RenderSpan(span)
	}
}

func (r *codeRenderer) RenderSpan(span Span) {
	switch b := span.(type) {
	case *TokenSpan:
		r.fmt.Format(r, r.sty, chroma.Literator(b.Tokens...))
	case *TextSpan:
		template.HTMLEscape(r, b.Text)
	case *ErrorSpan:
		r.WriteString("<strong>")
		template.HTMLEscape(r, []byte(b.Msg))
		r.WriteString(": ")
		template.HTMLEscape(r, []byte(b.Err.Error()))
		r.WriteString("</strong>\n")
	default:
		panic(fmt.Sprintf("unrecognized node type %T", b))
	}
}
