// Package html renders code snippets as HTML.
//
// Each snippet becomes a widget holding its title, description,
// a copy control, and the highlighted code.
// The copy control is driven by js/copy.js from the static assets.
package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/microcosm-cc/bluemonday"
	"go.abhg.dev/snippet/internal/copybutton"
	"go.abhg.dev/snippet/internal/highlight"
	"go.abhg.dev/snippet/internal/snippet"
)

// StaticDir is the directory, relative to the output,
// that holds static assets.
const StaticDir = "_"

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static
	_staticFS embed.FS

	// Unusable function references at parse time,
	// and then Clone and replace at render time.
	// This way, template validity is still
	// verified at init.
	_pageTmpl = template.Must(
		template.New("page.html").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS, "tmpl/page.html", "tmpl/layout.html", "tmpl/snippet.html"),
	)
)

// Highlighter renders code into HTML.
type Highlighter interface {
	Highlight(*highlight.Code) string
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders snippets into HTML.
type Renderer struct {
	// Highlighter renders code blocks into HTML.
	// Defaults to a highlighter with the default style and layout.
	Highlighter Highlighter

	// Whether we're in embedded mode.
	// In this mode, pages only contain the snippets,
	// and not complete, stylized HTML documents.
	Embedded bool

	// TrustDescription inserts snippet descriptions into the output as-is.
	//
	// Only set this if descriptions come from a trusted source.
	// By default, descriptions are sanitized with Policy.
	TrustDescription bool

	// Policy used to sanitize descriptions.
	// Defaults to bluemonday's policy for user generated content.
	Policy *bluemonday.Policy

	// StaticPath is the path to the static assets from rendered pages.
	// Defaults to StaticDir.
	StaticPath string
}

var _defaultHighlighter = &highlight.Highlighter{
	Style:  highlight.DefaultStyle,
	Layout: highlight.DefaultLayout,
}

func (r *Renderer) highlighter() Highlighter {
	if r.Highlighter != nil {
		return r.Highlighter
	}
	return _defaultHighlighter
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Body"
	}
	return "Page"
}

// Page is a collection of snippets rendered together.
type Page struct {
	// Title of the page.
	// This is the document title, and a heading above the snippets.
	Title string

	Snippets []*snippet.Snippet
}

// RenderPage renders a page of snippets.
func (r *Renderer) RenderPage(w io.Writer, page *Page) error {
	render := r.newRender()
	return errtrace.Wrap(template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, r.templateName(), page))
}

// RenderSnippet renders the widget for a single snippet,
// without any surrounding page.
func (r *Renderer) RenderSnippet(w io.Writer, s *snippet.Snippet) error {
	render := r.newRender()
	return errtrace.Wrap(template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, "Snippet", s))
}

// ReadStatic returns the contents of the static asset at p,
// relative to the static directory.
//
// The highlighter's style sheet, if any, is included in css/main.css.
func (r *Renderer) ReadStatic(p string) ([]byte, error) {
	bs, err := fs.ReadFile(_staticFS, path.Join("static", p))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if p == "css/main.css" {
		buff := bytes.NewBuffer(bs)
		buff.WriteString("\n")
		if err := r.highlighter().WriteCSS(buff); err != nil {
			return nil, errtrace.Wrap(err)
		}
		bs = buff.Bytes()
	}
	return bs, nil
}

// WriteStatic dumps the static assets into StaticDir inside the given directory.
//
// This is a no-op if the renderer is running in embedded mode.
func (r *Renderer) WriteStatic(dir string) error {
	if r.Embedded {
		return nil
	}

	dir = filepath.Join(dir, StaticDir)
	static, err := fs.Sub(_staticFS, "static")
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == "." {
			return err
		}

		outPath := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o1755)
		}

		bs, err := r.ReadStatic(path)
		if err != nil {
			return err
		}
		return os.WriteFile(outPath, bs, 0o644)
	}))
}

func (r *Renderer) newRender() *render {
	policy := r.Policy
	if policy == nil {
		policy = bluemonday.UGCPolicy()
	}
	staticPath := r.StaticPath
	if len(staticPath) == 0 {
		staticPath = StaticDir
	}
	return &render{
		Highlighter:      r.highlighter(),
		TrustDescription: r.TrustDescription,
		Policy:           policy,
		StaticPath:       staticPath,
	}
}

type render struct {
	Highlighter      Highlighter
	TrustDescription bool
	Policy           *bluemonday.Policy
	StaticPath       string
}

func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"code":        r.code,
		"source":      source,
		"description": r.description,
		"static":      r.static,
		"copyLabel":   func() string { return copybutton.CopyLabel },
		"copiedLabel": func() string { return copybutton.CopiedLabel },
		"copyGlyph":   func() string { return copybutton.CopyGlyph },
		"copiedGlyph": func() string { return copybutton.CopiedGlyph },
		"resetDelayMS": func() int64 {
			return copybutton.ResetDelay.Milliseconds()
		},
	}
}

func (r *render) static(p string) string {
	return path.Join(r.StaticPath, p)
}

func (r *render) code(s *snippet.Snippet) template.HTML {
	return template.HTML(r.Highlighter.Highlight(highlight.Lex(s.Code, s.Language)))
}

// source escapes code for a <template> element
// so that the parsed text matches it byte for byte.
// HTML parsers turn literal "\r\n" and "\r" into "\n",
// but leave character references alone.
func source(code string) template.HTML {
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(code), "\r", "&#13;"))
}

func (r *render) description(desc string) template.HTML {
	if len(desc) == 0 {
		return ""
	}
	if r.TrustDescription {
		return template.HTML(desc)
	}
	return template.HTML(r.Policy.Sanitize(desc))
}
