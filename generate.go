package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"go.abhg.dev/snippet/internal/errdefer"
	"go.abhg.dev/snippet/internal/html"
)

// Renderer renders a page of snippets to HTML.
type Renderer interface {
	WriteStatic(string) error
	RenderPage(io.Writer, *html.Page) error
}

var _ Renderer = (*html.Renderer)(nil)

// Generator writes a rendered page of snippets
// and its static assets.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Renderer Renderer

	// Stdout receives the page if OutFile is "-".
	Stdout io.Writer

	// OutFile is the path to the page, or "-" for Stdout.
	OutFile string

	// StaticDir receives static assets, if set.
	StaticDir string
}

// Generate renders the page and its assets.
func (g *Generator) Generate(page *html.Page) (err error) {
	if len(g.StaticDir) > 0 {
		g.Log.Printf("Writing static assets to %v", g.StaticDir)
		if err := g.Renderer.WriteStatic(g.StaticDir); err != nil {
			return err
		}
	}

	if len(g.OutFile) == 0 || g.OutFile == "-" {
		g.Log.Printf("Rendering %d snippet(s) to stdout", len(page.Snippets))
		return g.Renderer.RenderPage(g.Stdout, page)
	}

	if err := os.MkdirAll(filepath.Dir(g.OutFile), 0o1755); err != nil {
		return err
	}

	f, err := os.Create(g.OutFile)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, f)

	g.Log.Printf("Rendering %d snippet(s) to %v", len(page.Snippets), g.OutFile)
	return g.Renderer.RenderPage(f, page)
}
