// snippet renders titled, syntax highlighted code snippets
// with a copy to clipboard button.
//
// See the help output for usage:
//
//	snippet -help
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/snippet/internal/clipboard"
	"go.abhg.dev/snippet/internal/copybutton"
	"go.abhg.dev/snippet/internal/errdefer"
	"go.abhg.dev/snippet/internal/highlight"
	"go.abhg.dev/snippet/internal/html"
	"go.abhg.dev/snippet/internal/snippet"
	"go.abhg.dev/snippet/internal/tui"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	// Clipboard used by -copy and -tui.
	// Defaults to the system clipboard.
	Clipboard clipboard.Writer

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.run(ctx, opts); err != nil {
		cmd.log.Printf("snippet: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(ctx context.Context, opts *params) (err error) {
	debugLog, closeDebug, err := opts.Debug.Logger(cmd.Stderr)
	if err != nil {
		return err
	}
	defer errdefer.Call(&err, closeDebug)

	snips, err := cmd.loadSnippets(opts)
	if err != nil {
		return err
	}
	debugLog.Printf("Loaded %d snippet(s)", len(snips))

	style, ok := highlight.StyleFor(opts.Style)
	if !ok {
		return fmt.Errorf("unknown style %q", opts.Style)
	}

	switch {
	case opts.Copy:
		s, err := single("-copy", snips)
		if err != nil {
			return err
		}
		cmd.copy(ctx, s)
		return nil

	case opts.TUI:
		s, err := single("-tui", snips)
		if err != nil {
			return err
		}
		return cmd.runTUI(ctx, s, style)
	}

	renderer := &html.Renderer{
		Highlighter: &highlight.Highlighter{
			Style:      style,
			UseClasses: opts.UseClasses,
			Layout:     highlight.DefaultLayout,
		},
		Embedded:         opts.Embedded,
		TrustDescription: opts.TrustDescription,
	}

	page := &html.Page{
		Title:    opts.PageTitle,
		Snippets: snips,
	}
	if len(page.Title) == 0 {
		page.Title = snips[0].Title
	}

	if len(opts.Serve) > 0 {
		return (&previewServer{
			Log:      cmd.log,
			Renderer: renderer,
			Page:     page,
		}).ListenAndServe(ctx, opts.Serve)
	}

	staticDir := opts.StaticDir
	if len(staticDir) == 0 && opts.OutputFile != "-" {
		staticDir = filepath.Dir(opts.OutputFile)
	}

	return (&Generator{
		Log:       debugLog,
		Renderer:  renderer,
		Stdout:    cmd.Stdout,
		OutFile:   opts.OutputFile,
		StaticDir: staticDir,
	}).Generate(page)
}

// runTUI runs the terminal widget.
// Copy failures are held back while the widget owns the screen,
// and written to stderr after it exits.
func (cmd *mainCmd) runTUI(ctx context.Context, s *snippet.Snippet, style *chroma.Style) error {
	var failures bytes.Buffer
	defer func() {
		_, _ = io.Copy(cmd.log.Writer(), &failures)
	}()

	return tui.Run(ctx, s, cmd.clipboard(), cmd.Stdin, cmd.Stdout,
		tui.WithLogger(log.New(&failures, "", 0)),
		tui.WithStyle(style),
	)
}

func (cmd *mainCmd) clipboard() clipboard.Writer {
	if cmd.Clipboard != nil {
		return cmd.Clipboard
	}
	return new(clipboard.System)
}

// copy copies the snippet's code and reports the resulting label.
// Failures are logged by the button.
func (cmd *mainCmd) copy(ctx context.Context, s *snippet.Snippet) {
	button := copybutton.New(cmd.clipboard(), copybutton.WithLogger(cmd.log))
	defer button.Close()

	button.Copy(ctx, s.Code)
	fmt.Fprintln(cmd.Stdout, button.Glyph(), button.Label())
}

func (cmd *mainCmd) loadSnippets(opts *params) ([]*snippet.Snippet, error) {
	if len(opts.Manifests) > 0 {
		var snips []*snippet.Snippet
		for _, path := range opts.Manifests {
			ss, err := snippet.LoadFile(string(path))
			if err != nil {
				return nil, err
			}
			snips = append(snips, ss...)
		}
		return snips, nil
	}

	s, err := cmd.readSnippet(opts)
	if err != nil {
		return nil, err
	}
	return []*snippet.Snippet{s}, nil
}

func (cmd *mainCmd) readSnippet(opts *params) (_ *snippet.Snippet, err error) {
	r := cmd.Stdin
	name := "stdin"
	if opts.File != "-" {
		f, openErr := os.Open(opts.File)
		if openErr != nil {
			return nil, openErr
		}
		defer errdefer.Close(&err, f)
		r, name = f, opts.File
	}

	s, err := snippet.Read(r, opts.Language, opts.Title, opts.Description)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", name, err)
	}
	return s, nil
}

func single(mode string, snips []*snippet.Snippet) (*snippet.Snippet, error) {
	if len(snips) != 1 {
		return nil, fmt.Errorf("%v needs exactly one snippet, got %d", mode, len(snips))
	}
	return snips[0], nil
}
