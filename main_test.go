package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/snippet/internal/copybutton"
	"go.abhg.dev/snippet/internal/iotest"
	"golang.org/x/net/html"
)

// fakeClipboard records clipboard writes.
type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, text)
	return c.err
}

func TestMainCmd_help(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-h"})
	assert.Zero(t, exitCode, "-h should have zero status code")
}

func TestMainCmd_version(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &buff,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-version"})
	assert.Zero(t, exitCode, "-version should have zero status code")

	assert.Contains(t, buff.String(), "snippet")
	assert.Contains(t, buff.String(), _version)
}

func TestMainCmd_unknownFlag(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"--this-flag-does-not-exist"})
	assert.NotZero(t, exitCode, "unknown flag should have non-zero status code")
}

func TestMainCmd_stdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader("fmt.Println(1)"),
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-lang", "go", "-title", "Example"})
	require.Zero(t, exitCode)

	doc, err := html.Parse(&stdout)
	require.NoError(t, err)

	title := cascadia.MustCompile("h2.snippet-title").MatchFirst(doc)
	require.NotNil(t, title)
	assert.Equal(t, "Example", allText(title))

	pre := cascadia.MustCompile(".snippet-code pre").MatchFirst(doc)
	require.NotNil(t, pre)
	assert.Equal(t, "fmt.Println(1)", allText(pre))

	headTitle := cascadia.MustCompile("title").MatchFirst(doc)
	require.NotNil(t, headTitle)
	assert.Equal(t, "Example", allText(headTitle), "page title defaults to snippet title")
}

func TestMainCmd_emptyInput(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-lang", "go"})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "snippet: stdin: code must be provided")
}

func TestMainCmd_missingFile(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-lang", "go", filepath.Join(t.TempDir(), "nope.go")})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "nope.go")
}

func TestMainCmd_outputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(src, []byte("package main\n"), 0o644))

	out := filepath.Join(dir, "site", "index.html")
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-lang", "go", "-out", out, "-debug", src})
	require.Zero(t, exitCode)

	assert.FileExists(t, out)
	assert.FileExists(t, filepath.Join(dir, "site", "_", "css", "main.css"))
	assert.FileExists(t, filepath.Join(dir, "site", "_", "js", "copy.js"))
}

func TestMainCmd_manifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := filepath.Join(dir, "snippets.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(
		"snippets:\n"+
			"  - {title: One, lang: go, code: x := 1}\n"+
			"  - {title: Two, lang: sh, code: echo 2, description: <script>x</script>Two}\n",
	), 0o644))

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-f", manifest, "-page-title", "Numbers", "-embed"})
	require.Zero(t, exitCode)

	out := stdout.String()
	assert.NotContains(t, out, "<html", "embedded output")
	assert.NotContains(t, out, "<script>", "descriptions must be sanitized")

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	var titles []string
	for _, n := range cascadia.MustCompile("h2.snippet-title").MatchAll(doc) {
		titles = append(titles, allText(n))
	}
	assert.Equal(t, []string{"One", "Two"}, titles)

	h1 := cascadia.MustCompile("h1").MatchFirst(doc)
	require.NotNil(t, h1)
	assert.Equal(t, "Numbers", allText(h1))
}

func TestMainCmd_copy(t *testing.T) {
	t.Parallel()

	code := "  fmt.Println(1)\n\n"

	var (
		clip   fakeClipboard
		stdout bytes.Buffer
	)
	exitCode := (&mainCmd{
		Stdin:     strings.NewReader(code),
		Stdout:    &stdout,
		Stderr:    iotest.Writer(t),
		Clipboard: &clip,
	}).Run([]string{"-copy", "-lang", "go"})
	require.Zero(t, exitCode)

	assert.Equal(t, []string{code}, clip.writes)
	assert.Equal(t, copybutton.CopiedGlyph+" Copied!\n", stdout.String())
}

func TestMainCmd_copyFailure(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:     strings.NewReader("x"),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Clipboard: &fakeClipboard{err: errors.New("no clipboard")},
	}).Run([]string{"-copy", "-lang", "go"})
	assert.Zero(t, exitCode, "copy failures are not fatal")

	assert.Equal(t, copybutton.CopyGlyph+" Copy\n", stdout.String())
	assert.Contains(t, stderr.String(), "failed to copy text: no clipboard")
}

// keyReader feeds one key sequence per Read,
// and reports EOF once all keys are consumed.
type keyReader struct{ keys []string }

func (r *keyReader) Read(p []byte) (int, error) {
	if len(r.keys) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.keys[0])
	r.keys = r.keys[1:]
	return n, nil
}

func TestMainCmd_tuiCopyFailure(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(src, []byte("fmt.Println(1)\n"), 0o644))

	var stderr bytes.Buffer
	clip := fakeClipboard{err: errors.New("no clipboard")}
	exitCode := (&mainCmd{
		Stdin:     &keyReader{keys: []string{"c", "\x03"}}, // c, ctrl+c
		Stdout:    iotest.Writer(t),
		Stderr:    &stderr,
		Clipboard: &clip,
	}).Run([]string{"-tui", "-lang", "go", src})
	require.Zero(t, exitCode, "stderr:\n%s", stderr.String())

	assert.Equal(t, []string{"fmt.Println(1)\n"}, clip.writes)
	assert.Contains(t, stderr.String(), "failed to copy text: no clipboard")
}

func TestMainCmd_copyManySnippets(t *testing.T) {
	t.Parallel()

	manifest := filepath.Join(t.TempDir(), "snippets.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(
		"snippets: [{lang: go, code: a}, {lang: go, code: b}]\n",
	), 0o644))

	var (
		clip   fakeClipboard
		stderr bytes.Buffer
	)
	exitCode := (&mainCmd{
		Stdout:    iotest.Writer(t),
		Stderr:    &stderr,
		Clipboard: &clip,
	}).Run([]string{"-copy", "-f", manifest})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "-copy needs exactly one snippet, got 2")
	assert.Empty(t, clip.writes)
}

func allText(n *html.Node) string {
	var (
		sb    strings.Builder
		visit func(*html.Node)
	)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for n := n.FirstChild; n != nil; n = n.NextSibling {
			visit(n)
		}
	}
	visit(n)
	return sb.String()
}
