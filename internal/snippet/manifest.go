package snippet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// entry is a single snippet as it appears in a manifest.
type entry struct {
	Title       string `yaml:"title"`
	Language    string `yaml:"language"`
	Lang        string `yaml:"lang"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
	File        string `yaml:"file"`
}

// manifest is the top-level document.
// It is either a single entry, or a list of them under "snippets".
type manifest struct {
	entry `yaml:",inline"`

	Snippets []entry `yaml:"snippets"`
}

// Load reads a YAML manifest of snippets from r.
//
// A manifest holds either a single snippet:
//
//	title: Hello
//	language: go
//	code: |
//	  fmt.Println("hello")
//
// Or a list of them:
//
//	snippets:
//	  - title: Hello
//	    lang: go
//	    file: hello.go
//
// Relative "file" paths are resolved against the working directory.
// Use [LoadFile] to resolve them against the manifest's directory.
func Load(r io.Reader) ([]*Snippet, error) {
	return errtrace.Wrap2(load(r, "."))
}

// LoadFile reads the YAML manifest at path.
func LoadFile(path string) ([]*Snippet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	defer f.Close()

	snips, err := load(f, filepath.Dir(path))
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", path, err))
	}
	return snips, nil
}

func load(r io.Reader, dir string) ([]*Snippet, error) {
	var m manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errtrace.Wrap(errors.New("empty manifest"))
		}
		return nil, errtrace.Wrap(err)
	}

	entries := m.Snippets
	if m.entry != (entry{}) {
		if len(entries) > 0 {
			return nil, errtrace.Wrap(errors.New(
				"manifest must hold either a single snippet or a list of snippets, not both"))
		}
		entries = []entry{m.entry}
	}
	if len(entries) == 0 {
		return nil, errtrace.Wrap(errors.New("manifest has no snippets"))
	}

	snips := make([]*Snippet, len(entries))
	for i, e := range entries {
		s, err := e.build(dir)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("snippet %d: %w", i, err))
		}
		snips[i] = s
	}
	return snips, nil
}

func (e *entry) build(dir string) (*Snippet, error) {
	lang := e.Language
	if len(e.Lang) > 0 {
		if len(lang) > 0 && lang != e.Lang {
			return nil, errtrace.Wrap(fmt.Errorf(
				"conflicting language %q and lang %q", e.Language, e.Lang))
		}
		lang = e.Lang
	}

	code := e.Code
	if len(e.File) > 0 {
		if len(code) > 0 {
			return nil, errtrace.Wrap(errors.New("only one of code and file may be set"))
		}

		path := e.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		bs, err := os.ReadFile(path)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		code = string(bs)
	}

	s := &Snippet{
		Code:        code,
		Language:    lang,
		Title:       e.Title,
		Description: e.Description,
	}
	if err := s.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return s, nil
}

// Read builds a snippet from code read from r,
// and the provided metadata.
func Read(r io.Reader, language, title, description string) (*Snippet, error) {
	code, err := io.ReadAll(r)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	s := &Snippet{
		Code:        string(code),
		Language:    language,
		Title:       title,
		Description: description,
	}
	if err := s.Validate(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return s, nil
}
