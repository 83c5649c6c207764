// Package snippet defines the input accepted by code snippet widgets.
//
// A [Snippet] is handed to a widget once and never modified afterwards.
// Widgets render its Code exactly as given: no trimming,
// no newline normalization.
package snippet

import (
	"errors"

	"braces.dev/errtrace"
)

var (
	// ErrNoCode is returned by [Snippet.Validate]
	// if the snippet has no code.
	ErrNoCode = errors.New("code must be provided")

	// ErrNoLanguage is returned by [Snippet.Validate]
	// if the snippet does not name a language.
	ErrNoLanguage = errors.New("language must be provided")
)

// Snippet is a titled block of source code with a description.
type Snippet struct {
	// Code is the source text.
	Code string

	// Language names the highlighting grammar for Code.
	// Unknown languages are passed through to the highlighter as-is.
	Language string

	// Title is the heading displayed above the snippet.
	Title string

	// Description is HTML shown between the title and the code.
	Description string
}

// Validate reports whether the snippet has the fields
// required to render it.
//
// Title and Description are optional.
// Language is not checked against any set of known grammars.
func (s *Snippet) Validate() error {
	if len(s.Code) == 0 {
		return errtrace.Wrap(ErrNoCode)
	}
	if len(s.Language) == 0 {
		return errtrace.Wrap(ErrNoLanguage)
	}
	return nil
}
