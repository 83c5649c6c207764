// Package clipboard places text on the system clipboard.
package clipboard

import (
	"context"
	"errors"

	"braces.dev/errtrace"
	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned by [System]
// if no clipboard utility is available on the host.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer writes text to a clipboard.
type Writer interface {
	// WriteText places text on the clipboard as-is.
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function into a [Writer].
type WriterFunc func(ctx context.Context, text string) error

var _ Writer = WriterFunc(nil)

// WriteText calls the underlying function.
func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System is a [Writer] backed by the host's clipboard.
//
// On Linux this requires one of xclip, xsel, wl-copy or termux-clipboard-set.
type System struct {
	// write defaults to clipboard.WriteAll.
	write func(string) error

	// unsupported defaults to clipboard.Unsupported.
	unsupported bool
}

var _ Writer = (*System)(nil)

// WriteText places text on the system clipboard.
//
// A context that is already done aborts the write.
// Otherwise the write runs to completion.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errtrace.Wrap(err)
	}
	if s.unsupported || clipboard.Unsupported {
		return errtrace.Wrap(ErrUnsupported)
	}

	write := s.write
	if write == nil {
		write = clipboard.WriteAll
	}
	return errtrace.Wrap(write(text))
}
