// Package copybutton implements the state behind a "copy to clipboard"
// control.
//
// A [Button] writes text to a clipboard when activated.
// After a successful write it reports itself as copied
// for a fixed delay, then reverts.
//
//	NotCopied --(successful write)--> Copied --(delay elapses)--> NotCopied
//
// Every successful write restarts the delay.
// Failed writes are logged and leave the state untouched.
package copybutton

import (
	"context"
	"log"
	"sync"
	"time"

	"go.abhg.dev/snippet/internal/clipboard"
)

// ResetDelay is how long a Button reports itself as copied
// after a successful write.
const ResetDelay = 2 * time.Second

// Labels displayed by the control.
const (
	CopyLabel   = "Copy"
	CopiedLabel = "Copied!"
)

// Glyphs displayed alongside the label.
const (
	CopyGlyph   = "⧉"
	CopiedGlyph = "✓"
)

// Button holds the copied state of a single copy control.
// It is safe for concurrent use.
//
// Buttons must be closed when they are no longer displayed.
type Button struct {
	w        clipboard.Writer
	log      *log.Logger
	delay    time.Duration
	clock    Clock
	onChange func(copied bool)

	mu      sync.Mutex
	copied  bool
	gen     uint64 // incremented on every re-arm
	pending Timer  // nil if no reset is scheduled
	closed  bool
}

// New builds a Button that writes to the given clipboard.
func New(w clipboard.Writer, opts ...Option) *Button {
	b := Button{
		w:     w,
		log:   log.Default(),
		delay: ResetDelay,
		clock: SystemClock,
	}
	for _, opt := range opts {
		opt.apply(&b)
	}
	return &b
}

// Copy writes code to the clipboard exactly as given.
//
// If the write succeeds, the button reports itself as copied,
// replacing any reset that is already pending with a new one.
// If the write fails, the failure is logged and nothing else happens.
//
// Copy is a no-op after Close.
func (b *Button) Copy(ctx context.Context, code string) {
	if b.isClosed() {
		return
	}

	if err := b.w.WriteText(ctx, code); err != nil {
		b.log.Printf("failed to copy text: %v", err)
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	if b.pending != nil {
		b.pending.Stop()
	}
	b.gen++
	gen := b.gen
	changed := !b.copied
	b.copied = true
	b.pending = b.clock.AfterFunc(b.delay, func() { b.reset(gen) })
	b.mu.Unlock()

	if changed {
		b.notify(true)
	}
}

// reset reverts the button to not copied
// if no newer copy has re-armed it since gen.
func (b *Button) reset(gen uint64) {
	b.mu.Lock()
	if b.closed || gen != b.gen || !b.copied {
		b.mu.Unlock()
		return
	}
	b.copied = false
	b.pending = nil
	b.mu.Unlock()

	b.notify(false)
}

func (b *Button) notify(copied bool) {
	if b.onChange != nil {
		b.onChange(copied)
	}
}

func (b *Button) isClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Copied reports whether the most recent successful copy
// happened less than the reset delay ago.
func (b *Button) Copied() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copied
}

// Label returns the text to display on the control.
func (b *Button) Label() string {
	if b.Copied() {
		return CopiedLabel
	}
	return CopyLabel
}

// Glyph returns the icon to display next to the label.
func (b *Button) Glyph() string {
	if b.Copied() {
		return CopiedGlyph
	}
	return CopyGlyph
}

// Close cancels any pending reset.
// The button's state is frozen afterwards.
// Close may be called more than once.
func (b *Button) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	if b.pending != nil {
		b.pending.Stop()
		b.pending = nil
	}
}
