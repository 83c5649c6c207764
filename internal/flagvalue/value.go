// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"errors"
	"flag"
)

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// Path is a flag that holds a non-empty file path.
//
// Combine it with [ListOf] for repeatable flags.
type Path string

var _ flag.Getter = (*Path)(nil)

// Get returns the path as a string.
func (p *Path) Get() any { return string(*p) }

// String returns the path.
func (p *Path) String() string { return string(*p) }

// Set receives the path from the command line.
// Empty paths are rejected.
func (p *Path) Set(s string) error {
	if len(s) == 0 {
		return errors.New("path must not be empty")
	}
	*p = Path(s)
	return nil
}
