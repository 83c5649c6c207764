// Package highlight provides support to highlight source code blocks.
// It uses the Chroma library to do this work.
//
// Source code is lexed with [Lex] into a [Code] value,
// which is comprised of multiple [Span]s.
// A [Highlighter] turns that into HTML,
// and [Terminal] turns it into ANSI-colored text.
package highlight
