package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"braces.dev/errtrace"
)

// Help is the topic requested with -h or -help.
//
//	snippet -h            # usage and flags
//	snippet -h manifest   # manifest file format
type Help string

// Help topics.
const (
	NoHelp      Help = ""
	DefaultHelp Help = "default"
	UsageHelp   Help = "usage"
)

var (
	//go:embed help/default.txt
	_defaultHelp string

	//go:embed help/config.txt
	_configHelp string

	//go:embed help/manifest.txt
	_manifestHelp string

	//go:embed help/highlight.txt
	_highlightHelp string

	_usageHelp = firstLineOf(_defaultHelp)

	_helpTopics = map[Help]string{
		"config":    _configHelp,
		"default":   _defaultHelp,
		"highlight": _highlightHelp,
		"manifest":  _manifestHelp,
		"usage":     _usageHelp,
	}
)

// firstLineOf returns the first line of s, including its newline.
func firstLineOf(s string) string {
	line, _, found := strings.Cut(s, "\n")
	if found {
		line += "\n"
	}
	return line
}

// helpTopicNames lists the topics accepted by -help, sorted.
func helpTopicNames() []string {
	names := make([]string, 0, len(_helpTopics))
	for h := range _helpTopics {
		names = append(names, string(h))
	}
	sort.Strings(names)
	return names
}

// Write prints the text for this topic.
// Nothing is printed for NoHelp.
func (h Help) Write(w io.Writer) error {
	if h == NoHelp {
		return nil
	}

	doc, ok := _helpTopics[h]
	if !ok {
		return errtrace.Wrap(fmt.Errorf("unknown help topic %q: valid values are %q", string(h), helpTopicNames()))
	}
	_, err := io.WriteString(w, doc)
	return errtrace.Wrap(err)
}

var _ flag.Getter = (*Help)(nil)

// Get returns the requested topic.
func (h *Help) Get() any { return *h }

// IsBoolFlag allows a bare "-h" to request the default topic.
func (*Help) IsBoolFlag() bool { return true }

// String returns the requested topic.
func (h Help) String() string { return string(h) }

// Set records the requested topic.
// Topic names are case insensitive.
func (h *Help) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "true" {
		s = string(DefaultHelp)
	}
	*h = Help(s)
	return nil
}
