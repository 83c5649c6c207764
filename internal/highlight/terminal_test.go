package highlight

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestTerminal(t *testing.T) {
	t.Parallel()

	got, err := Terminal(Lex("x := 1\n", "go"), nil)
	require.NoError(t, err)
	assert.Contains(t, got, "\x1b[")
	assert.Equal(t, "x := 1\n", _ansiEscape.ReplaceAllString(got, ""))
}

func TestTerminal_spans(t *testing.T) {
	t.Parallel()

	got, err := Terminal(&Code{
		Spans: []Span{
			&ErrorSpan{Msg: "Unable to highlight", Err: errors.New("sadness")},
			&TextSpan{Text: []byte("plain")},
		},
	}, PlainStyle)
	require.NoError(t, err)
	assert.Equal(t, "Unable to highlight: sadness\nplain", got)
}

func TestTerminal_nil(t *testing.T) {
	t.Parallel()

	got, err := Terminal(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
