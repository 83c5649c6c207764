package main

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: "usage"},
		{give: "default"},
		{give: "config"},
		{give: "manifest"},
		{give: "highlight"},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_noTopic(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	require.NoError(t, NoHelp.Write(&buff))
	assert.Empty(t, buff.String())
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want Help
	}{
		{desc: "absent", want: NoHelp},
		{desc: "bare", give: []string{"-h"}, want: DefaultHelp},
		{desc: "topic", give: []string{"-h=Manifest"}, want: "manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
			var h Help
			fset.Var(&h, "h", "")
			require.NoError(t, fset.Parse(tt.give))
			assert.Equal(t, tt.want, h)
			assert.Equal(t, tt.want, h.Get())
		})
	}
}

func TestUsageHelp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "USAGE: snippet [OPTIONS] [FILE]\n", _usageHelp)
}

func TestFirstLineOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "usage: snippet\n", firstLineOf("usage: snippet\nmore\n"))
	assert.Equal(t, "no newline", firstLineOf("no newline"))
	assert.Equal(t, "", firstLineOf(""))
}
