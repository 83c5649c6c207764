package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFunc(t *testing.T) {
	t.Parallel()

	var got string
	w := WriterFunc(func(_ context.Context, text string) error {
		got = text
		return nil
	})
	require.NoError(t, w.WriteText(context.Background(), " a\r\nb "))
	assert.Equal(t, " a\r\nb ", got)
}

func TestSystem_WriteText(t *testing.T) {
	t.Parallel()

	var got []string
	sys := System{
		write: func(s string) error {
			got = append(got, s)
			return nil
		},
	}
	require.NoError(t, sys.WriteText(context.Background(), "fmt.Println(1)\n"))
	assert.Equal(t, []string{"fmt.Println(1)\n"}, got)
}

func TestSystem_WriteText_error(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")
	sys := System{
		write: func(string) error { return giveErr },
	}
	err := sys.WriteText(context.Background(), "x")
	assert.ErrorIs(t, err, giveErr)
}

func TestSystem_WriteText_unsupported(t *testing.T) {
	t.Parallel()

	sys := System{
		unsupported: true,
		write: func(string) error {
			t.Error("write must not be called")
			return nil
		},
	}
	err := sys.WriteText(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSystem_WriteText_canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sys := System{
		write: func(string) error {
			t.Error("write must not be called")
			return nil
		},
	}
	err := sys.WriteText(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
