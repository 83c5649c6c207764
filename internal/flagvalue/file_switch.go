package flagvalue

import (
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag for optional output such as -debug.
//
//	-debug           write to the fallback writer
//	-debug=out.log   write to out.log
//
// Leaving the flag out discards the output.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the destination: "" when unset, "-" for the fallback,
// or a file path.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the destination as described in Get.
func (fs *FileSwitch) String() string { return string(*fs) }

// IsBoolFlag allows the flag to be passed without a value.
func (*FileSwitch) IsBoolFlag() bool { return true }

// Set records the destination.
// A bare flag arrives as "true" and selects the fallback writer.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether the flag was passed at all.
func (fs *FileSwitch) Bool() bool { return len(*fs) > 0 }

// Create opens the destination.
// The returned close function must be called when done.
//
// Unset flags yield [io.Discard], a bare flag yields fallback,
// and a path is created (truncating any existing file).
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	}

	f, err := os.Create(string(*fs))
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return f, f.Close, nil
}

// Logger wraps the destination from Create in a logger.
func (fs *FileSwitch) Logger(fallback io.Writer) (_ *log.Logger, close func() error, err error) {
	w, close, err := fs.Create(fallback)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return log.New(w, "", 0), close, nil
}

func nopClose() error { return nil }
