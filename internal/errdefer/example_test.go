package errdefer_test

import (
	"fmt"
	"os"
	"path/filepath"

	"go.abhg.dev/snippet/internal/errdefer"
)

func writeSnippet(dir, code string) (err error) {
	f, err := os.Create(filepath.Join(dir, "snippet.go"))
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, f)
	// NOTE: err must be a named return.

	_, err = f.WriteString(code)
	return err
}

func ExampleClose() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := writeSnippet(dir, "fmt.Println(1)\n"); err != nil {
		panic(err)
	}

	bs, err := os.ReadFile(filepath.Join(dir, "snippet.go"))
	if err != nil {
		panic(err)
	}
	fmt.Print(string(bs))
	// Output: fmt.Println(1)
}
