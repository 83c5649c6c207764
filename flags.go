package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/snippet/internal/flagvalue"
	"go.abhg.dev/snippet/internal/highlight"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that hold flag values.
const _envPrefix = "SNIPPET"

// params holds all arguments for snippet.
type params struct {
	version bool
	help    Help

	Config string
	Debug  flagvalue.FileSwitch

	// Snippet:
	Language    string
	Title       string
	Description string
	Manifests   []flagvalue.Path

	// HTML output:
	OutputFile       string
	StaticDir        string
	PageTitle        string
	Embedded         bool
	TrustDescription bool
	Style            string
	UseClasses       bool

	// Modes:
	Copy  bool
	TUI   bool
	Serve string

	// File holds the code, or "-" for stdin.
	File string
}

// cliParser parses the command line arguments for snippet.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("snippet", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Snippet:
	flag.StringVar(&p.Language, "lang", "", "")
	flag.StringVar(&p.Title, "title", "", "")
	flag.StringVar(&p.Description, "desc", "", "")
	flag.Var(flagvalue.ListOf(&p.Manifests), "f", "")

	// HTML output:
	flag.StringVar(&p.OutputFile, "out", "-", "")
	flag.StringVar(&p.StaticDir, "static", "", "")
	flag.StringVar(&p.PageTitle, "page-title", "", "")
	flag.BoolVar(&p.Embedded, "embed", false, "")
	flag.BoolVar(&p.TrustDescription, "trust-desc", false, "")
	flag.StringVar(&p.Style, "style", highlight.DefaultStyle.Name, "")
	flag.BoolVar(&p.UseClasses, "classes", false, "")

	// Modes:
	flag.BoolVar(&p.Copy, "copy", false, "")
	flag.BoolVar(&p.TUI, "tui", false, "")
	flag.StringVar(&p.Serve, "serve", "", "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "snippet", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			if _, ok := _helpTopics[h]; ok {
				p.help = h
			}
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if err := cmd.validate(p, args); err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

func (cmd *cliParser) validate(p *params, args []string) error {
	var modes int
	for _, on := range []bool{p.Copy, p.TUI, len(p.Serve) > 0} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("only one of -copy, -tui, and -serve may be used")
	}

	if _, ok := highlight.StyleFor(p.Style); !ok {
		return fmt.Errorf("unknown style %q: see -help=highlight", p.Style)
	}

	if len(args) > 1 {
		return fmt.Errorf("too many arguments: %q", args[1:])
	}

	if len(p.Manifests) > 0 {
		if len(args) > 0 {
			return errors.New("cannot use -f with a FILE argument")
		}
		if len(p.Language) > 0 || len(p.Title) > 0 || len(p.Description) > 0 {
			return errors.New("cannot use -f with -lang, -title, or -desc")
		}
		return nil
	}

	if len(p.Language) == 0 {
		return errors.New("please provide a language with -lang")
	}

	p.File = "-"
	if len(args) > 0 {
		p.File = args[0]
	}
	return nil
}
