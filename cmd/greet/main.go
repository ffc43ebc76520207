// Command greet greets everyone named on the command line.
//
//	greet -h | -v | --version
//	greet [ -c | --count <count> ] [ -a | --adjective [<adjective>] ] <name>...
//
// Set GREET_DEBUG=1 to log option dispatching to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/cardinalby/go-argolis"
	"github.com/fatih/color"
)

const version = "1.0"

var errColor = color.New(color.FgRed, color.Bold)

func main() {
	os.Exit(run(os.Args, os.Getenv, os.Stdout, os.Stderr))
}

type greeting struct {
	count       int
	adjective   string
	names       []string
	showHelp    bool
	showVersion bool
	countErr    error
}

func (g *greeting) newParser() *argolis.Parser {
	p := argolis.NewParser(
		// -v is version, not verbose: it doesn't take a value
		argolis.MustOptSpec('v', "version", argolis.NoArg, func(argolis.OptSpec, argolis.Value) {
			g.showVersion = true
		}),
		argolis.MustOptSpec('h', "", argolis.NoArg, func(argolis.OptSpec, argolis.Value) {
			g.showHelp = true
		}),
		argolis.MustOptSpec('c', "count", argolis.ExpectArg, g.setCount),
		argolis.MustOptSpec('a', "adjective", argolis.MaybeArg, func(_ argolis.OptSpec, value argolis.Value) {
			g.adjective = value.Or("dear")
		}),
	)
	p.SetCombiAllowed(true)
	p.SetAbortOnError(true)
	p.OnArg(func(arg string) {
		g.names = append(g.names, arg)
	})
	return p
}

func (g *greeting) setCount(spec argolis.OptSpec, value argolis.Value) {
	count, err := strconv.Atoi(value.String())
	if err != nil || count <= 0 {
		g.countErr = fmt.Errorf("%s must be a positive integer, got %q", spec, value.String())
		return
	}
	g.count = count
}

func run(argv []string, getenv func(string) string, stdout, stderr io.Writer) int {
	g := &greeting{count: 1}
	p := g.newParser()
	if getenv("GREET_DEBUG") != "" {
		p.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	p.OnErr(func(err argolis.Error) {
		_, _ = errColor.Fprintf(stderr, "error with option: %s\n", err.Item)
	})

	if len(argv) < 2 {
		printUsage(stdout)
		return 0
	}
	if err := p.Parse(argv); err != nil {
		if errors.Is(err, argolis.ErrBadOpt) {
			printUsage(stderr)
		}
		return 1
	}
	if g.countErr != nil {
		_, _ = errColor.Fprintf(stderr, "error: %v\n", g.countErr)
		return 1
	}

	switch {
	case g.showHelp:
		printUsage(stdout)
		return 0
	case g.showVersion:
		_, _ = fmt.Fprintf(stdout, "greet version %s\n", version)
		return 0
	}

	for _, name := range g.names {
		for i := 0; i < g.count; i++ {
			if g.adjective == "" {
				_, _ = fmt.Fprintf(stdout, "Hello, %s\n", name)
			} else {
				_, _ = fmt.Fprintf(stdout, "Hello, %s %s\n", g.adjective, name)
			}
		}
	}
	return 0
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, "usage:\n"+
		"greet -h | -v | --version\n"+
		"greet [ -c | --count <count> ] [ -a | --adjective [<adjective>] ] <name>...\n")
}
