package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	out        string
	config     string
	preview    bool
	workers    int
	extensions []string
	verbose    bool
	quiet      bool
	version    bool
}

// parseFlags parses argv into flags and positional arguments (markdown
// files or directories).
func parseFlags(argv []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdfences", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.out, "out", "o", "", "output directory (default: stdout for a single file)")
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.BoolVar(&f.preview, "preview", false, "render a full HTML preview instead of filtered markdown")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batch processing (0 = CPU count)")
	fs.StringSliceVar(&f.extensions, "ext", nil, "markdown extensions to process (default .md,.markdown)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: mdfences [flags] <file-or-dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replaces interactive fences (quiz, terminal, command-builder, exercise,")
	fmt.Fprintln(w, "code-walkthrough) in markdown pages with HTML component containers.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
