// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"mailgen-core/roster"
	"mailgen/internal/cli"
	"mailgen/internal/config"
	"mailgen/internal/logging"
	"mailgen/internal/version"
	"mailgen/internal/writers"
	"mailgen/pkg/api"
)

// Distinct glue failure kinds; the core itself never errors.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrOutputWrite   = errors.New("cannot write output")
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mailgen")
	fs.SetOutput(io.Discard)

	usage := func() int {
		cli.Usage(fs, outw, "mailgen")
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, nil)
		return usage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return usage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mailgen version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	// Config file / environment supply defaults for flags left unset.
	v, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	config.Apply(v, fs, &opts)

	if err := cli.ValidateOutput(opts.Output); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if err := cli.ValidateDomain(opts.Domain); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	log := logging.Build(stderr, opts.LogLevel, opts.Quiet)
	defer func() { _ = log.Sync() }()

	text, err := readInput(opts.InputFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if parent.Err() != nil {
		return 130
	}

	entries := roster.Process(text, opts.Domain)
	rows := toRows(entries, opts.Simple)
	log.Info("resolved addresses",
		zap.Int("rows", len(rows)),
		zap.String("domain", opts.Domain),
		zap.String("format", opts.Output),
	)

	render := func(w io.Writer) error {
		return writers.Write(opts.Output, w, rows, opts.Header, opts.Simple)
	}
	if opts.OutputFile != "" {
		if err := writeFile(opts.OutputFile, render); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		log.Info("wrote output file", zap.String("path", opts.OutputFile))
	} else {
		err := render(outw)
		if err == nil {
			err = outw.Flush()
		}
		if writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, fmt.Errorf("%w: %v", ErrOutputWrite, err))
			return 3
		}
	}

	if len(rows) == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// readInput slurps the whole input up front; the scan works on the full
// text in memory.
func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	bw := bufio.NewWriter(f)
	err = render(bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}

// toRows projects entries onto the wire schema, collapsing to unique
// addresses in simple mode.
func toRows(entries []roster.Entry, simple bool) []api.EntryV1 {
	if simple {
		emails := roster.Emails(entries)
		rows := make([]api.EntryV1, 0, len(emails))
		for _, e := range emails {
			rows = append(rows, api.EntryV1{Email: e})
		}
		return rows
	}
	rows := make([]api.EntryV1, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, api.EntryV1{List: e.List, Email: e.Email})
	}
	return rows
}
