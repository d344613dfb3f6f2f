// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/pflag"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	InputFile string // path or "-" for stdin

	// Synthesis
	Domain string

	// Output
	OutputFile string // empty = stdout
	Output     string // csv | tsv | json | jsonl | xlsx
	Simple     bool   // unique emails only, no list column
	Header     bool   // true unless --no-header

	// Behavior
	NoMatchExitCode int
	ConfigFile      string
	LogLevel        string
	Quiet           bool

	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Domain presence/format is checked later, after config defaults are merged
// (see ValidateDomain).
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.StringVar(&opt.Domain, "domain", "", "domain for synthesized addresses, e.g. example.com [*]")
	fs.StringVarP(&opt.OutputFile, "output-file", "o", "", "write to file instead of stdout")
	fs.StringVar(&opt.Output, "output", "csv", "output format: csv | tsv | json | jsonl | xlsx [csv]")
	fs.BoolVar(&opt.Simple, "simple", false, "emit unique emails only, without list titles [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress the header row [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no addresses result [0]")
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML config file with flag defaults")
	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress diagnostics [false]")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, pflag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if err := ValidateOutput(opt.Output); err != nil {
		return opt, err
	}
	if opt.NoMatchExitCode < 0 {
		return opt, errors.New("--no-match-exit-code must be ≥ 0")
	}
	switch args := fs.Args(); len(args) {
	case 0:
		return opt, errors.New("an input file (or '-' for stdin) is required")
	case 1:
		opt.InputFile = args[0]
	default:
		return opt, fmt.Errorf("expected one input file, got %d", len(args))
	}
	return opt, nil
}

// ValidateOutput gates the --output format name. Config-file defaults go
// through it again after merging.
func ValidateOutput(format string) error {
	switch format {
	case "csv", "tsv", "json", "jsonl", "xlsx":
		return nil
	default:
		return fmt.Errorf("invalid --output %q", format)
	}
}

// domainRe is a shape check only; the core uses the domain verbatim, so the
// gate lives here at the boundary.
var domainRe = regexp.MustCompile(`^[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidateDomain checks that a synthesis domain was supplied and looks like
// a hostname with a TLD.
func ValidateDomain(domain string) error {
	if domain == "" {
		return errors.New("--domain is required (flag, config file, or MAILGEN_DOMAIN)")
	}
	if !domainRe.MatchString(domain) {
		return fmt.Errorf("invalid domain format %q", domain)
	}
	return nil
}
