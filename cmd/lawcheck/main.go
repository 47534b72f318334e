// Command lawcheck runs the algebraic law suites of the functional instances
// with gopter and logs every property result.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/authcorp/libs/go/src/typeclass/config"
	"github.com/authcorp/libs/go/src/typeclass/errors"
	"github.com/authcorp/libs/go/src/typeclass/laws"
	"github.com/authcorp/libs/go/src/typeclass/observability"
	"github.com/jessevdk/go-flags"
	"github.com/leanovate/gopter"
)

// options holds the command line flags. Zero values leave the configured
// setting in place.
type options struct {
	ConfigFile    string   `long:"config" description:"YAML or JSON file with law-check settings"`
	Suites        []string `long:"suite" description:"Law suite to run; repeat for several (default: all)"`
	Seed          int64    `long:"seed" description:"Generator seed; each suite starts from it (default: taken from the clock)"`
	MinSuccessful int      `long:"min-successful" description:"Passing samples required per property"`
	MaxSize       int      `long:"max-size" description:"Upper bound on generated collection sizes"`
	LogLevel      string   `long:"loglevel" description:"Log level: debug, info, warn or error"`
	List          bool     `long:"list" description:"List the available suites and exit"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(stdout, e.Message)
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return errors.ExitCode(errors.InvalidConfig("flags", err.Error()))
	}

	if opts.List {
		listSuites(stdout)
		return 0
	}

	lc, err := loadSettings(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return errors.ExitCode(err)
	}

	logger := observability.NewLoggerWithWriter(stderr, lc.LogLevel).WithComponent("lawcheck")
	if err := check(context.Background(), lc, logger); err != nil {
		logger.Error("law check failed", err)
		return errors.ExitCode(err)
	}
	return 0
}

func listSuites(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range laws.Builtin() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
	}
	_ = tw.Flush()
}

// loadSettings layers the command line over the file and environment
// settings.
func loadSettings(opts options) (config.LawCheck, error) {
	lc, err := config.LoadLawCheck(opts.ConfigFile)
	if err != nil {
		return lc, err
	}
	if len(opts.Suites) > 0 {
		lc.Suites = opts.Suites
	}
	if opts.Seed != 0 {
		lc.Seed = opts.Seed
	}
	if opts.MinSuccessful != 0 {
		lc.MinSuccessfulTests = opts.MinSuccessful
	}
	if opts.MaxSize != 0 {
		lc.MaxSize = opts.MaxSize
	}
	if opts.LogLevel != "" {
		lc.LogLevel = opts.LogLevel
	}
	return lc, lc.Validate()
}

// check runs the selected suites one after another and returns a
// LAW_VIOLATION error naming the first failed property.
func check(ctx context.Context, lc config.LawCheck, logger *observability.Logger) error {
	suites, err := laws.Select(lc.Suites)
	if err != nil {
		return err
	}

	seed := laws.NewParameters(lc.MinSuccessfulTests, lc.MaxSize, lc.Seed).Seed()
	ctx = observability.WithRunID(ctx, fmt.Sprintf("seed-%d", seed))
	logger.WithContext(ctx).
		WithField("suites", len(suites)).
		WithField("min_successful", lc.MinSuccessfulTests).
		WithField("max_size", lc.MaxSize).
		Info("starting law check")

	var firstFailure error
	for _, suite := range suites {
		suiteCtx := observability.WithSuite(ctx, suite.Name)
		reporter := newLogReporter(logger.WithContext(suiteCtx))

		if laws.Properties(suiteParameters(lc, seed), suite).Run(reporter) {
			logger.WithContext(suiteCtx).WithField("properties", reporter.reported).Info("suite passed")
			continue
		}
		if firstFailure == nil {
			firstFailure = errors.LawViolation(suite.Name, reporter.failed[0])
		}
	}

	if firstFailure != nil {
		return firstFailure
	}
	logger.WithContext(ctx).Info("all laws hold")
	return nil
}

// suiteParameters gives every suite a fresh generator seeded with the run
// seed.
func suiteParameters(lc config.LawCheck, seed int64) *gopter.TestParameters {
	return laws.NewParameters(lc.MinSuccessfulTests, lc.MaxSize, seed)
}
