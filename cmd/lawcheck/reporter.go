package main

import (
	"strings"

	"github.com/authcorp/libs/go/src/typeclass/errors"
	"github.com/authcorp/libs/go/src/typeclass/observability"
	"github.com/leanovate/gopter"
)

// logReporter is a gopter.Reporter that writes one log entry per property.
type logReporter struct {
	logger   *observability.Logger
	reported int
	failed   []string
}

func newLogReporter(logger *observability.Logger) *logReporter {
	return &logReporter{logger: logger}
}

// ReportTestResult implements gopter.Reporter.
func (r *logReporter) ReportTestResult(name string, result *gopter.TestResult) {
	r.reported++

	entry := r.logger.
		WithField("property", name).
		WithField("status", result.Status.String()).
		WithField("succeeded", result.Succeeded).
		WithField("discarded", result.Discarded).
		WithField("elapsed", result.Time.String())

	if result.Passed() {
		entry.Debug("property holds")
		return
	}

	r.failed = append(r.failed, name)
	if len(result.Args) > 0 {
		args := make([]string, len(result.Args))
		for i, arg := range result.Args {
			args[i] = arg.ArgFormatted
		}
		entry = entry.WithField("counterexample", strings.Join(args, ", "))
	}

	cause := result.Error
	if cause == nil {
		cause = errors.New(errors.ErrCodeLawViolation, "counterexample found")
	}
	entry.Error("property falsified", cause)
}
