package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/authcorp/libs/go/src/typeclass/observability"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLoggerWithWriter(&buf, "debug").
		WithComponent("lawcheck").
		WithField("passed", 3)

	logger.Debug("starting")
	logger.Error("suite failed", errors.New("counterexample"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	require.Equal(t, "debug", entries[0]["level"])
	require.Equal(t, "lawcheck", entries[0]["component"])
	require.EqualValues(t, 3, entries[0]["passed"])
	require.Equal(t, "starting", entries[0]["message"])
	require.Equal(t, "counterexample", entries[1]["error"])
	require.Contains(t, entries[0], "time")
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLoggerWithWriter(&buf, "warn")

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "shown", entries[0]["message"])
}

func TestLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewLoggerWithWriter(&buf, "loud")

	logger.Debug("hidden")
	logger.Info("shown")

	require.Len(t, decodeLines(t, &buf), 1)
}

func TestLoggerWithContext(t *testing.T) {
	ctx := observability.WithSuite(observability.WithRunID(context.Background(), "run-1"), "option")
	require.Equal(t, "run-1", observability.GetRunID(ctx))
	require.Equal(t, "option", observability.GetSuite(ctx))
	require.Empty(t, observability.GetSuite(context.Background()))

	var buf bytes.Buffer
	observability.NewLoggerWithWriter(&buf, "info").WithContext(ctx).Info("done")

	entries := decodeLines(t, &buf)
	require.Equal(t, "run-1", entries[0]["run_id"])
	require.Equal(t, "option", entries[0]["suite"])
}
