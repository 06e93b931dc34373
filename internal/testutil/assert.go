// Package testutil provides shared assertion helpers for the pin-go tests.
// All helpers accept optional trailing context arguments: a lone value, or a
// format string followed by its arguments.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual fails the test when got and want differ, reporting a cmp diff.
func AssertEqual(t *testing.T, got, want any, context ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(context), diff)
	}
}

// AssertNoError fails the test when err is non-nil.
func AssertNoError(t *testing.T, err error, context ...any) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", prefix(context), err)
	}
}

// AssertError fails the test when err is nil.
func AssertError(t *testing.T, err error, context ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("%sexpected an error, got nil", prefix(context))
	}
}

// AssertTrue fails the test when the condition is false.
func AssertTrue(t *testing.T, condition bool, context ...any) {
	t.Helper()
	if !condition {
		t.Errorf("%scondition is false, want true", prefix(context))
	}
}

// AssertFalse fails the test when the condition is true.
func AssertFalse(t *testing.T, condition bool, context ...any) {
	t.Helper()
	if condition {
		t.Errorf("%scondition is true, want false", prefix(context))
	}
}

// AssertContains fails the test when substr does not occur in got.
func AssertContains(t *testing.T, got, substr string, context ...any) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(context), got, substr)
	}
}

// prefix renders the optional context arguments as a "context: " prefix for
// a failure message, or "" when no context was given.
func prefix(context []any) string {
	switch {
	case len(context) == 0:
		return ""
	case len(context) == 1:
		return fmt.Sprint(context[0]) + ": "
	default:
		format, ok := context[0].(string)
		if !ok {
			return fmt.Sprint(context[0]) + ": "
		}
		return fmt.Sprintf(format, context[1:]...) + ": "
	}
}
