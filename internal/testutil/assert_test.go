package testutil

import (
	"errors"
	"testing"
)

// The helpers take a *testing.T directly, so the failure paths cannot be
// observed without failing the test run; these cover the success paths and
// the context formatting, which is independently testable.

func TestAssertionSuccessPaths(t *testing.T) {
	AssertEqual(t, "k", "k")
	AssertEqual(t, []string{"+R", "-p"}, []string{"+R", "-p"}, "token list")

	AssertNoError(t, nil)
	AssertError(t, errors.New("invalid terminal marker"), "token %q", "KK")

	AssertTrue(t, true)
	AssertFalse(t, false, "no invalid tokens seen")

	AssertContains(t, "K: valid", "valid")
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name    string
		context []any
		want    string
	}{
		{"no context", nil, ""},
		{"plain string", []any{"checking side"}, "checking side: "},
		{"format and args", []any{"token %q", "+r"}, `token "+r": `},
		{"non-string value", []any{42}, "42: "},
		{"non-string with extras", []any{42, "ignored"}, "42: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prefix(tt.context); got != tt.want {
				t.Errorf("prefix(%v) = %q, want %q", tt.context, got, tt.want)
			}
		})
	}
}
