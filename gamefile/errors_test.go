package gamefile

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_ChainHelpers(t *testing.T) {
	cause := errors.New("yaml: bad indent")
	err := fmt.Errorf("generate: %w", wrapError(KindRender, "GAME-RENDER-001", "front matter does not parse", cause))

	if !IsKind(err, KindRender) || IsKind(err, KindInput) {
		t.Fatalf("IsKind mismatch for %v", err)
	}
	if got := RuleID(err); got != "GAME-RENDER-001" {
		t.Fatalf("RuleID = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable through Unwrap")
	}
	if got, want := err.Error(), "generate: front matter does not parse: yaml: bad indent"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	plain := errors.New("plain")
	if RuleID(plain) != "" || IsKind(plain, KindInput) {
		t.Fatalf("foreign errors must not report a rule")
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil {
		t.Fatalf("nil *Error should be safe to print")
	}
}

func TestInputError(t *testing.T) {
	err := InputError("GAME-IN-004", "output path is required")
	if !IsKind(err, KindInput) || RuleID(err) != "GAME-IN-004" {
		t.Fatalf("unexpected %#v", err)
	}
	if errors.Unwrap(err) != nil {
		t.Fatalf("InputError has no cause")
	}
}
