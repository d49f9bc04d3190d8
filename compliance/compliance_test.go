package compliance

import "testing"

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Strict, Permissive} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMode(%q) = %v", m.String(), got)
		}
	}
	if _, err := ParseMode("lenient"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestFails(t *testing.T) {
	tests := []struct {
		mode       Mode
		violations int
		want       bool
	}{
		{Strict, 0, false},
		{Strict, 2, true},
		{Permissive, 0, false},
		{Permissive, 2, false},
	}
	for _, tt := range tests {
		if got := tt.mode.Fails(tt.violations); got != tt.want {
			t.Fatalf("%v.Fails(%d) = %v, want %v", tt.mode, tt.violations, got, tt.want)
		}
	}
}
