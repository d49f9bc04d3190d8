package compliance

import "fmt"

// Mode selects how a rule violation in an existing game file affects the
// outcome of a check.
//
// Strict mode fails on any violation. Permissive mode still reports every
// violation but only fails when the file cannot be read at all.
type Mode int

const (
	Permissive Mode = iota
	Strict
)

func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names printed by String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return 0, fmt.Errorf("unknown compliance mode %q (want strict or permissive)", s)
	}
}

// Fails reports whether a file with the given number of rule violations
// should fail the run.
func (m Mode) Fails(violations int) bool {
	return m == Strict && violations > 0
}
