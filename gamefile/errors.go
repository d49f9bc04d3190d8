package gamefile

import "errors"

// Kind groups rule IDs by the stage that raised them. The CLI maps KindInput
// to a fatal exit before any file is written.
type Kind string

const (
	// KindInput: a required submission field is missing or unusable.
	KindInput Kind = "Input"
	// KindRender: the assembled document could not be serialized.
	KindRender Kind = "Render"
	// KindCheck: an existing game file breaks a canonical key rule.
	KindCheck    Kind = "Check"
	KindInternal Kind = "Internal"
)

// Error carries a rule ID such as GAME-IN-001 or GAME-CHK-013 alongside a
// readable message. Tools report the rule ID; the message wording may change
// between releases.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return wrapError(kind, ruleID, msg, nil)
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// InputError lets boundary code outside this package (env readers, the CLI)
// report its own required-field failures with the same taxonomy.
func InputError(ruleID, msg string) error {
	return newError(KindInput, ruleID, msg)
}

func asError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsKind is true when err, or anything it wraps, is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	e, ok := asError(err)
	return ok && e.Kind == kind
}

// RuleID extracts the rule ID from err's chain; it is empty for errors that
// did not come from this package.
func RuleID(err error) string {
	if e, ok := asError(err); ok {
		return e.RuleID
	}
	return ""
}
