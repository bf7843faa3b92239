package calc

import (
	"errors"
	"fmt"
)

// ErrorSentinel is what the display shows after a failed evaluation.
const ErrorSentinel = "Error"

// ErrEvaluation matches every EvaluationError via errors.Is.
var ErrEvaluation = errors.New("evaluation error")

// EvaluationError describes why an expression could not be evaluated.
type EvaluationError struct {
	Input  string
	Pos    int // -1 when the failure is not tied to a position
	Reason string
}

func newError(input string, pos int, format string, args ...interface{}) *EvaluationError {
	return &EvaluationError{
		Input:  input,
		Pos:    pos,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *EvaluationError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("evaluate %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("evaluate %q: %s at position %d", e.Input, e.Reason, e.Pos)
}

// Is reports whether target is ErrEvaluation.
func (e *EvaluationError) Is(target error) bool {
	return target == ErrEvaluation
}
