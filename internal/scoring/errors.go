package scoring

import (
	"fmt"
	"strings"
)

// Validation error kinds. Incomplete is the recoverable "finish the
// questionnaire" state; invalid means the client and catalog disagree.
const (
	KindIncomplete = "incomplete_assessment"
	KindInvalid    = "invalid_answers"
)

// ValidationError reports why an answer set was rejected before scoring
type ValidationError struct {
	Kind       string   `json:"kind"`
	Missing    []string `json:"missing,omitempty"`    // catalog questions with no answer
	Duplicates []string `json:"duplicates,omitempty"` // questions answered more than once
	Unknown    []string `json:"unknown,omitempty"`    // answer ids absent from the catalog
	BadValues  []string `json:"badValues,omitempty"`  // answers whose value is not a declared option
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%d unanswered question(s)", len(e.Missing)))
	}
	if len(e.Duplicates) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate answers for %s", strings.Join(e.Duplicates, ", ")))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown question id(s) %s", strings.Join(e.Unknown, ", ")))
	}
	if len(e.BadValues) > 0 {
		parts = append(parts, fmt.Sprintf("non-option values for %s", strings.Join(e.BadValues, ", ")))
	}
	if len(parts) == 0 {
		return "invalid assessment input"
	}
	if e.Kind == KindInvalid {
		return "invalid answers: " + strings.Join(parts, "; ")
	}
	return "incomplete assessment: " + strings.Join(parts, "; ")
}
