package questiongen

import (
	"fmt"

	"github.com/prepdeck/prepdeck/internal/interview"
)

// ValidationError describes why a generated set was rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated question set rejected: %s", e.Message)
}

// validateSet checks the structural requirements the schema cannot express:
// the count must match the session length and coding questions may only
// appear when the setup asked for them.
func validateSet(questions []interview.Question, md interview.Metadata, want int) error {
	if len(questions) != want {
		return &ValidationError{Message: fmt.Sprintf("got %d questions, want %d", len(questions), want)}
	}
	for i, q := range questions {
		if q.Text == "" {
			return &ValidationError{Message: fmt.Sprintf("question %d has empty text", i+1)}
		}
		if q.Coding && !md.IncludeCoding {
			return &ValidationError{Message: fmt.Sprintf("question %d is a coding question but coding was not requested", i+1)}
		}
	}
	return nil
}
