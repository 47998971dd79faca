package setup

import (
	"github.com/prepdeck/prepdeck/internal/api"
)

// questionsMsg is sent when the generate-questions request returns.
type questionsMsg struct {
	Set *api.QuestionSet
	Err error
}
