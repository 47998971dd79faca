// Package questiongen generates interview question sets directly from an LLM
// provider. It is the offline counterpart of the backend's generate-questions
// endpoint and produces the same shape, so the setup screen doesn't care
// which one it talked to.
package questiongen

import (
	"context"

	"github.com/prepdeck/prepdeck/internal/api"
)

// Source produces a question set for a setup form. Implemented by the backend
// client (online) and by LLMGenerator (offline).
type Source interface {
	GenerateQuestions(ctx context.Context, in api.GenerateQuestionsInput) (*api.QuestionSet, error)
}
