package usecase

import (
	"context"
	"fmt"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

// contextCharBudget bounds the retrieval context fed into generation.
// Truncation counts runes, not bytes, so a cut never lands inside a
// multi-byte character. A long top match can crowd out lower-ranked
// context, which is an accepted tradeoff.
const contextCharBudget = 1000

const answerInstructionFormat = `You are a helpful AI assistant for customer support.
Use only the pieces of context below to answer the question at the end.
If you don't know the answer from the context, just say that you don't
know and that the concern has been referred to the appropriate team.
Never make up an answer.

Context:
%s`

// AnswerGenerator produces a grounded answer from retrieval context via
// an explicitly selected backend. It is stateless per call; credential
// rotation lives inside the backend clients.
type AnswerGenerator struct {
	backends map[domain.LLMBackend]ports.ChatModel
}

func NewAnswerGenerator(backends map[domain.LLMBackend]ports.ChatModel) *AnswerGenerator {
	return &AnswerGenerator{backends: backends}
}

func (g *AnswerGenerator) Generate(ctx context.Context, question, contextText string, backend domain.LLMBackend) (string, error) {
	model, ok := g.backends[backend]
	if !ok {
		return "", domain.WrapError(
			domain.ErrGenerationFailed,
			"generate answer",
			fmt.Errorf("no model configured for backend %q", backend),
		)
	}

	truncated := contextText
	if runes := []rune(contextText); len(runes) > contextCharBudget {
		truncated = string(runes[:contextCharBudget])
	}

	answer, err := model.Complete(ctx, fmt.Sprintf(answerInstructionFormat, truncated), question)
	if err != nil {
		return "", domain.WrapError(domain.ErrGenerationFailed, "generate answer", err)
	}
	return answer, nil
}
