package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

const priorityInstruction = `You are a customer support triage assistant.
Classify the urgency of the ticket text into exactly one of: High, Medium, Low.
Respond with only that single word, nothing else.`

// PriorityResolver applies ordered keyword tiers before delegating to a
// language model. Keyword checks keep common cases cheap and
// deterministic; the model handles ambiguous text only.
type PriorityResolver struct {
	model          ports.ChatModel
	highKeywords   []string
	mediumKeywords []string
	lowKeywords    []string
}

func NewPriorityResolver(model ports.ChatModel, high, medium, low []string) *PriorityResolver {
	return &PriorityResolver{
		model:          model,
		highKeywords:   high,
		mediumKeywords: medium,
		lowKeywords:    low,
	}
}

// Resolve returns exactly one of High, Medium, Low. Tiers are checked
// strictly in High > Medium > Low order; the first matching tier wins
// regardless of lower-tier keywords also present.
func (r *PriorityResolver) Resolve(ctx context.Context, text string) (domain.PriorityLevel, error) {
	lowered := strings.ToLower(text)

	if containsAny(lowered, r.highKeywords) {
		return domain.PriorityHigh, nil
	}
	if containsAny(lowered, r.mediumKeywords) {
		return domain.PriorityMedium, nil
	}
	if containsAny(lowered, r.lowKeywords) {
		return domain.PriorityLow, nil
	}

	// One retry on out-of-vocabulary model output, then a typed failure.
	var lastRaw string
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := r.model.Complete(ctx, priorityInstruction, text)
		if err != nil {
			return "", domain.WrapError(domain.ErrPriorityResolution, "resolve priority", err)
		}
		if level, ok := domain.ParsePriorityLevel(raw); ok {
			return level, nil
		}
		lastRaw = raw
	}
	return "", domain.WrapError(
		domain.ErrPriorityResolution,
		"resolve priority",
		fmt.Errorf("model returned invalid label %q after retry", lastRaw),
	)
}

func containsAny(loweredText string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(loweredText, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
