package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

// SentimentUseCase maps ticket text to the single highest-confidence
// emotion label. Empty text is a legitimate input and resolves to
// neutral without touching the model.
type SentimentUseCase struct {
	classifier ports.SentimentClassifier
}

func NewSentimentUseCase(classifier ports.SentimentClassifier) *SentimentUseCase {
	return &SentimentUseCase{classifier: classifier}
}

func (uc *SentimentUseCase) Classify(ctx context.Context, text string) (domain.EmotionLabel, error) {
	if strings.TrimSpace(text) == "" {
		return domain.EmotionNeutral, nil
	}

	label, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		return "", domain.WrapError(domain.ErrClassifierUnavailable, "classify sentiment", err)
	}

	parsed, ok := domain.ParseEmotionLabel(string(label))
	if !ok {
		return "", domain.WrapError(
			domain.ErrClassifierUnavailable,
			"classify sentiment",
			fmt.Errorf("out-of-vocabulary label %q", label),
		)
	}
	return parsed, nil
}
