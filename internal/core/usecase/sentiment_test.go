package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func TestSentimentEmptyTextDefaultsToNeutral(t *testing.T) {
	classifier := &fakeClassifier{label: domain.EmotionJoy}
	uc := NewSentimentUseCase(classifier)

	label, err := uc.Classify(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if label != domain.EmotionNeutral {
		t.Fatalf("expected neutral for empty text, got %q", label)
	}
	if classifier.calls != 0 {
		t.Fatalf("expected no model call for empty text, got %d", classifier.calls)
	}
}

func TestSentimentReturnsTopLabel(t *testing.T) {
	uc := NewSentimentUseCase(&fakeClassifier{label: domain.EmotionGratitude})
	label, err := uc.Classify(context.Background(), "thanks for the quick fix!")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if label != domain.EmotionGratitude {
		t.Fatalf("expected gratitude, got %q", label)
	}
}

func TestSentimentInfrastructureFailureIsTyped(t *testing.T) {
	uc := NewSentimentUseCase(&fakeClassifier{err: errors.New("connection refused")})
	_, err := uc.Classify(context.Background(), "anything")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}

func TestSentimentOutOfVocabularyIsTypedNotDefaulted(t *testing.T) {
	uc := NewSentimentUseCase(&fakeClassifier{label: "euphoric"})
	_, err := uc.Classify(context.Background(), "anything")
	if err == nil {
		t.Fatalf("expected error for out-of-vocabulary label")
	}
	if !domain.IsKind(err, domain.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}

func TestSentimentIdempotentForSameText(t *testing.T) {
	uc := NewSentimentUseCase(&fakeClassifier{label: domain.EmotionAnger})
	first, err := uc.Classify(context.Background(), "this is broken again")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	second, err := uc.Classify(context.Background(), "this is broken again")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if first != second {
		t.Fatalf("expected identical labels, got %q then %q", first, second)
	}
}
