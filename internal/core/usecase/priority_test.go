package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func newTestResolver(model *fakeChatModel) *PriorityResolver {
	return NewPriorityResolver(
		model,
		[]string{"urgent", "critical", "emergency"},
		[]string{"soon", "within a week"},
		[]string{"later", "not urgent", "trivial"},
	)
}

func TestPriorityHighKeywordShortCircuits(t *testing.T) {
	model := &fakeChatModel{}
	resolver := newTestResolver(model)

	level, err := resolver.Resolve(context.Background(), "This is URGENT, please help")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if level != domain.PriorityHigh {
		t.Fatalf("expected High, got %q", level)
	}
	if model.calls != 0 {
		t.Fatalf("expected no model call, got %d", model.calls)
	}
}

func TestPriorityTierOrderingHighBeatsLow(t *testing.T) {
	resolver := newTestResolver(&fakeChatModel{})
	// "not urgent" contains both a Low keyword and the High keyword
	// "urgent" as a substring; the High tier is checked first and wins.
	level, err := resolver.Resolve(context.Background(), "it is not urgent but critical later")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if level != domain.PriorityHigh {
		t.Fatalf("expected High by tier ordering, got %q", level)
	}
}

func TestPriorityMediumThenLowTiers(t *testing.T) {
	resolver := newTestResolver(&fakeChatModel{})

	level, err := resolver.Resolve(context.Background(), "please handle within a week, no later")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if level != domain.PriorityMedium {
		t.Fatalf("expected Medium, got %q", level)
	}

	level, err = resolver.Resolve(context.Background(), "trivial issue, whenever you get to it")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if level != domain.PriorityLow {
		t.Fatalf("expected Low, got %q", level)
	}
}

func TestPriorityModelFallback(t *testing.T) {
	model := &fakeChatModel{responses: []string{"Medium"}}
	resolver := newTestResolver(model)

	level, err := resolver.Resolve(context.Background(), "my dashboard renders oddly")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if level != domain.PriorityMedium {
		t.Fatalf("expected Medium from model, got %q", level)
	}
	if model.calls != 1 {
		t.Fatalf("expected one model call, got %d", model.calls)
	}
}

func TestPriorityModelRetriesOnceOnInvalidOutput(t *testing.T) {
	model := &fakeChatModel{responses: []string{"kind of high?", "High_Priority"}}
	resolver := newTestResolver(model)

	level, err := resolver.Resolve(context.Background(), "my dashboard renders oddly")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if level != domain.PriorityHigh {
		t.Fatalf("expected High after retry, got %q", level)
	}
	if model.calls != 2 {
		t.Fatalf("expected exactly two model calls, got %d", model.calls)
	}
}

func TestPriorityFailsAfterSecondInvalidOutput(t *testing.T) {
	model := &fakeChatModel{responses: []string{"dunno", "still dunno"}}
	resolver := newTestResolver(model)

	_, err := resolver.Resolve(context.Background(), "my dashboard renders oddly")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrPriorityResolution) {
		t.Fatalf("expected ErrPriorityResolution, got %v", err)
	}
	if model.calls != 2 {
		t.Fatalf("expected exactly two model calls, got %d", model.calls)
	}
}

func TestPriorityModelErrorIsTyped(t *testing.T) {
	resolver := newTestResolver(&fakeChatModel{err: errors.New("rate limited")})
	_, err := resolver.Resolve(context.Background(), "my dashboard renders oddly")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrPriorityResolution) {
		t.Fatalf("expected ErrPriorityResolution, got %v", err)
	}
}

func TestPriorityAlwaysReturnsClosedSetValue(t *testing.T) {
	model := &fakeChatModel{responses: []string{"Low"}}
	resolver := newTestResolver(model)

	inputs := []string{
		"urgent emergency",
		"soon please",
		"later is fine",
		"completely ambiguous text",
	}
	for _, input := range inputs {
		level, err := resolver.Resolve(context.Background(), input)
		if err != nil {
			t.Fatalf("Resolve(%q) error = %v", input, err)
		}
		switch level {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		default:
			t.Fatalf("Resolve(%q) = %q outside closed set", input, level)
		}
	}
}
