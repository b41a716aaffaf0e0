package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

func TestDefaultTriagePolicyAnswerableSet(t *testing.T) {
	policy := DefaultTriagePolicy()
	for _, tag := range []domain.TopicTag{
		domain.TopicHowTo, domain.TopicProduct, domain.TopicBestPractices,
		domain.TopicAPISDK, domain.TopicSSO,
	} {
		if !policy.AnswerableTopics.Contains(tag) {
			t.Fatalf("expected %q answerable by default", tag)
		}
	}
	if policy.AnswerableTopics.Contains(domain.TopicConnector) {
		t.Fatalf("Connector must not be answerable by default")
	}
}

func TestLoadTriagePolicyEmptyPathReturnsDefaults(t *testing.T) {
	policy, err := LoadTriagePolicy("")
	if err != nil {
		t.Fatalf("LoadTriagePolicy() error = %v", err)
	}
	if len(policy.HighKeywords) == 0 {
		t.Fatalf("expected default high keywords")
	}
}

func TestLoadTriagePolicyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	contents := `
answerable_topics:
  - How-to
  - Glossary
priority_keywords:
  high:
    - showstopper
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	policy, err := LoadTriagePolicy(path)
	if err != nil {
		t.Fatalf("LoadTriagePolicy() error = %v", err)
	}
	if !policy.AnswerableTopics.Contains(domain.TopicGlossary) {
		t.Fatalf("expected Glossary answerable after override")
	}
	if policy.AnswerableTopics.Contains(domain.TopicSSO) {
		t.Fatalf("expected SSO excluded after override")
	}
	if len(policy.HighKeywords) != 1 || policy.HighKeywords[0] != "showstopper" {
		t.Fatalf("unexpected high keywords: %v", policy.HighKeywords)
	}
	if len(policy.MediumKeywords) == 0 {
		t.Fatalf("expected medium keywords to keep defaults")
	}
}

func TestLoadTriagePolicyRejectsUnknownTopic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("answerable_topics: [Billing]"), 0o600); err != nil {
		t.Fatalf("write policy file: %v", err)
	}
	if _, err := LoadTriagePolicy(path); err == nil {
		t.Fatalf("expected unknown topic to be rejected")
	}
}
