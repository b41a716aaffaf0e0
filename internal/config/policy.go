package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
)

// TriagePolicy is the data-driven part of the pipeline: which topics are
// eligible for automated RAG answering, and the keyword tiers the
// priority resolver checks before falling back to a model. Both the
// ticket-ID and free-text analysis paths share one policy value.
type TriagePolicy struct {
	AnswerableTopics domain.TopicSet
	HighKeywords     []string
	MediumKeywords   []string
	LowKeywords      []string
}

func DefaultTriagePolicy() TriagePolicy {
	return TriagePolicy{
		AnswerableTopics: domain.NewTopicSet(
			domain.TopicHowTo,
			domain.TopicProduct,
			domain.TopicBestPractices,
			domain.TopicAPISDK,
			domain.TopicSSO,
		),
		HighKeywords: []string{
			"urgent", "immediate", "as soon as possible", "critical", "important",
			"priority", "emergency", "asap", "serious",
		},
		MediumKeywords: []string{
			"soon", "in a few days", "within a week", "moderate", "normal",
			"standard", "regular", "usual", "average", "typical",
		},
		LowKeywords: []string{
			"later", "in the future", "not urgent", "trivial", "minor",
			"negligible", "low", "non-urgent", "whenever", "at your convenience",
			"no rush", "eventually",
		},
	}
}

type policyFile struct {
	AnswerableTopics []string `yaml:"answerable_topics"`
	PriorityKeywords struct {
		High   []string `yaml:"high"`
		Medium []string `yaml:"medium"`
		Low    []string `yaml:"low"`
	} `yaml:"priority_keywords"`
}

// LoadTriagePolicy reads a policy overrides file. An empty path returns
// the built-in defaults; fields absent from the file keep their defaults.
func LoadTriagePolicy(path string) (TriagePolicy, error) {
	policy := DefaultTriagePolicy()
	if path == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return TriagePolicy{}, fmt.Errorf("read triage policy: %w", err)
	}

	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return TriagePolicy{}, fmt.Errorf("parse triage policy: %w", err)
	}

	if len(file.AnswerableTopics) > 0 {
		set := domain.NewTopicSet()
		for _, rawTag := range file.AnswerableTopics {
			tag, ok := domain.ParseTopicTag(rawTag)
			if !ok {
				return TriagePolicy{}, fmt.Errorf("triage policy: unknown topic tag %q", rawTag)
			}
			set[tag] = struct{}{}
		}
		policy.AnswerableTopics = set
	}
	if len(file.PriorityKeywords.High) > 0 {
		policy.HighKeywords = file.PriorityKeywords.High
	}
	if len(file.PriorityKeywords.Medium) > 0 {
		policy.MediumKeywords = file.PriorityKeywords.Medium
	}
	if len(file.PriorityKeywords.Low) > 0 {
		policy.LowKeywords = file.PriorityKeywords.Low
	}
	return policy, nil
}
