package domain

import "strings"

// TopicTag is a closed-vocabulary category describing a ticket's
// subject matter. TopicOther is the explicit none-of-the-above bucket.
type TopicTag string

const (
	TopicHowTo         TopicTag = "How-to"
	TopicProduct       TopicTag = "Product"
	TopicConnector     TopicTag = "Connector"
	TopicLineage       TopicTag = "Lineage"
	TopicAPISDK        TopicTag = "API/SDK"
	TopicSSO           TopicTag = "SSO"
	TopicGlossary      TopicTag = "Glossary"
	TopicBestPractices TopicTag = "Best practices"
	TopicSensitiveData TopicTag = "Sensitive data"
	TopicOther         TopicTag = "Other"
)

// AllTopicTags lists the vocabulary in prompt order, TopicOther last.
func AllTopicTags() []TopicTag {
	return []TopicTag{
		TopicHowTo,
		TopicProduct,
		TopicConnector,
		TopicLineage,
		TopicAPISDK,
		TopicSSO,
		TopicGlossary,
		TopicBestPractices,
		TopicSensitiveData,
		TopicOther,
	}
}

var topicByFold = func() map[string]TopicTag {
	m := make(map[string]TopicTag, len(AllTopicTags()))
	for _, tag := range AllTopicTags() {
		m[strings.ToLower(string(tag))] = tag
	}
	return m
}()

// ParseTopicTag validates model output against the closed set. It
// tolerates case and surrounding whitespace but never guesses.
func ParseTopicTag(raw string) (TopicTag, bool) {
	tag, ok := topicByFold[strings.ToLower(strings.TrimSpace(raw))]
	return tag, ok
}

// TopicSet is a membership policy over topic tags, e.g. the set of
// topics eligible for automated RAG answering.
type TopicSet map[TopicTag]struct{}

func NewTopicSet(tags ...TopicTag) TopicSet {
	set := make(TopicSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func (s TopicSet) Contains(tag TopicTag) bool {
	_, ok := s[tag]
	return ok
}
