package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

var topicInstruction = buildTopicInstruction()

func buildTopicInstruction() string {
	tags := domain.AllTopicTags()
	names := make([]string, 0, len(tags)-1)
	for _, tag := range tags {
		if tag == domain.TopicOther {
			continue
		}
		names = append(names, string(tag))
	}
	return fmt.Sprintf(`You are an expert customer support analyst for a software product.
Classify the ticket into exactly one of the following topic tags: %s.
Respond with only the tag, nothing else.
If the ticket fits none of the tags, respond with "Other" and nothing else,
even for gibberish input.

Example:
Ticket: "Connecting Snowflake - required permissions?"
Output: Connector`, strings.Join(names, ", "))
}

// TopicTagger classifies ticket text into the closed topic vocabulary.
// There is no keyword layer: topic classification is open-ended text
// understanding, so every call goes to the model.
type TopicTagger struct {
	model ports.ChatModel
}

func NewTopicTagger(model ports.ChatModel) *TopicTagger {
	return &TopicTagger{model: model}
}

func (t *TopicTagger) Tag(ctx context.Context, text string) (domain.TopicTag, error) {
	var lastRaw string
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := t.model.Complete(ctx, topicInstruction, text)
		if err != nil {
			return "", domain.WrapError(domain.ErrTopicTagging, "tag topic", err)
		}
		if tag, ok := domain.ParseTopicTag(raw); ok {
			return tag, nil
		}
		lastRaw = raw
	}
	return "", domain.WrapError(
		domain.ErrTopicTagging,
		"tag topic",
		fmt.Errorf("model returned invalid tag %q after retry", lastRaw),
	)
}
