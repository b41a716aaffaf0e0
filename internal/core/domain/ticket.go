package domain

// Ticket is an externally created support request. It is immutable once
// read by the analysis pipeline.
type Ticket struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AnalysisResult is derived per request and never persisted.
type AnalysisResult struct {
	Sentiment EmotionLabel  `json:"sentiment"`
	Priority  PriorityLevel `json:"priority"`
	Topic     TopicTag      `json:"topic"`
}

type RoutingDecision string

const (
	RoutingAnswered          RoutingDecision = "answered"
	RoutingReferredToSupport RoutingDecision = "referred_to_support"
)

// TriageOutcome is the terminal result of analyzing one ticket: the
// classification plus either a grounded answer with provenance or a
// referred-to-support decision.
type TriageOutcome struct {
	Result  AnalysisResult  `json:"result"`
	Emoji   string          `json:"emoji"`
	Routing RoutingDecision `json:"routing"`
	Answer  string          `json:"answer,omitempty"`
	Sources []string        `json:"sources,omitempty"`
}

// BatchSummary aggregates a batch analysis run. Counts reflect only
// tickets whose analysis completed; a cancelled batch keeps the tallies
// it accumulated so far.
type BatchSummary struct {
	BatchID       string               `json:"batch_id"`
	Analyzed      int                  `json:"analyzed"`
	Failed        int                  `json:"failed"`
	Cancelled     bool                 `json:"cancelled"`
	EmotionCounts map[EmotionLabel]int `json:"emotion_counts"`
	ReferredCount int                  `json:"referred_count"`
	AnsweredCount int                  `json:"answered_count"`
}
