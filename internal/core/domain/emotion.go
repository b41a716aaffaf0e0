package domain

import "strings"

// EmotionLabel is one of the GoEmotions categories produced by the
// sentiment classifier. The vocabulary is closed; anything else is an
// out-of-vocabulary failure, never coerced to a default.
type EmotionLabel string

const (
	EmotionAdmiration     EmotionLabel = "admiration"
	EmotionAmusement      EmotionLabel = "amusement"
	EmotionAnger          EmotionLabel = "anger"
	EmotionAnnoyance      EmotionLabel = "annoyance"
	EmotionApproval       EmotionLabel = "approval"
	EmotionCaring         EmotionLabel = "caring"
	EmotionConfusion      EmotionLabel = "confusion"
	EmotionCuriosity      EmotionLabel = "curiosity"
	EmotionDesire         EmotionLabel = "desire"
	EmotionDisappointment EmotionLabel = "disappointment"
	EmotionDisapproval    EmotionLabel = "disapproval"
	EmotionDisgust        EmotionLabel = "disgust"
	EmotionEmbarrassment  EmotionLabel = "embarrassment"
	EmotionExcitement     EmotionLabel = "excitement"
	EmotionFear           EmotionLabel = "fear"
	EmotionGratitude      EmotionLabel = "gratitude"
	EmotionGrief          EmotionLabel = "grief"
	EmotionJoy            EmotionLabel = "joy"
	EmotionLove           EmotionLabel = "love"
	EmotionNervousness    EmotionLabel = "nervousness"
	EmotionNeutral        EmotionLabel = "neutral"
	EmotionOptimism       EmotionLabel = "optimism"
	EmotionPride          EmotionLabel = "pride"
	EmotionRealization    EmotionLabel = "realization"
	EmotionRelief         EmotionLabel = "relief"
	EmotionRemorse        EmotionLabel = "remorse"
	EmotionSadness        EmotionLabel = "sadness"
	EmotionSurprise       EmotionLabel = "surprise"
)

var emotionEmoji = map[EmotionLabel]string{
	EmotionExcitement:     "🤩",
	EmotionPride:          "🏅",
	EmotionJoy:            "😊",
	EmotionApproval:       "👍",
	EmotionAdmiration:     "👏",
	EmotionDesire:         "😍",
	EmotionLove:           "❤️",
	EmotionOptimism:       "🌈",
	EmotionAmusement:      "😂",
	EmotionCaring:         "🤗",
	EmotionRealization:    "💡",
	EmotionGratitude:      "🙏",
	EmotionCuriosity:      "🤔",
	EmotionRelief:         "😌",
	EmotionSurprise:       "😮",
	EmotionNeutral:        "😐",
	EmotionNervousness:    "😬",
	EmotionConfusion:      "😕",
	EmotionRemorse:        "😔",
	EmotionAnger:          "😡",
	EmotionAnnoyance:      "😒",
	EmotionGrief:          "😭",
	EmotionFear:           "😨",
	EmotionEmbarrassment:  "😳",
	EmotionDisapproval:    "👎",
	EmotionDisgust:        "🤢",
	EmotionDisappointment: "😞",
	EmotionSadness:        "😢",
}

// ParseEmotionLabel normalizes classifier output and validates it
// against the closed vocabulary.
func ParseEmotionLabel(raw string) (EmotionLabel, bool) {
	label := EmotionLabel(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := emotionEmoji[label]; !ok {
		return "", false
	}
	return label, true
}

func (e EmotionLabel) Emoji() string {
	if emoji, ok := emotionEmoji[e]; ok {
		return emoji
	}
	return "🤷"
}
