package domain

import "strings"

type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

// ParsePriorityLevel accepts the wire forms models actually emit
// ("High", "high_priority", "MEDIUM PRIORITY") and maps them onto the
// closed set. Anything else is rejected.
func ParsePriorityLevel(raw string) (PriorityLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("_", " ", ".", "").Replace(normalized)
	normalized = strings.TrimSuffix(normalized, " priority")

	switch normalized {
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return "", false
	}
}
