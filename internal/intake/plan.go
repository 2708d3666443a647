package intake

import "strings"

// Plan is the termination tier selected once per session. It decides the
// closing acknowledgment only, never the artifact content.
type Plan string

const (
	PlanCore      Plan = "core"
	PlanPro       Plan = "pro"
	PlanExecutive Plan = "executive"
	PlanDefault   Plan = "default"
)

// ParsePlan normalizes a raw plan string; anything unrecognized maps to the
// default tier.
func ParsePlan(raw string) Plan {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "core":
		return PlanCore
	case "pro":
		return PlanPro
	case "executive":
		return PlanExecutive
	default:
		return PlanDefault
	}
}

// ClosingMessages maps plan tiers to their fixed closing templates.
type ClosingMessages map[Plan]string

// NewClosingMessages builds the closing table from the built-in templates with
// optional per-tier overrides (keys are tier names).
func NewClosingMessages(overrides map[string]string) ClosingMessages {
	out := ClosingMessages{
		PlanCore:      "Interview complete. Your refreshed resume is ready below. Review it, then make it yours.",
		PlanPro:       "Interview complete. Your Pro resume draft is ready below, rebuilt around the gaps we closed together.",
		PlanExecutive: "Interview complete. Your executive resume is ready below, positioned for senior-level impact. Your dedicated reviewer will follow up within one business day.",
		PlanDefault:   "Interview complete. Your updated resume is ready below.",
	}
	for tier, msg := range overrides {
		if trimmed := strings.TrimSpace(msg); trimmed != "" {
			out[ParsePlan(tier)] = trimmed
		}
	}
	return out
}

// For returns the closing message for a plan, falling back to the default
// tier.
func (m ClosingMessages) For(p Plan) string {
	if msg, ok := m[p]; ok {
		return msg
	}
	return m[PlanDefault]
}
