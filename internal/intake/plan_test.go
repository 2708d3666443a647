package intake

import "testing"

func TestParsePlan(t *testing.T) {
	tests := []struct {
		raw  string
		want Plan
	}{
		{"core", PlanCore},
		{"PRO", PlanPro},
		{" Executive ", PlanExecutive},
		{"", PlanDefault},
		{"enterprise", PlanDefault},
	}
	for _, tt := range tests {
		if got := ParsePlan(tt.raw); got != tt.want {
			t.Fatalf("ParsePlan(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestClosingMessagesFixedPerTier(t *testing.T) {
	m := NewClosingMessages(nil)

	executive := m.For(PlanExecutive)
	if executive == "" {
		t.Fatalf("executive closing must not be empty")
	}
	// The closing is a fixed template, independent of dialogue content.
	if again := m.For(PlanExecutive); again != executive {
		t.Fatalf("executive closing not stable: %q vs %q", executive, again)
	}
	if m.For(PlanCore) == executive || m.For(PlanPro) == executive {
		t.Fatalf("tiers must have distinct closings")
	}
}

func TestClosingMessagesUnknownTierFallsBack(t *testing.T) {
	m := NewClosingMessages(nil)
	if m.For(Plan("mystery")) != m.For(PlanDefault) {
		t.Fatalf("unknown tier should fall back to default closing")
	}
}

func TestClosingMessagesOverrides(t *testing.T) {
	m := NewClosingMessages(map[string]string{"executive": "custom exec closing", "pro": "  "})
	if m.For(PlanExecutive) != "custom exec closing" {
		t.Fatalf("override not applied: %q", m.For(PlanExecutive))
	}
	if m.For(PlanPro) == "" {
		t.Fatalf("blank override must keep built-in template")
	}
}
