package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("QUESTION_BUDGET", "")
	t.Setenv("EXTRACT_CHAR_BUDGET", "")
	t.Setenv("TERMINATION_TOKENS", "")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()

	if cfg.QuestionBudget != 4 {
		t.Fatalf("expected default question budget 4, got %d", cfg.QuestionBudget)
	}
	if cfg.ExtractCharBudget != 15000 {
		t.Fatalf("expected default extract budget 15000, got %d", cfg.ExtractCharBudget)
	}
	want := []string{"no", "none", "done", "nothing"}
	if len(cfg.TerminationTokens) != len(want) {
		t.Fatalf("expected %d termination tokens, got %v", len(want), cfg.TerminationTokens)
	}
	for i, tok := range want {
		if cfg.TerminationTokens[i] != tok {
			t.Fatalf("token %d: expected %q, got %q", i, tok, cfg.TerminationTokens[i])
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("QUESTION_BUDGET", "6")
	t.Setenv("TERMINATION_TOKENS", "stop, finished")
	t.Setenv("PLAN_MESSAGE_EXECUTIVE", "custom executive closing")

	cfg := Load()

	if cfg.QuestionBudget != 6 {
		t.Fatalf("expected question budget 6, got %d", cfg.QuestionBudget)
	}
	if len(cfg.TerminationTokens) != 2 || cfg.TerminationTokens[0] != "stop" || cfg.TerminationTokens[1] != "finished" {
		t.Fatalf("unexpected termination tokens: %v", cfg.TerminationTokens)
	}
	if cfg.PlanMessages["executive"] != "custom executive closing" {
		t.Fatalf("unexpected plan override: %q", cfg.PlanMessages["executive"])
	}
}

func TestLoadRejectsNonPositiveBudget(t *testing.T) {
	t.Setenv("QUESTION_BUDGET", "-1")
	cfg := Load()
	if cfg.QuestionBudget != 4 {
		t.Fatalf("expected fallback to default budget, got %d", cfg.QuestionBudget)
	}
}
