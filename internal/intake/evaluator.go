package intake

import (
	"strings"
	"unicode"
)

// Policy holds the termination rules for an interview. The zero value is not
// useful; build one from configuration.
type Policy struct {
	// QuestionBudget is the hard cap on strategic questions. Once the counter
	// reaches it the interview terminates regardless of the last message.
	QuestionBudget int
	// TerminationTokens end the interview early when one appears as a whole
	// word in the last user message.
	TerminationTokens []string
}

// Evaluate decides whether the interview continues. Pure: the same
// (history, questionCount) pair always yields the same state. It runs exactly
// once per chat call, before any generation call.
//
// An empty history never terminates: there is no user turn to inspect yet, so
// the first question is still owed.
func (p Policy) Evaluate(history []Turn, questionCount int) State {
	if len(history) == 0 {
		return StateActive
	}
	if questionCount >= p.QuestionBudget {
		return StateTerminal
	}
	last, ok := LastUserTurn(history)
	if !ok {
		return StateActive
	}
	if MatchesTermination(last.Content, p.TerminationTokens) {
		return StateTerminal
	}
	return StateActive
}

// MatchesTermination reports whether any token appears as a whole word in
// text, case-insensitively. Word-boundary matching is deliberately stricter
// than raw substring containment: "nothing new to add" matches the token
// "nothing", but "nobody" does not match "no".
func MatchesTermination(text string, tokens []string) bool {
	lowered := strings.ToLower(text)
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if containsWord(lowered, token) {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	start := 0
	for {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		if boundaryBefore(text, idx) && boundaryAfter(text, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	runes := []rune(text[:idx])
	return !isWordRune(runes[len(runes)-1])
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	for _, r := range text[end:] {
		return !isWordRune(r)
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
