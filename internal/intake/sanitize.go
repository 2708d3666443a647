package intake

import "strings"

// StripFences removes markdown code-fence markers from a generated document.
// Lines that are pure fence delimiters (``` with an optional language tag) are
// dropped whole; any stray inline markers are removed afterwards so the result
// never contains a fence. Idempotent: stripping twice equals stripping once.
func StripFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isFenceLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	out := strings.Join(kept, "\n")
	out = strings.ReplaceAll(out, "```", "")
	return strings.TrimSpace(out)
}

func isFenceLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "```") {
		return false
	}
	rest := strings.TrimPrefix(trimmed, "```")
	// "```" alone or "```markdown"; anything with spaces is treated as
	// content and handled by the inline sweep.
	return rest == "" || !strings.ContainsAny(rest, " \t")
}
