package extract

// TruncateRunes bounds s to at most limit runes, cutting only on rune
// boundaries so a multibyte sequence is never split.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
