package system

// RepeatedBigrams scores a window +2 for every pair of positions i < j whose
// two-glyph runs match. The pair bounds are i < len-2 and j < len-1, which
// counts overlapping pairs more than once for long repetitions; that
// overcount is kept as-is since scoring was tuned against it.
func RepeatedBigrams(window []string) int {
	n := len(window)
	score := 0
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			if window[i] == window[j] && window[i+1] == window[j+1] {
				score += 2
			}
		}
	}
	return score
}

// Alternations scores +1 for every a-b-a triple in the window.
func Alternations(window []string) int {
	score := 0
	for i := 0; i+2 < len(window); i++ {
		if window[i] == window[i+2] && window[i] != window[i+1] {
			score++
		}
	}
	return score
}

// DetectPatterns combines repeated bigrams and alternations, capped at limit.
// Windows shorter than three glyphs carry no pattern.
func DetectPatterns(window []string, limit int) int {
	if len(window) < 3 {
		return 0
	}
	return min(RepeatedBigrams(window)+Alternations(window), limit)
}

// DetectSequences adds the length of every maximal run (length three or more)
// of glyphs that belong to entities, capped at limit.
func DetectSequences(window []string, entityGlyphs map[string]bool, limit int) int {
	if len(window) < 3 {
		return 0
	}
	score, run := 0, 0
	for _, g := range window {
		if entityGlyphs[g] {
			run++
			continue
		}
		if run >= 3 {
			score += run
		}
		run = 0
	}
	if run >= 3 {
		score += run
	}
	return min(score, limit)
}
