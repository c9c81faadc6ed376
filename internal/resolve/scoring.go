// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

// Per-source confidence scorers. The formulas are heuristics carried
// over from operational tuning, kept as named functions so each can be
// swapped independently.

// stringConfidence is fixed: the primary source either maps the
// identifier or it does not.
func stringConfidence() float64 { return 0.95 }

// prideConfidence grows with dataset matches, capped at 0.9.
func prideConfidence(matchCount int) float64 {
	return min(0.9, 0.3+0.1*float64(matchCount))
}

// biogridConfidence grows with curated interaction count, capped at 0.9.
func biogridConfidence(interactionCount int) float64 {
	return min(0.9, 0.4+0.01*float64(interactionCount))
}

// overallConfidence is the arithmetic mean of the achieved per-source
// confidences. The 0.5 fallback covers the degenerate case of mappings
// without scores, which should not normally occur.
func overallConfidence(confidences map[string]float64) float64 {
	if len(confidences) == 0 {
		return 0.5
	}
	var sum float64
	for _, c := range confidences {
		sum += c
	}
	return sum / float64(len(confidences))
}
