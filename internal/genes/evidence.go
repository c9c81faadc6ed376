// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genes

// Relevance is a literature-curated disease-relevance record. Tier runs
// 1 (established) to 5 (insufficient evidence); tier 5 is the explicit
// unknown variant, never an absent map entry.
type Relevance struct {
	Score    float64
	Evidence string
	Tier     int
}

var relevanceTable = map[string]Relevance{
	// Tier 1: established disease genes.
	"SNCA":  {Score: 0.95, Evidence: "genetic + biomarker + pathology", Tier: 1},
	"PRKN":  {Score: 0.92, Evidence: "genetic + functional + early-onset", Tier: 1},
	"LRRK2": {Score: 0.90, Evidence: "genetic + kinase target + late-onset", Tier: 1},

	// Tier 2: dopaminergic system markers.
	"TH":     {Score: 0.88, Evidence: "functional + imaging biomarker", Tier: 2},
	"SLC6A3": {Score: 0.85, Evidence: "functional + DAT-SPECT biomarker", Tier: 2},
	"DRD2":   {Score: 0.82, Evidence: "functional + therapeutic target", Tier: 2},

	// Tier 3: associated proteins.
	"PINK1":   {Score: 0.80, Evidence: "genetic + mitochondrial function", Tier: 3},
	"SLC18A2": {Score: 0.78, Evidence: "functional + vesicular transport", Tier: 3},
	"COMT":    {Score: 0.75, Evidence: "pharmacogenomics + metabolism", Tier: 3},

	// Tier 4: receptor subtypes with limited evidence.
	"DRD1": {Score: 0.70, Evidence: "functional + motor circuits", Tier: 4},
	"DRD3": {Score: 0.65, Evidence: "functional + therapeutic interest", Tier: 4},
	"DRD4": {Score: 0.60, Evidence: "limited direct evidence", Tier: 4},
}

// RelevanceOf returns the curated relevance record for a symbol. Unknown
// proteins get the explicit tier-5 record rather than a missing value.
func RelevanceOf(identifier string) Relevance {
	if r, ok := relevanceTable[Canonical(identifier)]; ok {
		return r
	}
	return Relevance{Score: 0.0, Evidence: "insufficient evidence", Tier: 5}
}

// BiomarkerCandidate is one curated candidate with its evidence type.
type BiomarkerCandidate struct {
	Protein    string
	Confidence float64
	Evidence   string
}

// BiomarkerCandidates returns the curated candidate set for a confidence
// level ("high" or "moderate"); nil for anything else.
func BiomarkerCandidates(level string) []BiomarkerCandidate {
	switch level {
	case "high":
		return []BiomarkerCandidate{
			{Protein: "SNCA", Confidence: 0.95, Evidence: "genetic"},
			{Protein: "PRKN", Confidence: 0.92, Evidence: "proteomic"},
			{Protein: "TH", Confidence: 0.88, Evidence: "functional"},
		}
	case "moderate":
		return []BiomarkerCandidate{
			{Protein: "LRRK2", Confidence: 0.85, Evidence: "genetic"},
			{Protein: "PINK1", Confidence: 0.82, Evidence: "functional"},
			{Protein: "COMT", Confidence: 0.78, Evidence: "expression"},
			{Protein: "UCHL1", Confidence: 0.75, Evidence: "expression"},
		}
	}
	return nil
}
