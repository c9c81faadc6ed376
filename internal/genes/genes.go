// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genes maps protein identifiers to canonical gene symbols and
// classifies them into functional categories. All tables are static and
// verified against the literature; there is no network access or state.
// Implements: prd001-canonicalization (R1-R3).
package genes

import "strings"

// knownAliases maps each canonical symbol to its verified aliases.
var knownAliases = map[string][]string{
	"TH":      {"tyrosine hydroxylase", "tyrosine 3-monooxygenase"},
	"SLC6A3":  {"DAT", "DAT1", "dopamine transporter"},
	"SLC18A2": {"VMAT2", "vesicular monoamine transporter 2"},
	"DDC":     {"DOPA decarboxylase", "aromatic L-amino acid decarboxylase"},
	"PRKN":    {"parkin", "PARK2 gene", "parkin RBR E3 ubiquitin protein ligase"},
	"SNCA":    {"alpha-synuclein", "NACP", "PARK1", "PARK4"},
	"DRD1":    {"dopamine receptor D1", "D1DR", "DRD1A"},
	"DRD2":    {"dopamine receptor D2", "D2DR"},
	"DRD3":    {"dopamine receptor D3", "D3DR"},
	"DRD4":    {"dopamine receptor D4", "D4DR"},
	"DRD5":    {"dopamine receptor D5", "D5DR", "DRD1B"},
	"LRRK2":   {"leucine rich repeat kinase 2", "PARK8"},
	"PINK1":   {"PTEN induced kinase 1", "PARK6"},
	"COMT":    {"catechol-O-methyltransferase"},
	"MAOA":    {"monoamine oxidase A", "MAO-A"},
	"MAOB":    {"monoamine oxidase B", "MAO-B"},
}

// aliasToCanonical maps common alias spellings (upper-cased) to the
// canonical symbol. MAO defaults to MAOA.
var aliasToCanonical = map[string]string{
	"DAT":             "SLC6A3",
	"DAT1":            "SLC6A3",
	"VMAT2":           "SLC18A2",
	"PARK2":           "PRKN",
	"PARKIN":          "PRKN",
	"ALPHA-SYNUCLEIN": "SNCA",
	"MAO":             "MAOA",
}

// Canonical returns the canonical gene symbol for any identifier. The
// lookup is case-insensitive; unknown identifiers pass through
// upper-cased, so Canonical is idempotent for all inputs.
func Canonical(identifier string) string {
	upper := strings.ToUpper(strings.TrimSpace(identifier))
	if canonical, ok := aliasToCanonical[upper]; ok {
		return canonical
	}
	return upper
}

// Aliases returns the identifier itself followed by its verified
// aliases. An alias query additionally includes the canonical symbol.
// Unknown identifiers return just themselves.
func Aliases(identifier string) []string {
	identifier = strings.TrimSpace(identifier)
	upper := strings.ToUpper(identifier)
	if known, ok := knownAliases[upper]; ok {
		return append([]string{identifier}, known...)
	}
	if canonical, ok := aliasToCanonical[upper]; ok {
		return append([]string{identifier, canonical}, knownAliases[canonical]...)
	}
	return []string{identifier}
}
