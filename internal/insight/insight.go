// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package insight derives heuristic findings from an analyzed network:
// a categorical strength label for the focal protein and a ranked list
// of follow-up targets. The scoring is deliberately heuristic, not
// statistical; each recommendation carries its one-line rationale.
// Implements: prd006-insight (R1-R2).
package insight

import (
	"fmt"
	"strings"

	"github.com/pdiddy/interactome-engine/internal/genes"
	"github.com/pdiddy/interactome-engine/internal/topology"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

// DefaultFocal is the protein assessed when the caller names none. SNCA
// sits at the center of the causation question the discovery workflow
// probes.
const DefaultFocal = "SNCA"

// Strength labels, weakest to strongest.
const (
	StrengthInsufficient = "insufficient"
	StrengthWeak         = "weak"
	StrengthModerate     = "moderate"
	StrengthStrong       = "strong"
	StrengthCompelling   = "compelling"
)

// recommendationLimit bounds the white-node targets emitted.
const recommendationLimit = 10

// Generate assesses the focal protein's position in the network and
// emits ranked validation targets. An empty focal selects DefaultFocal.
func Generate(focal string, edges, crossValidated []types.InteractionEdge, analysis topology.Analysis, discovered []string) types.InsightReport {
	if focal == "" {
		focal = DefaultFocal
	}
	focal = genes.Canonical(focal)

	report := types.InsightReport{
		Focal: assessFocal(focal, edges, crossValidated, analysis),
	}
	report.Recommendations = recommend(crossValidated, analysis, discovered)
	return report
}

// assessFocal counts the focal protein's edges into each category and
// derives the strength label.
func assessFocal(focal string, edges, crossValidated []types.InteractionEdge, analysis topology.Analysis) types.FocalAssessment {
	assessment := types.FocalAssessment{
		Protein:               focal,
		ConnectionsByCategory: make(map[string]int),
	}

	connections := 0
	for _, e := range edges {
		partner := e.Other(focal)
		if partner == "" {
			continue
		}
		connections++
		assessment.ConnectionsByCategory[genes.CategoryOf(partner)]++
	}
	for _, b := range analysis.Bridging {
		if b.Edge.Touches(focal) {
			assessment.BridgingConnections++
		}
	}
	if len(edges) > 0 {
		assessment.CrossValidatedRatio = float64(len(crossValidated)) / float64(len(edges))
	}

	assessment.Strength = strengthLabel(connections, assessment.BridgingConnections, assessment.CrossValidatedRatio)
	return assessment
}

// strengthLabel maps connection counts and the cross-validation ratio
// onto the categorical scale. The cut points are heuristic and tuned to
// keep "compelling" rare.
func strengthLabel(connections, bridging int, ratio float64) string {
	switch {
	case connections == 0:
		return StrengthInsufficient
	case connections <= 2:
		return StrengthWeak
	case connections <= 5 || ratio == 0:
		return StrengthModerate
	case ratio >= 0.3 && bridging > 0:
		return StrengthCompelling
	default:
		return StrengthStrong
	}
}

// recommend ranks follow-up targets: convergent edges first, then
// discovered white nodes, then paradigm-relevant bridges.
func recommend(crossValidated []types.InteractionEdge, analysis topology.Analysis, discovered []string) []types.Recommendation {
	var recs []types.Recommendation
	rank := 0
	add := func(target, rationale string) {
		rank++
		recs = append(recs, types.Recommendation{Rank: rank, Target: target, Rationale: rationale})
	}

	for _, e := range crossValidated {
		add(e.Pair(), fmt.Sprintf("interaction corroborated by %d independent sources (%s)",
			len(e.Sources), strings.Join(e.Sources, ", ")))
	}

	for i, protein := range discovered {
		if i >= recommendationLimit {
			break
		}
		add(protein, "white node discovered via network expansion; absent from the seed set")
	}

	for _, b := range analysis.Bridging {
		add(b.Edge.Pair(), b.Note)
	}
	return recs
}
