// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate cross-checks protein interactions across independent
// databases. Each requested source is queried concurrently with the
// confidence threshold rescaled to its native range; convergent evidence
// is the set intersection of normalized edges across two or more
// sources. A failed source is omitted from the per-database results and
// never fails the whole call.
// Implements: prd004-validation (R1-R5).
package validate

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pdiddy/interactome-engine/internal/genes"
	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

const (
	defaultTimeout     = 60 * time.Second
	defaultThreshold   = 0.4
	defaultSampleEdges = 10
)

// stringScale converts a [0,1] threshold to the primary source's native
// 0-1000 millipoint range.
func stringScale(threshold float64) int {
	return int(threshold * 1000)
}

// Validator cross-validates interactions across sources.
type Validator struct {
	reg *sources.Registry
	cfg types.ValidateConfig
	w   io.Writer
}

// New builds a validator.
func New(reg *sources.Registry, cfg types.ValidateConfig, w io.Writer) *Validator {
	return &Validator{reg: reg, cfg: cfg, w: w}
}

// sourceResult is one database's answer to a validation query.
type sourceResult struct {
	source string
	edges  []types.InteractionEdge
	err    error
}

// CrossValidate queries the requested interaction sources for a protein
// set and reports edges corroborated by more than one of them. All
// inputs are validated before any network call; types.ThresholdUnset
// selects the configured default, anything else outside [0,1] is
// rejected.
func (v *Validator) CrossValidate(ctx context.Context, proteins, srcs []string, threshold float64) (types.ValidationReport, error) {
	if len(proteins) == 0 {
		return types.ValidationReport{}, fmt.Errorf("%w: at least one protein is required", types.ErrInvalidArgument)
	}
	if threshold == types.ThresholdUnset {
		threshold = v.cfg.DefaultThreshold
		if threshold <= 0 {
			threshold = defaultThreshold
		}
	}
	if threshold < 0 || threshold > 1 {
		return types.ValidationReport{}, fmt.Errorf("%w: confidence threshold %.3f outside [0,1]", types.ErrInvalidArgument, threshold)
	}
	if len(srcs) == 0 {
		srcs = sources.InteractionSources
	}
	if err := sources.ValidateInteraction(srcs); err != nil {
		return types.ValidationReport{}, err
	}

	report := types.ValidationReport{
		Proteins:            proteins,
		SourcesChecked:      srcs,
		ConfidenceThreshold: threshold,
		DatabaseSpecific:    make(map[string]types.SourceEdges),
		Tier:                types.TierModerate,
	}

	timeout := v.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan sourceResult, len(srcs))
	for _, src := range srcs {
		go func(src string) {
			ch <- v.querySource(ctx, src, proteins, threshold)
		}(src)
	}

	bySource := make(map[string][]types.InteractionEdge)
collect:
	for range srcs {
		select {
		case res := <-ch:
			if res.err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s validation failed: %v", res.source, res.err))
				continue
			}
			bySource[res.source] = res.edges
		case <-ctx.Done():
			report.Errors = append(report.Errors, fmt.Sprintf("validation deadline (%s) elapsed; unanswered sources omitted", timeout))
			break collect
		}
	}

	sampleLimit := v.cfg.SampleEdges
	if sampleLimit <= 0 {
		sampleLimit = defaultSampleEdges
	}
	for src, edges := range bySource {
		sample := edges
		if len(sample) > sampleLimit {
			sample = sample[:sampleLimit]
		}
		report.DatabaseSpecific[src] = types.SourceEdges{EdgeCount: len(edges), Edges: sample}
		report.TotalEdges += len(edges)
	}

	report.Convergent = Convergent(bySource)
	report.ConvergentCount = len(report.Convergent)
	if report.ConvergentCount > 0 {
		report.Tier = types.TierHigh
	}
	return report, nil
}

// querySource fetches and normalizes one source's edges.
func (v *Validator) querySource(ctx context.Context, src string, proteins []string, threshold float64) sourceResult {
	res := sourceResult{source: src}
	switch src {
	case sources.SourceString:
		links, err := v.reg.GetNetwork(ctx, proteins, stringScale(threshold), 0)
		if err != nil {
			res.err = err
			return res
		}
		res.edges = NormalizeScored(links)
	case sources.SourceBioGRID:
		links, err := v.reg.SearchInteractions(ctx, proteins)
		if err != nil {
			res.err = err
			return res
		}
		res.edges = NormalizeCurated(links)
	}
	return res
}

// NormalizeScored converts primary-source links into canonical edges:
// symbols canonicalized, pairs sorted, duplicates collapsed keeping the
// highest native score.
func NormalizeScored(links []sources.ScoredLink) []types.InteractionEdge {
	seen := make(map[string]int)
	var edges []types.InteractionEdge
	for _, l := range links {
		edge := types.NewEdge(genes.Canonical(l.NameA), genes.Canonical(l.NameB))
		edge.Score = l.Score
		edge.Sources = []string{sources.SourceString}
		if idx, ok := seen[edge.Pair()]; ok {
			if edge.Score > edges[idx].Score {
				edges[idx].Score = edge.Score
			}
			continue
		}
		seen[edge.Pair()] = len(edges)
		edges = append(edges, edge)
	}
	return edges
}

// NormalizeCurated converts curated-source links into canonical edges.
// The curated source reports no numeric score; Score stays zero rather
// than being fabricated.
func NormalizeCurated(links []sources.CuratedLink) []types.InteractionEdge {
	seen := make(map[string]bool)
	var edges []types.InteractionEdge
	for _, l := range links {
		edge := types.NewEdge(genes.Canonical(l.SymbolA), genes.Canonical(l.SymbolB))
		edge.Sources = []string{sources.SourceBioGRID}
		if seen[edge.Pair()] {
			continue
		}
		seen[edge.Pair()] = true
		edges = append(edges, edge)
	}
	return edges
}

// Convergent intersects normalized edge sets across sources and returns
// the edges reported by two or more, sorted by pair for determinism.
// The merged edge keeps the highest native score any source reported.
func Convergent(bySource map[string][]types.InteractionEdge) []types.InteractionEdge {
	merged := make(map[string]*types.InteractionEdge)
	for src, edges := range bySource {
		for _, e := range edges {
			key := e.Pair()
			m, ok := merged[key]
			if !ok {
				edge := types.NewEdge(e.ProteinA, e.ProteinB)
				edge.Score = e.Score
				m = &edge
				merged[key] = m
			}
			if e.Score > m.Score {
				m.Score = e.Score
			}
			m.AddSource(src)
		}
	}

	var convergent []types.InteractionEdge
	for _, m := range merged {
		if m.CrossValidated {
			convergent = append(convergent, *m)
		}
	}
	sort.Slice(convergent, func(i, j int) bool { return convergent[i].Pair() < convergent[j].Pair() })
	return convergent
}
