// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network builds interaction networks by mode-driven seed
// selection, primary-source expansion with white nodes, and secondary
// corroboration. A failed source is recorded in the snapshot's
// SourceStatus and Errors; the snapshot is built from whatever arrived.
// Implements: prd005-network (R1-R5).
package network

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pdiddy/interactome-engine/internal/genes"
	"github.com/pdiddy/interactome-engine/internal/insight"
	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/internal/topology"
	"github.com/pdiddy/interactome-engine/internal/validate"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

const (
	defaultTimeout       = 60 * time.Second
	defaultMaxWhiteNodes = 20
	defaultSecondary     = 10
	defaultThreshold     = 0.7
)

// Source health labels recorded in NetworkSnapshot.SourceStatus.
const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// Builder assembles networks from the external sources.
type Builder struct {
	reg *sources.Registry
	cfg types.NetworkConfig
	w   io.Writer
}

// New builds a network builder.
func New(reg *sources.Registry, cfg types.NetworkConfig, w io.Writer) *Builder {
	return &Builder{reg: reg, cfg: cfg, w: w}
}

// Request parameterizes one network build.
type Request struct {
	// Mode selects the seed breadth.
	Mode types.DiscoveryMode

	// Threshold is the confidence cut in [0,1]; types.ThresholdUnset
	// selects the configured default.
	Threshold float64

	// IncludeIndirect widens comprehensive and hypothesis-free seeds
	// with pathology-linked proteins.
	IncludeIndirect bool

	// Focal names the protein assessed in the insight report; empty
	// selects the default.
	Focal string
}

// SeedProteins returns the canonical, deduplicated seed set for a mode.
// Order is deterministic: taxonomy order within each group.
func SeedProteins(mode types.DiscoveryMode, includeIndirect bool) []string {
	var raw []string
	switch mode {
	case types.ModeMinimal:
		raw = []string{"TH", "DDC", "SLC6A3", "DRD2"}
	case types.ModeStandard:
		raw = append(raw, genes.SynthesisProteins...)
		raw = append(raw, genes.TransportProteins...)
		raw = append(raw, genes.ReceptorProteins[:2]...)
		raw = append(raw, genes.MetabolismProteins[0])
	case types.ModeComprehensive:
		raw = append(raw, genes.SynthesisProteins...)
		raw = append(raw, genes.TransportProteins...)
		raw = append(raw, genes.ReceptorProteins...)
		raw = append(raw, genes.MetabolismProteins...)
		if includeIndirect {
			raw = append(raw, genes.PathologyProteins...)
		}
	case types.ModeHypothesisFree:
		raw = []string{"TH", "SLC6A3", "DRD2"}
		if includeIndirect {
			raw = append(raw, "SNCA", "PRKN")
		}
	}

	seen := make(map[string]struct{}, len(raw))
	seeds := make([]string, 0, len(raw))
	for _, id := range raw {
		symbol := genes.Canonical(id)
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		seeds = append(seeds, symbol)
	}
	return seeds
}

// Build runs one discovery pass: seed selection, primary expansion with
// white nodes, secondary corroboration, then topology and insight over
// the merged edge set.
func (b *Builder) Build(ctx context.Context, req Request) (types.NetworkSnapshot, error) {
	mode, err := types.ParseDiscoveryMode(string(req.Mode))
	if err != nil {
		return types.NetworkSnapshot{}, err
	}
	threshold := req.Threshold
	if threshold == types.ThresholdUnset {
		threshold = b.cfg.DefaultThreshold
		if threshold <= 0 {
			threshold = defaultThreshold
		}
	}
	if threshold < 0 || threshold > 1 {
		return types.NetworkSnapshot{}, fmt.Errorf("%w: confidence threshold %.3f outside [0,1]", types.ErrInvalidArgument, threshold)
	}

	timeout := b.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	snapshot := types.NetworkSnapshot{
		Mode:                mode,
		ConfidenceThreshold: threshold,
		SeedProteins:        SeedProteins(mode, req.IncludeIndirect),
		SourceStatus:        make(map[string]string),
	}

	// Primary expansion. The secondary query depends on the discovered
	// white nodes, so the two calls are sequential under one deadline.
	bySource := make(map[string][]types.InteractionEdge)
	maxWhiteNodes := b.cfg.MaxWhiteNodes
	if maxWhiteNodes <= 0 {
		maxWhiteNodes = defaultMaxWhiteNodes
	}
	links, err := b.reg.GetNetwork(ctx, snapshot.SeedProteins, int(threshold*1000), maxWhiteNodes)
	if err != nil {
		snapshot.SourceStatus[sources.SourceString] = statusUnavailable
		snapshot.Errors = append(snapshot.Errors, fmt.Sprintf("%s expansion failed: %v", sources.SourceString, err))
	} else {
		snapshot.SourceStatus[sources.SourceString] = statusOK
		bySource[sources.SourceString] = validate.NormalizeScored(links)
	}

	snapshot.DiscoveredProteins = discoveredFrom(bySource[sources.SourceString], snapshot.SeedProteins)

	secondaryBound := b.cfg.SecondaryBound
	if secondaryBound <= 0 {
		secondaryBound = defaultSecondary
	}
	secondaryQuery := snapshot.SeedProteins
	if extra := snapshot.DiscoveredProteins; len(extra) > 0 {
		if len(extra) > secondaryBound {
			extra = extra[:secondaryBound]
		}
		secondaryQuery = append(append([]string{}, secondaryQuery...), extra...)
	}
	curated, err := b.reg.SearchInteractions(ctx, secondaryQuery)
	if err != nil {
		snapshot.SourceStatus[sources.SourceBioGRID] = statusUnavailable
		snapshot.Errors = append(snapshot.Errors, fmt.Sprintf("%s corroboration failed: %v", sources.SourceBioGRID, err))
	} else {
		snapshot.SourceStatus[sources.SourceBioGRID] = statusOK
		bySource[sources.SourceBioGRID] = validate.NormalizeCurated(curated)
	}

	snapshot.Edges = mergeEdges(bySource)
	snapshot.CrossValidated = validate.Convergent(bySource)
	snapshot.Distribution = distribution(snapshot.Edges)

	analysis := topology.Analyze(snapshot.Edges, snapshot.DiscoveredProteins, threshold)
	snapshot.HubProteins = analysis.Hubs
	snapshot.FunctionalClusters = analysis.Clusters
	snapshot.BridgingEdges = analysis.Bridging
	snapshot.NovelEdges = analysis.Novel
	snapshot.Completeness = analysis.Completeness
	snapshot.Insights = insight.Generate(req.Focal, snapshot.Edges, snapshot.CrossValidated, analysis, snapshot.DiscoveredProteins)

	return snapshot, nil
}

// discoveredFrom lists edge endpoints absent from the seed set, in
// first-seen order.
func discoveredFrom(edges []types.InteractionEdge, seeds []string) []string {
	seedSet := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		seedSet[s] = struct{}{}
	}
	seen := make(map[string]struct{})
	var discovered []string
	for _, e := range edges {
		for _, symbol := range []string{e.ProteinA, e.ProteinB} {
			if _, ok := seedSet[symbol]; ok {
				continue
			}
			if _, ok := seen[symbol]; ok {
				continue
			}
			seen[symbol] = struct{}{}
			discovered = append(discovered, symbol)
		}
	}
	return discovered
}

// mergeEdges unions the per-source edge sets, tagging each merged edge
// with every source that reported it and keeping the highest native
// score. Output is sorted by pair.
func mergeEdges(bySource map[string][]types.InteractionEdge) []types.InteractionEdge {
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

	out := make([]types.InteractionEdge, 0, len(merged))
	for _, m := range merged {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pair() < out[j].Pair() })
	return out
}

// distribution summarizes scored edges. Curated edges carry no native
// score and are excluded from the numeric summary but not the buckets'
// total.
func distribution(edges []types.InteractionEdge) types.ConfidenceDistribution {
	var scores []float64
	for _, e := range edges {
		if e.Score > 0 {
			scores = append(scores, e.Score)
		}
	}
	d := types.ConfidenceDistribution{Total: len(scores)}
	if len(scores) == 0 {
		return d
	}

	sort.Float64s(scores)
	d.Min = scores[0]
	d.Max = scores[len(scores)-1]
	mid := len(scores) / 2
	if len(scores)%2 == 1 {
		d.Median = scores[mid]
	} else {
		d.Median = (scores[mid-1] + scores[mid]) / 2
	}

	for _, s := range scores {
		switch {
		case s > 800:
			d.HighCount++
		case s >= 400:
			d.MediumCount++
		default:
			d.LowCount++
		}
	}
	return d
}
