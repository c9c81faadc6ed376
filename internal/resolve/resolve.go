// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns protein identifiers into cross-source
// identities. One resolution fans out to every requested source
// concurrently under a single wall-clock deadline; each source
// contributes a normalized mapping and a confidence score, and a failed
// source is absorbed rather than failing the call.
// Implements: prd003-resolution (R1-R6).
package resolve

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/interactome-engine/internal/cache"
	"github.com/pdiddy/interactome-engine/internal/genes"
	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultConcurrency = 5

	// projectSearchSize is how many repository datasets one lookup asks for.
	projectSearchSize = 5
	// sampleLimit bounds the sample IDs/edges kept in a mapping.
	sampleLimit = 3
)

const notFoundSuggestion = "check that the protein identifier is correct or available in the target databases"

// Resolver resolves identifiers across sources, consulting the cache
// before any network call.
type Resolver struct {
	reg   *sources.Registry
	cache *cache.Cache
	cfg   types.ResolveConfig
	w     io.Writer
}

// New builds a resolver. The cache is constructor-injected so tests can
// instantiate a fresh one per case.
func New(reg *sources.Registry, c *cache.Cache, cfg types.ResolveConfig, w io.Writer) *Resolver {
	return &Resolver{reg: reg, cache: c, cfg: cfg, w: w}
}

// lookup is one source's contribution to a resolution.
type lookup struct {
	source  string
	mapping types.SourceMapping
	conf    float64
	found   bool
	err     error
}

// Resolve maps one identifier across the requested sources. A cached
// identity short-circuits the fan-out. Zero requested sources (or zero
// successes) yields StatusNotFound; a deadline elapsing before every
// source answers yields StatusTimedOut with partial results discarded
// and nothing cached.
func (r *Resolver) Resolve(ctx context.Context, identifier string, srcs []string) (types.ProteinIdentity, error) {
	if identifier == "" {
		return types.ProteinIdentity{}, fmt.Errorf("%w: identifier must not be empty", types.ErrInvalidArgument)
	}
	if err := sources.Validate(srcs); err != nil {
		return types.ProteinIdentity{}, err
	}

	if cached, ok := r.cache.Get(identifier); ok {
		return cached, nil
	}

	identity := types.ProteinIdentity{
		Query:           identifier,
		CanonicalSymbol: genes.Canonical(identifier),
		Aliases:         genes.Aliases(identifier),
	}

	timeout := r.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so late goroutines can still send after the deadline;
	// their results are simply never read.
	ch := make(chan lookup, len(srcs))
	for _, src := range srcs {
		go func(src string) {
			ch <- r.lookupSource(ctx, src, identifier)
		}(src)
	}

	mappings := make(map[string]types.SourceMapping)
	confidences := make(map[string]float64)
	var errs []string

	for range srcs {
		select {
		case lu := <-ch:
			if lu.err != nil {
				errs = append(errs, fmt.Sprintf("%s resolution failed: %v", lu.source, lu.err))
				continue
			}
			if !lu.found {
				continue
			}
			mappings[lu.source] = lu.mapping
			confidences[lu.source] = lu.conf
		case <-ctx.Done():
			identity.Status = types.StatusTimedOut
			identity.Errors = append(errs, fmt.Sprintf("resolution timed out after %s", timeout))
			return identity, nil
		}
	}

	identity.Errors = errs
	if len(mappings) == 0 {
		identity.Status = types.StatusNotFound
		identity.Suggestion = notFoundSuggestion
		return identity, nil
	}

	identity.Status = types.StatusResolved
	identity.SourceMappings = mappings
	identity.ConfidenceBySource = confidences
	identity.OverallConfidence = overallConfidence(confidences)
	r.cache.Set(identifier, identity)
	return identity, nil
}

// lookupSource queries one source for one identifier and normalizes the
// contribution.
func (r *Resolver) lookupSource(ctx context.Context, src, identifier string) lookup {
	lu := lookup{source: src}
	switch src {
	case sources.SourceString:
		mappings, err := r.reg.MapProteins(ctx, []string{identifier})
		if err != nil {
			lu.err = err
			return lu
		}
		if len(mappings) == 0 {
			return lu
		}
		m := mappings[0]
		lu.mapping = types.SourceMapping{ID: m.ID, Name: m.PreferredName, Annotation: m.Annotation}
		lu.conf = stringConfidence()
		lu.found = true

	case sources.SourcePride:
		projects, err := r.reg.SearchProjects(ctx, identifier, projectSearchSize)
		if err != nil {
			lu.err = err
			return lu
		}
		if len(projects) == 0 {
			return lu
		}
		mapping := types.SourceMapping{MatchCount: len(projects)}
		for _, p := range projects[:min(len(projects), sampleLimit)] {
			mapping.SampleIDs = append(mapping.SampleIDs, p.Accession)
		}
		lu.mapping = mapping
		lu.conf = prideConfidence(len(projects))
		lu.found = true

	case sources.SourceBioGRID:
		links, err := r.reg.SearchInteractions(ctx, []string{identifier})
		if err != nil {
			lu.err = err
			return lu
		}
		if len(links) == 0 {
			return lu
		}
		mapping := types.SourceMapping{MatchCount: len(links)}
		for _, l := range links[:min(len(links), sampleLimit)] {
			edge := types.NewEdge(genes.Canonical(l.SymbolA), genes.Canonical(l.SymbolB))
			mapping.SampleInteractions = append(mapping.SampleInteractions, edge.Pair())
		}
		lu.mapping = mapping
		lu.conf = biogridConfidence(len(links))
		lu.found = true
	}
	return lu
}
