// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/interactome-engine/internal/httputil"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

// Default adapter endpoints, overridden by configuration.
const (
	defaultStringBase  = "http://localhost:8001"
	defaultPrideBase   = "http://localhost:8002"
	defaultBioGRIDBase = "http://localhost:8003"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultSpecies     = 9606
	defaultOrganism    = "9606"
)

// Registry issues calls to the per-source proxy adapters. One instance
// is constructed per process and shared across stages.
type Registry struct {
	client    *http.Client
	bases     map[string]string
	apiKeys   map[string]string
	userAgent string
	species   int
	organism  string
	w         io.Writer
}

// NewRegistry builds a registry from configuration. Empty URLs fall back
// to the default local adapter ports; diagnostics for failed calls go to w.
func NewRegistry(cfg types.SourcesConfig, w io.Writer) *Registry {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	species := cfg.Species
	if species == 0 {
		species = defaultSpecies
	}
	organism := cfg.Organism
	if organism == "" {
		organism = defaultOrganism
	}

	bases := map[string]string{
		SourceString:  cfg.StringURL,
		SourcePride:   cfg.PrideURL,
		SourceBioGRID: cfg.BioGRIDURL,
	}
	if bases[SourceString] == "" {
		bases[SourceString] = defaultStringBase
	}
	if bases[SourcePride] == "" {
		bases[SourcePride] = defaultPrideBase
	}
	if bases[SourceBioGRID] == "" {
		bases[SourceBioGRID] = defaultBioGRIDBase
	}

	return &Registry{
		client:    &http.Client{Timeout: timeout},
		bases:     bases,
		apiKeys:   cfg.APIKeys,
		userAgent: cfg.UserAgent,
		species:   species,
		organism:  organism,
		w:         w,
	}
}

// rpcRequest is the uniform adapter envelope: POST {base}/call_tool.
type rpcRequest struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

// call issues one request to the named adapter and decodes the JSON
// response into out. All failure modes collapse into ErrUnavailable.
func (r *Registry) call(ctx context.Context, source, operation string, args, out any) error {
	body, err := json.Marshal(rpcRequest{Name: operation, Arguments: args})
	if err != nil {
		return r.unavailable(source, operation, fmt.Errorf("encoding arguments: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.bases[source]+"/call_tool", bytes.NewReader(body))
	if err != nil {
		return r.unavailable(source, operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}
	if key := r.apiKeys[source]; key != "" {
		req.Header.Set("X-Api-Key", key)
	}

	resp, err := httputil.DoWithRetry(ctx, r.client, req, 0, r.w)
	if err != nil {
		return r.unavailable(source, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return r.unavailable(source, operation, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return r.unavailable(source, operation, fmt.Errorf("parsing response: %w", err))
	}
	return nil
}

// unavailable logs the failure and wraps it as ErrUnavailable so callers
// can absorb it uniformly.
func (r *Registry) unavailable(source, operation string, cause error) error {
	fmt.Fprintf(r.w, "warning: source %s: %s failed: %v\n", source, operation, cause)
	return fmt.Errorf("%s.%s: %w: %v", source, operation, ErrUnavailable, cause)
}

// Raw adapter payload shapes. These never leave this file.

type stringMapResponse struct {
	MappedProteins []struct {
		StringID      string `json:"stringId"`
		PreferredName string `json:"preferredName"`
		Annotation    string `json:"annotation"`
	} `json:"mapped_proteins"`
}

type stringNetworkResponse struct {
	NetworkData []struct {
		PreferredNameA string  `json:"preferredName_A"`
		PreferredNameB string  `json:"preferredName_B"`
		Score          float64 `json:"score"`
	} `json:"network_data"`
}

type biogridResponse struct {
	Error        string `json:"error,omitempty"`
	Interactions []struct {
		SymbolA string `json:"OFFICIAL_SYMBOL_A"`
		SymbolB string `json:"OFFICIAL_SYMBOL_B"`
		System  string `json:"EXPERIMENTAL_SYSTEM"`
	} `json:"interactions"`
}

type prideResponse struct {
	Projects []struct {
		Accession string `json:"accession"`
		Title     string `json:"title"`
	} `json:"projects"`
}

// MapProteins resolves identifiers against the primary interaction
// source's name mapping.
func (r *Registry) MapProteins(ctx context.Context, ids []string) ([]ProteinMapping, error) {
	args := map[string]any{"proteins": ids, "species": r.species}
	var resp stringMapResponse
	if err := r.call(ctx, SourceString, "map_proteins", args, &resp); err != nil {
		return nil, err
	}
	mappings := make([]ProteinMapping, 0, len(resp.MappedProteins))
	for _, m := range resp.MappedProteins {
		mappings = append(mappings, ProteinMapping{
			ID:            m.StringID,
			PreferredName: m.PreferredName,
			Annotation:    m.Annotation,
		})
	}
	return mappings, nil
}

// GetNetwork fetches scored interactions for a protein set. confidence
// is in the source's native 0-1000 scale; whiteNodes is the budget of
// newly suggested proteins the source may add.
func (r *Registry) GetNetwork(ctx context.Context, proteins []string, confidence, whiteNodes int) ([]ScoredLink, error) {
	args := map[string]any{
		"proteins":   proteins,
		"species":    r.species,
		"confidence": confidence,
	}
	if whiteNodes > 0 {
		args["add_white_nodes"] = whiteNodes
	}
	var resp stringNetworkResponse
	if err := r.call(ctx, SourceString, "get_network", args, &resp); err != nil {
		return nil, err
	}
	links := make([]ScoredLink, 0, len(resp.NetworkData))
	for _, l := range resp.NetworkData {
		links = append(links, ScoredLink{NameA: l.PreferredNameA, NameB: l.PreferredNameB, Score: l.Score})
	}
	return links, nil
}

// SearchInteractions queries the curated interaction source for a gene
// set. An adapter-level error field also counts as unavailable.
func (r *Registry) SearchInteractions(ctx context.Context, genes []string) ([]CuratedLink, error) {
	args := map[string]any{"gene_names": genes, "organism": r.organism}
	var resp biogridResponse
	if err := r.call(ctx, SourceBioGRID, "search_interactions", args, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, r.unavailable(SourceBioGRID, "search_interactions", fmt.Errorf("adapter error: %s", resp.Error))
	}
	links := make([]CuratedLink, 0, len(resp.Interactions))
	for _, l := range resp.Interactions {
		links = append(links, CuratedLink{SymbolA: l.SymbolA, SymbolB: l.SymbolB, System: l.System})
	}
	return links, nil
}

// SearchProjects queries the repository source for datasets mentioning
// the query term.
func (r *Registry) SearchProjects(ctx context.Context, query string, size int) ([]Project, error) {
	args := map[string]any{"query": query, "size": size}
	var resp prideResponse
	if err := r.call(ctx, SourcePride, "search_projects", args, &resp); err != nil {
		return nil, err
	}
	projects := make([]Project, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		projects = append(projects, Project{Accession: p.Accession, Title: p.Title})
	}
	return projects, nil
}
