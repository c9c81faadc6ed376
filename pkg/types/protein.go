// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value objects shared across engine stages.
// Every structure here is created fresh per call and never mutated after
// it is returned.
package types

import "errors"

// ErrInvalidArgument marks input validation failures. Callers receive it
// wrapped with a precise message before any network call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// ResolutionStatus is the overall outcome of a protein resolution.
type ResolutionStatus string

const (
	// StatusResolved means at least one source produced a mapping.
	StatusResolved ResolutionStatus = "resolved"
	// StatusNotFound means zero sources produced data for the identifier.
	StatusNotFound ResolutionStatus = "not_found"
	// StatusTimedOut means the operation deadline elapsed before all
	// source calls finished. Partial results are discarded.
	StatusTimedOut ResolutionStatus = "timed_out"
)

// SourceMapping is the normalized per-source resolution payload. Which
// fields are set depends on the source kind: the primary interaction
// source fills ID/Name/Annotation, the repository source fills MatchCount
// and SampleIDs, the curated interaction source fills MatchCount and
// SampleInteractions.
type SourceMapping struct {
	ID                 string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name               string   `json:"name,omitempty" yaml:"name,omitempty"`
	Annotation         string   `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	MatchCount         int      `json:"match_count,omitempty" yaml:"match_count,omitempty"`
	SampleIDs          []string `json:"sample_ids,omitempty" yaml:"sample_ids,omitempty"`
	SampleInteractions []string `json:"sample_interactions,omitempty" yaml:"sample_interactions,omitempty"`
}

// ProteinIdentity is the cross-source resolution of one identifier.
//
// Invariant: Status == StatusResolved exactly when SourceMappings is
// non-empty; OverallConfidence is 0.0 unless resolved.
type ProteinIdentity struct {
	Query              string                   `json:"query" yaml:"query"`
	CanonicalSymbol    string                   `json:"canonical_symbol" yaml:"canonical_symbol"`
	Aliases            []string                 `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	SourceMappings     map[string]SourceMapping `json:"source_mappings,omitempty" yaml:"source_mappings,omitempty"`
	ConfidenceBySource map[string]float64       `json:"confidence_by_source,omitempty" yaml:"confidence_by_source,omitempty"`
	OverallConfidence  float64                  `json:"overall_confidence" yaml:"overall_confidence"`
	Status             ResolutionStatus         `json:"status" yaml:"status"`

	// Suggestion carries a human-readable hint when nothing resolved.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
	// Errors collects per-source failure descriptions. A failed source
	// never fails the whole resolution; its absence is visible here.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Resolved reports whether at least one source produced a mapping.
func (p ProteinIdentity) Resolved() bool {
	return p.Status == StatusResolved
}
