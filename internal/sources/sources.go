// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sources is the uniform RPC boundary to the external database
// proxy adapters. Every operation issues exactly one request; a network
// error, non-success status, or timeout surfaces as ErrUnavailable and
// is logged with source/operation context. Callers treat ErrUnavailable
// as "no information", never as a hard failure. Raw adapter payload
// shapes are normalized here and never escape the package.
// Implements: prd002-source-client (R1-R4).
package sources

import (
	"errors"
	"fmt"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

// Known source names. Each is a logical partition behind one proxy
// adapter.
const (
	// SourceString is the primary scored-interaction source.
	SourceString = "string"
	// SourceBioGRID is the curated-interaction source.
	SourceBioGRID = "biogrid"
	// SourcePride is the proteomics repository/dataset source.
	SourcePride = "pride"
)

// ErrUnavailable marks a per-source call failure. It is always absorbed
// into aggregate status fields by callers, never surfaced on its own.
var ErrUnavailable = errors.New("source unavailable")

// KnownSources lists the valid source names in a stable order.
var KnownSources = []string{SourceString, SourceBioGRID, SourcePride}

// InteractionSources lists the sources that can answer interaction
// queries.
var InteractionSources = []string{SourceString, SourceBioGRID}

// Validate rejects unknown source names before any network call.
func Validate(names []string) error {
	for _, name := range names {
		if !isKnown(name) {
			return fmt.Errorf("%w: unknown source %q (known sources: %v)", types.ErrInvalidArgument, name, KnownSources)
		}
	}
	return nil
}

// ValidateInteraction rejects names that are unknown or cannot answer
// interaction queries.
func ValidateInteraction(names []string) error {
	if err := Validate(names); err != nil {
		return err
	}
	for _, name := range names {
		if name == SourcePride {
			return fmt.Errorf("%w: source %q does not provide interactions (use %v)", types.ErrInvalidArgument, name, InteractionSources)
		}
	}
	return nil
}

func isKnown(name string) bool {
	for _, k := range KnownSources {
		if k == name {
			return true
		}
	}
	return false
}

// Normalized payload shapes returned across the boundary.

// ProteinMapping is one identifier mapping from the primary source.
type ProteinMapping struct {
	ID            string
	PreferredName string
	Annotation    string
}

// ScoredLink is one scored interaction from the primary source. Score
// stays in the source's native 0-1000 scale.
type ScoredLink struct {
	NameA string
	NameB string
	Score float64
}

// CuratedLink is one curated interaction from the secondary source.
type CuratedLink struct {
	SymbolA string
	SymbolB string
	System  string
}

// Project is one dataset record from the repository source.
type Project struct {
	Accession string
	Title     string
}
