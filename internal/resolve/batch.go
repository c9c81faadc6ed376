// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/interactome-engine/internal/sources"
	"github.com/pdiddy/interactome-engine/pkg/types"
)

// BatchResult holds one outcome per input identifier plus the resolved
// fraction.
type BatchResult struct {
	PerIdentifier map[string]types.ProteinIdentity `json:"per_identifier" yaml:"per_identifier"`
	SuccessRate   float64                          `json:"success_rate" yaml:"success_rate"`
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int { return len(r.PerIdentifier) }

// Resolved returns how many identifiers resolved successfully.
func (r BatchResult) Resolved() int {
	n := 0
	for _, identity := range r.PerIdentifier {
		if identity.Resolved() {
			n++
		}
	}
	return n
}

// ResolveBatch resolves many identifiers with a bounded number of
// simultaneous in-flight resolutions. Every input gets exactly one
// outcome; one identifier's failure never blocks or fails its siblings.
func (r *Resolver) ResolveBatch(ctx context.Context, identifiers, srcs []string) (BatchResult, error) {
	if len(identifiers) == 0 {
		return BatchResult{}, fmt.Errorf("%w: at least one identifier is required", types.ErrInvalidArgument)
	}
	if err := sources.Validate(srcs); err != nil {
		return BatchResult{}, err
	}

	concurrency := r.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var (
		mu       sync.Mutex
		outcomes = make(map[string]types.ProteinIdentity, len(identifiers))
	)

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for _, id := range identifiers {
		id := id
		g.Go(func() error {
			identity, err := r.Resolve(ctx, id, srcs)
			if err != nil {
				// Input was pre-validated, so this is unexpected; record
				// it as a per-item outcome rather than failing the batch.
				identity = types.ProteinIdentity{
					Query:  id,
					Status: types.StatusNotFound,
					Errors: []string{err.Error()},
				}
			}
			mu.Lock()
			outcomes[id] = identity
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	result := BatchResult{PerIdentifier: outcomes}
	result.SuccessRate = float64(result.Resolved()) / float64(len(outcomes))
	return result, nil
}
