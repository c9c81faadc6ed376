// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"testing"
	"time"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

func identity(symbol string) types.ProteinIdentity {
	return types.ProteinIdentity{
		Query:           symbol,
		CanonicalSymbol: symbol,
		Status:          types.StatusResolved,
	}
}

// --- Basic operations ---

func TestSetGet(t *testing.T) {
	c := New(0)
	c.Set("TH", identity("TH"))

	got, ok := c.Get("TH")
	if !ok {
		t.Fatal("Get after Set: not found")
	}
	if got.CanonicalSymbol != "TH" {
		t.Errorf("CanonicalSymbol = %q, want TH", got.CanonicalSymbol)
	}
}

func TestGetMissing(t *testing.T) {
	c := New(0)
	if _, ok := c.Get("TH"); ok {
		t.Error("Get on empty cache returned an entry")
	}
}

func TestKeyCaseInsensitive(t *testing.T) {
	c := New(0)
	c.Set("th", identity("TH"))
	if _, ok := c.Get("TH"); !ok {
		t.Error("entry stored under lowercase key not found via uppercase")
	}
	if _, ok := c.Get("Th"); !ok {
		t.Error("entry not found via mixed-case key")
	}
}

func TestInvalidate(t *testing.T) {
	c := New(0)
	c.Set("TH", identity("TH"))
	c.Invalidate("th")
	if _, ok := c.Get("TH"); ok {
		t.Error("entry still present after Invalidate")
	}
}

func TestSetOverwrites(t *testing.T) {
	c := New(0)
	first := identity("TH")
	first.OverallConfidence = 0.5
	second := identity("TH")
	second.OverallConfidence = 0.9

	c.Set("TH", first)
	c.Set("TH", second)

	got, _ := c.Get("TH")
	if got.OverallConfidence != 0.9 {
		t.Errorf("OverallConfidence = %f, want latest write 0.9", got.OverallConfidence)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

// --- Expiry ---

func TestExpiry(t *testing.T) {
	c := New(24 * time.Hour)
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("TH", identity("TH"))

	// Just inside the TTL.
	now = now.Add(24 * time.Hour)
	if _, ok := c.Get("TH"); !ok {
		t.Error("entry expired at exactly the TTL boundary; want still valid")
	}

	// Just past the TTL.
	now = now.Add(time.Second)
	if _, ok := c.Get("TH"); ok {
		t.Error("entry still valid past the TTL")
	}
	if c.Len() != 0 {
		t.Errorf("Len after lazy eviction = %d, want 0", c.Len())
	}
}

func TestExpiryIsLazy(t *testing.T) {
	c := New(time.Hour)
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("TH", identity("TH"))
	now = now.Add(2 * time.Hour)

	// Not read yet, so the stale entry still counts.
	if c.Len() != 1 {
		t.Errorf("Len before read = %d, want 1", c.Len())
	}
	c.Get("TH")
	if c.Len() != 0 {
		t.Errorf("Len after read = %d, want 0", c.Len())
	}
}
