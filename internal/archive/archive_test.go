// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.ArchiveConfig{Dir: filepath.Join(t.TempDir(), "archive")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveListShow(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	report := types.ValidationReport{
		Proteins:            []string{"TH", "DDC"},
		ConfidenceThreshold: 0.4,
		Tier:                types.TierHigh,
		ConvergentCount:     1,
	}
	id, err := s.Save(ctx, KindValidation, "th-ddc", report)
	require.NoError(t, err)
	require.NotZero(t, id)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, KindValidation, records[0].Kind)
	require.Equal(t, "th-ddc", records[0].Label)
	require.Nil(t, records[0].Payload, "List must not load payloads")

	rec, err := s.Show(ctx, id)
	require.NoError(t, err)

	var got types.ValidationReport
	require.NoError(t, json.Unmarshal(rec.Payload, &got))
	require.Equal(t, report.Proteins, got.Proteins)
	require.Equal(t, report.Tier, got.Tier)
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, KindNetwork, "a", types.NetworkSnapshot{Mode: types.ModeMinimal})
	require.NoError(t, err)
	second, err := s.Save(ctx, KindNetwork, "b", types.NetworkSnapshot{Mode: types.ModeStandard})
	require.NoError(t, err)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, second, records[0].ID)
	require.Equal(t, first, records[1].ID)
}

func TestSaveUnknownKind(t *testing.T) {
	s := testStore(t)
	_, err := s.Save(context.Background(), "report", "x", nil)
	require.True(t, errors.Is(err, types.ErrInvalidArgument), "err = %v", err)
}

func TestShowMissing(t *testing.T) {
	s := testStore(t)
	_, err := s.Show(context.Background(), 42)
	require.True(t, errors.Is(err, types.ErrInvalidArgument), "err = %v", err)
}

func TestReopenPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	ctx := context.Background()

	s, err := NewStore(types.ArchiveConfig{Dir: dir})
	require.NoError(t, err)
	id, err := s.Save(ctx, KindNetwork, "kept", types.NetworkSnapshot{Mode: types.ModeMinimal})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewStore(types.ArchiveConfig{Dir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	rec, err := reopened.Show(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "kept", rec.Label)
}
