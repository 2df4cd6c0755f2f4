// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docparse/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".docparse", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestRecordAndRecent(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	runs := []types.RunRecord{
		{ID: "a", DocumentPath: "documents/a.pdf", OutputPath: "output/parsed_output.json", Status: types.RunSucceeded, ResultBytes: 28, StartedAt: base, Duration: 1500 * time.Millisecond},
		{ID: "b", DocumentPath: "documents/b.pdf", Status: types.RunNotFound, Error: "file not found", StartedAt: base.Add(time.Minute)},
		{ID: "c", DocumentPath: "documents/c.pdf", OutputPath: "output/parsed_output.json", Status: types.RunTransportFailed, Error: "HTTP 401", StartedAt: base.Add(2 * time.Minute), Duration: 200 * time.Millisecond},
	}
	for _, r := range runs {
		require.NoError(t, s.Record(ctx, r))
	}

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, runs[0], got[2])
	assert.Equal(t, types.RunTransportFailed, got[0].Status)
	assert.Equal(t, "HTTP 401", got[0].Error)
}

func TestRecentLimit(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		require.NoError(t, s.Record(ctx, types.RunRecord{
			ID:           fmt.Sprintf("run-%02d", i),
			DocumentPath: "documents/a.pdf",
			Status:       types.RunSucceeded,
			StartedAt:    base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := s.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "run-24", got[0].ID)

	got, err = s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, defaultLimit)
}

func TestRecentOrdersWithinSameSecond(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, types.RunRecord{ID: "later", DocumentPath: "d.pdf", Status: types.RunSucceeded, StartedAt: base.Add(500 * time.Millisecond)}))
	require.NoError(t, s.Record(ctx, types.RunRecord{ID: "earlier", DocumentPath: "d.pdf", Status: types.RunSucceeded, StartedAt: base}))
	require.NoError(t, s.Record(ctx, types.RunRecord{ID: "latest", DocumentPath: "d.pdf", Status: types.RunSucceeded, StartedAt: base.Add(500*time.Millisecond + time.Nanosecond)}))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"latest", "later", "earlier"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.True(t, base.Equal(got[2].StartedAt))
}

func TestRecordReplacesSameID(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, types.RunRecord{ID: "x", DocumentPath: "d.pdf", Status: types.RunFailed, StartedAt: now}))
	require.NoError(t, s.Record(ctx, types.RunRecord{ID: "x", DocumentPath: "d.pdf", Status: types.RunSucceeded, StartedAt: now}))

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.RunSucceeded, got[0].Status)
}

func TestReopenKeepsRuns(t *testing.T) {
	s, path := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, types.RunRecord{ID: "keep", DocumentPath: "d.pdf", Status: types.RunSucceeded, StartedAt: time.Now()}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].ID)
}
