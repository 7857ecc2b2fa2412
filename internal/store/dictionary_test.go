package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
	"github.com/roach88/unscramble/internal/testutil"
)

func TestLoadDictionary_Empty(t *testing.T) {
	s := createTestStore(t)

	_, err := s.LoadDictionary(context.Background())
	assert.ErrorIs(t, err, ErrNoDictionary)

	_, err = s.Dictionary(context.Background())
	assert.ErrorIs(t, err, ErrNoDictionary)
}

func TestSaveLoadDictionary_PreservesOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	words := ir.Words(testutil.GermanWords)

	err := s.SaveDictionary(ctx, DictionaryInfo{Source: "german.dic", Normalized: true}, words)
	require.NoError(t, err)

	got, err := s.LoadDictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, words, got)

	info, err := s.Dictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, DictionaryInfo{
		Source:     "german.dic",
		WordCount:  len(words),
		Encoding:   "utf-8",
		Normalized: true,
	}, info)
}

func TestSaveDictionary_Replaces(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDictionary(ctx, DictionaryInfo{Source: "a"}, ir.Words([]string{"x", "y", "z"})))
	require.NoError(t, s.SaveDictionary(ctx, DictionaryInfo{Source: "b", Encoding: "iso-8859-1"}, ir.Words([]string{"Sie"})))

	got, err := s.LoadDictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ir.Word{"Sie"}, got)

	info, err := s.Dictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", info.Source)
	assert.Equal(t, 1, info.WordCount)
	assert.Equal(t, "iso-8859-1", info.Encoding)
}

func TestBucketStats_MatchesIndex(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	words := ir.Words(testutil.GermanWords)

	require.NoError(t, s.SaveDictionary(ctx, DictionaryInfo{Source: "german.dic"}, words))

	got, err := s.BucketStats(ctx)
	require.NoError(t, err)

	want := index.Build(words).Stats()
	assert.Equal(t, want.Words, got.Words)
	assert.Equal(t, want.Buckets, got.Buckets)
	assert.Equal(t, want.MinBucket, got.MinBucket)
	assert.Equal(t, want.MaxBucket, got.MaxBucket)
	assert.InDelta(t, want.AvgBucket, got.AvgBucket, 1e-9)
}

func TestBucketStats_Empty(t *testing.T) {
	s := createTestStore(t)

	got, err := s.BucketStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, index.Stats{}, got)
}

func TestRecordRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, err := s.RecordRun(ctx, RunRecord{Input: "a.txt", Lines: 1, Tokens: 17, Resolved: 15, Ambiguous: 2})
	require.NoError(t, err)
	second, err := s.RecordRun(ctx, RunRecord{Input: "b.txt", Lines: 2, Tokens: 3, Unresolved: 3})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first: UUIDv7 ids sort by creation time.
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, "b.txt", runs[0].Input)
	assert.Equal(t, 3, runs[0].Unresolved)
	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, 17, runs[1].Tokens)
	assert.WithinDuration(t, time.Now(), runs[1].CreatedAt, time.Minute)

	runs, err = s.Runs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, second, runs[0].ID)
}

func TestRecordRun_ExplicitID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 23, 12, 0, 0, 0, time.UTC)

	id, err := s.RecordRun(ctx, RunRecord{ID: "run-1", Input: "x", CreatedAt: at})
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)

	runs, err := s.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, at.Equal(runs[0].CreatedAt))

	_, err = s.RecordRun(ctx, RunRecord{ID: "run-1", Input: "x"})
	assert.Error(t, err, "duplicate id must fail")
}
