package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/unscramble/internal/testutil"
)

func decodeStats(t *testing.T, out string) StatsResult {
	t.Helper()
	var resp struct {
		Status string      `json:"status"`
		Data   StatsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}

func TestStatsFromDictionary(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)

	out, _, err := execute(t, "stats", "--dict", dict, "--format", "json")
	require.NoError(t, err)

	result := decodeStats(t, out)
	assert.Equal(t, dict, result.Source)
	assert.Equal(t, testutil.GermanIndex().Stats(), result.Stats)
}

func TestStatsFromDatabase(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)
	db := filepath.Join(t.TempDir(), "german.db")

	_, _, err := execute(t, "index", "--dict", dict, "--db", db)
	require.NoError(t, err)

	out, _, err := execute(t, "stats", "--db", db, "--format", "json")
	require.NoError(t, err)

	want := testutil.GermanIndex().Stats()
	result := decodeStats(t, out)
	assert.Equal(t, db, result.Source)
	assert.Equal(t, want.Words, result.Stats.Words)
	assert.Equal(t, want.Buckets, result.Stats.Buckets)
	assert.Equal(t, want.MinBucket, result.Stats.MinBucket)
	assert.Equal(t, want.MaxBucket, result.Stats.MaxBucket)
	assert.InDelta(t, want.AvgBucket, result.Stats.AvgBucket, 1e-9)
}

func TestStatsTable(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)

	out, _, err := execute(t, "stats", "--dict", dict)
	require.NoError(t, err)

	assert.Contains(t, out, "Source: "+dict)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "Words")
	assert.Contains(t, out, "21")
	assert.Contains(t, out, "Avg bucket")
}

func TestStatsEmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")

	_, _, err := execute(t, "stats", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds no dictionary")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestIndexRequiresSources(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)
	db := filepath.Join(t.TempDir(), "german.db")

	_, _, err := execute(t, "index", "--db", db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSource)

	_, _, err = execute(t, "index", "--dict", dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index requires --db")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestIndexOutput(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)
	db := filepath.Join(t.TempDir(), "german.db")

	out, _, err := execute(t, "index", "--dict", dict, "--db", db, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   IndexResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, db, resp.Data.Database)
	assert.Equal(t, dict, resp.Data.Dictionary.Source)
	assert.Equal(t, len(testutil.GermanWords), resp.Data.Dictionary.WordCount)
	assert.Equal(t, "utf-8", resp.Data.Dictionary.Encoding)
	assert.True(t, resp.Data.Dictionary.Normalized)
	assert.Equal(t, testutil.GermanIndex().Stats(), resp.Data.Stats)
}

func TestLookup(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)

	out, _, err := execute(t, "lookup", "--dict", dict, "--format", "json",
		"eiD", "eSi", "atusar.tanbn", "hACTEN", "zzq")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   []LookupEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 5)

	tests := []struct {
		token      string
		clean      string
		pass       string
		outcome    string
		candidates []string
		rendered   string
	}{
		{"eiD", "eiD", "exact", "resolved", []string{"Die"}, "Die"},
		{"eSi", "eSi", "exact", "ambiguous", []string{"Sei", "Sie"}, `["Sei", "Sie"]`},
		{"atusar.tanbn", "atusartanbn", "exact", "resolved", []string{"unantastbar"}, "unantastbar."},
		{"hACTEN", "hACTEN", "folded", "resolved", []string{"Achten"}, "Achten"},
		{"zzq", "zzq", "none", "unresolved", []string{}, "`qzz`"},
	}

	for i, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := resp.Data[i]
			assert.Equal(t, tt.token, got.Token)
			assert.Equal(t, tt.clean, got.Clean)
			assert.Equal(t, tt.pass, got.Pass)
			assert.Equal(t, tt.outcome, string(got.Outcome))
			assert.Equal(t, tt.candidates, got.Candidates)
			assert.Equal(t, tt.rendered, got.Rendered)
		})
	}
}

func TestLookupTable(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)

	out, _, err := execute(t, "lookup", "--dict", dict, "eSi")
	require.NoError(t, err)
	assert.Contains(t, out, "Token")
	assert.Contains(t, out, "ambiguous")
	assert.Contains(t, out, "Sei, Sie")
}

func TestLookupRequiresToken(t *testing.T) {
	_, _, err := execute(t, "lookup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestRunsRequiresDatabase(t *testing.T) {
	_, _, err := execute(t, "runs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runs requires --db")
}

func TestRunsEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	out, _, err := execute(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "No runs recorded.\n", out)
}

func TestIndexVerbose(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)
	db := filepath.Join(t.TempDir(), "german.db")

	out, errOut, err := execute(t, "index", "-v", "--dict", dict, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 21 words")
	assert.NotContains(t, out, "normalized true")
	assert.Contains(t, errOut, "dictionary "+dict+": encoding utf-8, normalized true")
	assert.Contains(t, errOut, "buckets: min 1, max")
}

func TestLookupVerbose(t *testing.T) {
	dict := testutil.WriteDictionary(t, testutil.GermanWords)

	out, errOut, err := execute(t, "lookup", "--verbose", "--dict", dict, "--format", "json", "eiD")
	require.NoError(t, err)
	assert.Contains(t, errOut, "index: 21 words in")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	_, errOut, err = execute(t, "lookup", "--dict", dict, "eiD")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "index:")
}
