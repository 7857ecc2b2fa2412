package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGermanIndex(t *testing.T) {
	idx := GermanIndex()
	assert.Equal(t, len(GermanWords), idx.Len())
}

func TestWriteDictionary(t *testing.T) {
	path := WriteDictionary(t, []string{"Die", "Würde"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Die\nWürde\n", string(data))
}
