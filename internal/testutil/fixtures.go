// Package testutil provides shared fixtures for unscrambler tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
)

// GermanWords is a small German dictionary covering the reference text.
//
// Eid and Eis collide with Die and Sei/Sie on the additive fingerprint and
// must never be reported for those tokens.
var GermanWords = []string{
	"Die",
	"Eid",
	"Würde",
	"des",
	"Menschen",
	"ist",
	"unantastbar",
	"Sei",
	"Eis",
	"Sie",
	"zu",
	"achten",
	"und",
	"schützen",
	"Verpflichtung",
	"aller",
	"atlantische",
	"staatlichen",
	"Gewalt",
	"über",
	"haus",
}

// ReferenceInput is a scrambled line of Article 1 of the German Basic Law.
const ReferenceInput = "eiD rüedW dse cnnesheM its atusar.tanbn eSi uz eahntc dnu uz shcenztü tis tincufhpegrlV ealrl iesnatclhat .eawltG"

// ReferenceOutput is the expected unscrambling of ReferenceInput.
const ReferenceOutput = `Die Würde des Menschen ist unantastbar. ["Sei", "Sie"] zu achten und zu schützen ist Verpflichtung aller ["atlantische", "staatlichen"] Gewalt.`

// GermanIndex builds an index over GermanWords.
func GermanIndex() *index.Index {
	return index.Build(ir.Words(GermanWords))
}

// WriteDictionary writes words, one per line, to a file in a fresh temp
// directory and returns its path.
func WriteDictionary(t *testing.T, words []string) string {
	t.Helper()
	return WriteFile(t, "words.dic", []byte(strings.Join(words, "\n")+"\n"))
}

// WriteFile writes data to name inside a fresh temp directory and returns
// the full path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
