package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
	"github.com/roach88/unscramble/internal/testutil"
)

func TestSplitToken(t *testing.T) {
	tests := []struct {
		raw  string
		want Token
	}{
		{"eiD", Token{Original: "eiD", Clean: "eiD"}},
		{"atusar.tanbn", Token{Original: "atusar.tanbn", Clean: "atusartanbn", Post: "."}},
		{".eawltG", Token{Original: ".eawltG", Clean: "eawltG", Post: "."}},
		{"(„rüedW“)", Token{Original: "(„rüedW“)", Pre: "(„", Clean: "rüedW", Post: "“)"}},
		{"a-b?c:", Token{Original: "a-b?c:", Clean: "abc", Post: "-?:"}},
		{"„(x", Token{Original: "„(x", Pre: "„(", Clean: "x"}},
		{"-", Token{Original: "-", Post: "-"}},
		{"don't", Token{Original: "don't", Clean: "don't"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitToken(tt.raw))
		})
	}
}

func TestIsSpecial(t *testing.T) {
	for _, r := range "(„,.):“-?" {
		assert.True(t, IsSpecial(r), "%q", r)
	}
	for _, r := range "a!;'\"”" {
		assert.False(t, IsSpecial(r), "%q", r)
	}
}

func TestResolveCleanExactPass(t *testing.T) {
	idx := testutil.GermanIndex()

	res := ResolveClean(idx, "rüedW")
	assert.Equal(t, ir.PassExact, res.Pass)
	assert.Equal(t, []ir.Word{"Würde"}, res.Candidates)
	assert.Equal(t, ir.OutcomeResolved, res.Outcome())
	assert.Equal(t, "Würde", res.Rendered())
}

func TestResolveCleanFoldedPass(t *testing.T) {
	idx := testutil.GermanIndex()

	tests := []struct {
		clean string
		want  ir.Word
	}{
		{"nethcA", "Achten"},
		{"Achten", "Achten"},
		{"chAten", "Achten"},
		{"ACHTEN", "Achten"},
		{"rbeÜ", "Über"},
		{"suaH", "Haus"},
	}

	for _, tt := range tests {
		t.Run(tt.clean, func(t *testing.T) {
			res := ResolveClean(idx, tt.clean)
			assert.Equal(t, ir.PassFolded, res.Pass)
			assert.Equal(t, []ir.Word{tt.want}, res.Candidates)
		})
	}
}

func TestResolveCleanFoldedForcesFirstUppercase(t *testing.T) {
	idx := index.Build(ir.Words([]string{"ist"}))

	res := ResolveClean(idx, "tsI")
	require.Equal(t, ir.PassFolded, res.Pass)
	assert.Equal(t, []ir.Word{"Ist"}, res.Candidates)

	// The first uppercase letter is forced even when the token is all caps.
	res = ResolveClean(idx, "TSI")
	assert.Equal(t, ir.PassNone, res.Pass)
	assert.Empty(t, res.Candidates)
}

func TestResolveCleanExactWinsOverFolded(t *testing.T) {
	idx := index.Build(ir.Words([]string{"Achten", "achten"}))

	res := ResolveClean(idx, "nethcA")
	assert.Equal(t, ir.PassExact, res.Pass)
	assert.Equal(t, []ir.Word{"Achten"}, res.Candidates)
}

func TestResolveCleanAmbiguous(t *testing.T) {
	res := ResolveClean(testutil.GermanIndex(), "eSi")
	assert.Equal(t, ir.OutcomeAmbiguous, res.Outcome())
	assert.Equal(t, `["Sei", "Sie"]`, res.Rendered())
}

func TestResolveCleanUnknown(t *testing.T) {
	res := ResolveClean(testutil.GermanIndex(), "zzq")
	assert.Equal(t, ir.PassNone, res.Pass)
	assert.Empty(t, res.Candidates)
	assert.Equal(t, "`qzz`", res.Rendered())
}

func TestUnscrambleTokenPunctuation(t *testing.T) {
	e := New(testutil.GermanIndex())

	tests := []struct {
		raw  string
		want string
	}{
		{"eiD", "Die"},
		{"atusar.tanbn", "unantastbar."},
		{".eawltG", "Gewalt."},
		{"(„rüedW“)", "(„Würde“)"},
		{"e.S)i", `["Sei", "Sie"].)`},
		{"zzq,", "`qzz`,"},
		{"-", "``-"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, e.UnscrambleToken(tt.raw))
		})
	}
}

func TestUnscrambleTokenPunctuationRoundTrip(t *testing.T) {
	e := New(testutil.GermanIndex())
	pres := []string{"", "(", "„", "(„", "„("}
	posts := []string{"", ",", ".", ")", "“", ":", "-", "?", ".“", "),"}

	for _, pre := range pres {
		for _, post := range posts {
			raw := pre + "dse" + post
			t.Run(raw, func(t *testing.T) {
				tok := SplitToken(raw)
				assert.Equal(t, "dse", tok.Clean)
				assert.Equal(t, pre+"des"+post, e.UnscrambleToken(raw))
			})
		}
	}
}
