package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/unscramble/internal/ir"
)

func TestRender(t *testing.T) {
	assert.Equal(t, "`qzz`", Render("zzq", nil))
	assert.Equal(t, "Die", Render("eiD", []ir.Word{"Die"}))
	assert.Equal(t, `["Sei", "Sie"]`, Render("eSi", []ir.Word{"Sei", "Sie"}))
}

func TestRenderUnresolvedSortsByCodePoint(t *testing.T) {
	assert.Equal(t, "`Wderü`", RenderUnresolved("rüedW"))
	assert.Equal(t, "``", RenderUnresolved(""))
}

func TestRenderUnresolvedIdempotent(t *testing.T) {
	for _, clean := range []string{"zzq", "rüedW", "tincufhpegrlV", "a"} {
		once := RenderUnresolved(clean)
		sorted := once[1 : len(once)-1]
		assert.Equal(t, once, RenderUnresolved(sorted), clean)
	}
}

func TestRenderAmbiguousEscaping(t *testing.T) {
	got := RenderAmbiguous([]ir.Word{`a"b`, `c\d`, "e\tf", "schützen"})
	assert.Equal(t, `["a\"b", "c\\d", "e\tf", "schützen"]`, got)

	got = RenderAmbiguous([]ir.Word{"x\x01", "y"})
	assert.Equal(t, `["x\u{1}", "y"]`, got)
}

func TestRenderAmbiguousEscapesCombiningMarks(t *testing.T) {
	got := RenderAmbiguous([]ir.Word{"u\u0308ber", "\u00dcber"})
	assert.Equal(t, `["u\u{308}ber", "`+"\u00dcber"+`"]`, got)
}
