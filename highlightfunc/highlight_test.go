package highlightfunc

import (
	"testing"

	"gopoltui/caretfunc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(""))
}

func TestRenderWrapsNeverAlters(t *testing.T) {
	inputs := []string{
		"pk(Alice)",
		"and(pk(A),pk(B))",
		"thresh(2,pk(key_1),pk(key_2),older(144))",
		"v:pk(03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd)",
		"[73c5da0a/48h/0h/0h/2h]xpub661MyMwAqRbcF",
		"sha256(6c60f404f8167a38fc70eaf8aa17ac351023bef86bcb9d1086a19afe95bd5333)",
		"garbage ,,, ((( no structure at all",
	}
	for _, raw := range inputs {
		markup := Render(raw)
		assert.Equal(t, raw, caretfunc.Flatten(markup), "flattened markup must equal input: %q", raw)
	}
}

func TestRenderIdempotent(t *testing.T) {
	raw := "or(pk(Alice),and(pk(Bob),older(1000)))"
	first := Render(raw)
	second := Render(caretfunc.Flatten(first))
	assert.Equal(t, first, second)

	// No hidden counters: repeated calls are byte-identical.
	assert.Equal(t, Render(raw), Render(raw))
}

func TestRenderRuleOrder(t *testing.T) {
	// The keyword rule must claim and_v before the generic identifier rule.
	markup := Render("and_v(vc:pk(A),1)")
	assert.Contains(t, markup, "[#00BFFF::b]and_v[-::-]")
	assert.NotContains(t, markup, "[aqua]and_v")

	// The descriptor bracket rule runs before numbers and identifiers, so
	// nothing inside the brackets is re-tagged.
	markup = Render("[73c5da0a/48h/0h]xpub")
	require.Contains(t, markup, "[gray][73c5da0a/48h/0h][-]")
	assert.NotContains(t, markup, "[magenta]73c5da0a")
	assert.NotContains(t, markup, "[magenta]48")

	// Wrapper prefixes tag before identifiers.
	markup = Render("vc:pk(A)")
	assert.Contains(t, markup, "[yellow]vc:[-]")
}

func TestRenderCategories(t *testing.T) {
	markup := Render("thresh(2,pk(Alice),sha256(ab),older(144))")
	assert.Contains(t, markup, "[#00BFFF::b]thresh[-::-]")
	assert.Contains(t, markup, "[green::b]sha256[-::-]")
	assert.Contains(t, markup, "[magenta]2[-]")
	assert.Contains(t, markup, "[magenta]144[-]")
	assert.Contains(t, markup, "[aqua]Alice[-]")
	assert.Contains(t, markup, "[white],[-]")
	assert.Contains(t, markup, "[white]([-]")
}

func TestRenderPreservesTagLookalikes(t *testing.T) {
	// Text the lexical rules leave unclaimed can still look like a color
	// tag; it must survive the render/flatten cycle character for character.
	inputs := []string{
		"[-]",
		"[:]",
		"[-:-]",
		"pk(A)[-:-]",
		"[red]pk(A)",
		"a[-[]b",
	}
	for _, raw := range inputs {
		markup := Render(raw)
		assert.Equal(t, raw, caretfunc.Flatten(markup), "flattened markup must equal input: %q", raw)
		assert.Equal(t, markup, Render(caretfunc.Flatten(markup)), "idempotence for %q", raw)
	}
}

func TestRenderHexValues(t *testing.T) {
	markup := Render("pk(03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd)")
	assert.Contains(t, markup, "[magenta]03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd[-]")
}
