// Package highlightfunc renders raw policy/expression text into tview
// color-tag markup. Render is a pure function of its input: it wraps
// characters in tags, never alters them, and the input is always plain
// text, never previously rendered markup.
package highlightfunc

import (
	"regexp"
	"sort"
	"strings"

	"gopoltui/caretfunc"
)

// Rule is one entry of the lexical table: a compiled pattern and the tags
// wrapped around every match.
type Rule struct {
	Pattern *regexp.Regexp
	Open    string
	Close   string
}

// rules is evaluated once per render pass, in order. Order is significant:
// structural and multi-token patterns must claim their text before the
// generic single-token patterns run, or a broad rule would re-tag text a
// specific rule already wrapped. Matches never overlap: every rule skips
// regions an earlier rule has covered.
var rules = []Rule{
	// Key-origin descriptor brackets: [fingerprint/derivation/path]
	{regexp.MustCompile(`\[[0-9a-fA-F]{8}(/[0-9]+[hH'])*\]`), "[gray]", "[-]"},
	// Hash-function fragments
	{regexp.MustCompile(`\b(sha256|hash256|ripemd160|hash160)\b`), "[green::b]", "[-::-]"},
	// Reserved fragment keywords, longer alternatives first
	{regexp.MustCompile(`\b(sortedmulti_a|sortedmulti|multi_a|multi|thresh|andor|and_v|and_b|and_n|or_b|or_c|or_d|or_i|and|or|pk_k|pk_h|pkh|pk|wpkh|wsh|sh|tr|older|after)\b`), "[#00BFFF::b]", "[-::-]"},
	// Wrapper prefixes: a:, s:, c:, t:, d:, v:, j:, n:, l:, u: and runs of them
	{regexp.MustCompile(`\b[acdjlnstuv]+:`), "[yellow]", "[-]"},
	// Raw hex key values
	{regexp.MustCompile(`\b[0-9a-fA-F]{20,}\b`), "[magenta]", "[-]"},
	// Numeric literals
	{regexp.MustCompile(`\b\d+\b`), "[magenta]", "[-]"},
	// Alias-shaped identifiers
	{regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`), "[aqua]", "[-]"},
	// Parentheses and comma
	{regexp.MustCompile(`[()]`), "[white]", "[-]"},
	{regexp.MustCompile(`,`), "[white]", "[-]"},
}

type span struct {
	start, end int
	rule       *Rule
}

// Render turns raw text into marked-up text. It is total (empty input
// yields empty output) and idempotent in the sense the callers rely on:
// rendering the same raw text twice produces byte-identical markup, and
// the markup always flattens back to exactly the input. Raw text no rule
// claims that would itself parse as a color tag ("[-]", "[-:-]") is
// escaped so its characters survive both display and flattening.
func Render(raw string) string {
	if raw == "" {
		return ""
	}

	covered := make([]bool, len(raw))
	var spans []span
	for i := range rules {
		rule := &rules[i]
		for _, loc := range rule.Pattern.FindAllStringIndex(raw, -1) {
			if isCovered(covered, loc[0], loc[1]) {
				continue
			}
			spans = append(spans, span{start: loc[0], end: loc[1], rule: rule})
			markCovered(covered, loc[0], loc[1])
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var sb strings.Builder
	prev := 0
	for _, s := range spans {
		sb.WriteString(caretfunc.EscapeTags(raw[prev:s.start]))
		sb.WriteString(s.rule.Open)
		sb.WriteString(raw[s.start:s.end])
		sb.WriteString(s.rule.Close)
		prev = s.end
	}
	sb.WriteString(caretfunc.EscapeTags(raw[prev:]))
	return sb.String()
}

func isCovered(covered []bool, start, end int) bool {
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered []bool, start, end int) {
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
