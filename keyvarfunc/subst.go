package keyvarfunc

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// AliasesToValues replaces every alias occurrence with its value. Aliases
// match on identifier boundaries only, and are processed longest-name-first
// so a prefix alias cannot pre-empt a longer one. An empty table is a no-op.
func AliasesToValues(text string, table *Table) string {
	if table == nil || table.Len() == 0 || text == "" {
		return text
	}
	vars := table.Snapshot()
	sort.SliceStable(vars, func(i, j int) bool { return len(vars[i].Alias) > len(vars[j].Alias) })
	for _, kv := range vars {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(kv.Alias) + `\b`)
		text = pattern.ReplaceAllLiteralString(text, kv.Value)
	}
	return text
}

// ValuesToAliases replaces every value occurrence with its alias. Values are
// typically boundary-less hex or descriptor strings, so a naive substring
// replacement could corrupt one value that contains another as a substring.
// The rewrite therefore runs in two phases: phase 1 swaps each value
// (longest-value-first) for a placeholder token verified absent from the
// text, phase 2 swaps placeholders for aliases. A partially substituted
// alias can then never be mistaken for an unrelated value in the same pass.
//
// This is only collision-free when no table value is an arbitrary non-prefix
// substring of another; that is a table-construction invariant the engine
// cannot enforce (longest-first ordering resolves prefix collisions only).
func ValuesToAliases(text string, table *Table) string {
	if table == nil || table.Len() == 0 || text == "" {
		return text
	}
	vars := table.Snapshot()
	sort.SliceStable(vars, func(i, j int) bool { return len(vars[i].Value) > len(vars[j].Value) })

	placeholders := make(map[string]string, len(vars))
	for _, kv := range vars {
		if kv.Value == "" || !strings.Contains(text, kv.Value) {
			continue
		}
		ph := newPlaceholder(text, vars)
		text = strings.ReplaceAll(text, kv.Value, ph)
		placeholders[ph] = kv.Alias
	}
	for ph, alias := range placeholders {
		text = strings.ReplaceAll(text, ph, alias)
	}
	return text
}

// newPlaceholder returns a token absent from text. The token must also not
// contain any table value as a substring, or a short value processed later
// in phase 1 could rewrite the inside of an earlier placeholder. Values are
// validated to hold no control characters, so the NUL framing never occurs
// inside a value and the search always terminates.
func newPlaceholder(text string, vars []KeyVar) string {
	for {
		ph := "\x00" + strings.ReplaceAll(uuid.NewString(), "-", "") + "\x00"
		if strings.Contains(text, ph) {
			continue
		}
		clean := true
		for _, kv := range vars {
			if kv.Value != "" && strings.Contains(ph, kv.Value) {
				clean = false
				break
			}
		}
		if clean {
			return ph
		}
	}
}

// ContainsAnyAlias reports whether text contains any table alias as a
// case-insensitive whole word. It only picks the default display state of
// the toggle; substitution correctness never depends on it.
func ContainsAnyAlias(text string, table *Table) bool {
	if table == nil || table.Len() == 0 || text == "" {
		return false
	}
	for _, kv := range table.Snapshot() {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kv.Alias) + `\b`)
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
