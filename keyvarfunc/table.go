// Package keyvarfunc holds the key-variable table (alias → raw key value)
// and the bidirectional substitution engine that rewrites displayed text
// between aliases and values.
package keyvarfunc

import (
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"unicode"

	"gopoltui/i18nfunc"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateValue rejects empty values and values with control characters.
// The substitution engine frames its placeholder tokens with NUL bytes; a
// value carrying one could never be told apart from a placeholder.
func validateValue(value string) error {
	if value == "" {
		return errors.New(i18nfunc.T("error.keyvar_empty_value", nil))
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return errors.New(i18nfunc.T("error.keyvar_invalid_value", nil))
		}
	}
	return nil
}

// KeyVar is one materialized table entry.
type KeyVar struct {
	Alias string
	Value string
}

// Table maps unique aliases to hex key or extended-key descriptor values.
// Alias validity is enforced at insertion time, not during substitution.
// All access is single-threaded (UI event handlers); the engine still
// materializes a Snapshot before any rewrite pass so a UI mutation between
// passes can never be observed mid-rewrite.
type Table struct {
	vars     map[string]string
	onChange func(*Table)
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{vars: make(map[string]string)}
}

// DefaultTable returns the table used when nothing is persisted yet.
func DefaultTable() *Table {
	t := NewTable()
	t.vars["Alice"] = "03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd"
	t.vars["Bob"] = "036d2b085e9e382ed10b69fc311a03f8641ccfff21574de0927513a49d9a688a00"
	t.vars["Carol"] = "02e8445082a72f29b75ca48748a914df60622a609cacfce8ed0e35804560741d29"
	t.vars["Dave"] = "028465a4c92c91b00b8820767b97b62ca0f1d5d7a0f9f0e8f4ea32ddf58378e1f1"
	t.vars["MainXpub"] = "[73c5da0a/48h/0h/0h/2h]xpub6DvXo7cHapWfPBZvDFdpnMFZGhVa9HxCoAvAnsDNNsFNEHcerfNpVmP16oxBBCUKXaaPpt5qk4CBZU2TE7DpKsCDXmm49vQMnqBgggdHFMG"
	return t
}

// SetOnChange registers the hook invoked after every successful mutation;
// the store layer uses it to persist the table.
func (t *Table) SetOnChange(fn func(*Table)) {
	t.onChange = fn
}

func (t *Table) notifyChanged() {
	if t.onChange != nil {
		t.onChange(t)
	}
}

// Add inserts a new alias. The alias must match [A-Za-z_][A-Za-z0-9_]*, be
// unique, and the value must be non-empty printable text; violations come
// back as plain errors for the caller to show, never as panics.
func (t *Table) Add(alias, value string) error {
	if !aliasPattern.MatchString(alias) {
		return errors.New(i18nfunc.T("error.keyvar_invalid_alias", map[string]interface{}{"Name": alias}))
	}
	if err := validateValue(value); err != nil {
		return err
	}
	if _, exists := t.vars[alias]; exists {
		return errors.New(i18nfunc.T("error.keyvar_duplicate_alias", map[string]interface{}{"Name": alias}))
	}
	t.vars[alias] = value
	t.notifyChanged()
	return nil
}

// Update replaces the value of an existing alias.
func (t *Table) Update(alias, value string) error {
	if _, exists := t.vars[alias]; !exists {
		return errors.New(i18nfunc.T("error.keyvar_unknown_alias", map[string]interface{}{"Name": alias}))
	}
	if err := validateValue(value); err != nil {
		return err
	}
	t.vars[alias] = value
	t.notifyChanged()
	return nil
}

// Delete removes an alias.
func (t *Table) Delete(alias string) error {
	if _, exists := t.vars[alias]; !exists {
		return errors.New(i18nfunc.T("error.keyvar_unknown_alias", map[string]interface{}{"Name": alias}))
	}
	delete(t.vars, alias)
	t.notifyChanged()
	return nil
}

// Get returns the value for alias.
func (t *Table) Get(alias string) (string, bool) {
	v, ok := t.vars[alias]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.vars)
}

// Snapshot materializes the table as a sorted slice (by alias) so rewrite
// passes iterate a stable copy.
func (t *Table) Snapshot() []KeyVar {
	out := make([]KeyVar, 0, len(t.vars))
	for a, v := range t.vars {
		out = append(out, KeyVar{Alias: a, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out
}

// Serialize encodes the table for the key-value store.
func (t *Table) Serialize() (string, error) {
	data, err := json.Marshal(t.vars)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load replaces the table contents from a serialized blob. A parse error
// leaves the table untouched so the caller can fall back to defaults.
func (t *Table) Load(serialized string) error {
	vars := make(map[string]string)
	if err := json.Unmarshal([]byte(serialized), &vars); err != nil {
		return err
	}
	t.vars = vars
	return nil
}
