package uifunc

import (
	"gopoltui/i18nfunc"
	"gopoltui/keyvarfunc"
	"gopoltui/statefunc"
)

const keyvarsKey = "keyvars"

// LoadKeyTable restores the persisted key variable table, falling back to
// the built-in defaults, and wires every later mutation back into the
// store. Call once at startup, after the store is set.
func LoadKeyTable() *keyvarfunc.Table {
	store := statefunc.GetStore()
	table := keyvarfunc.DefaultTable()
	if blob, ok := store.Get(keyvarsKey); ok {
		loaded := keyvarfunc.NewTable()
		if err := loaded.Load(blob); err == nil {
			table = loaded
		}
	}
	table.SetOnChange(func(t *keyvarfunc.Table) {
		if blob, err := t.Serialize(); err == nil {
			store.Set(keyvarsKey, blob)
		}
	})
	statefunc.SetKeyTable(table)
	return table
}

// KeyTableStatus is the message shown once the table is in place.
func KeyTableStatus(table *keyvarfunc.Table) string {
	return i18nfunc.T("status.keyvars_loaded", map[string]interface{}{"Count": table.Len()})
}
