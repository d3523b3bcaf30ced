package uifunc

import (
	"encoding/json"
	"errors"
	"strings"

	"gopoltui/i18nfunc"
	"gopoltui/statefunc"
)

const savedPrefix = "saved:"

// SavedEntry is one named policy/expression pair in the store.
type SavedEntry struct {
	Policy     string `json:"policy"`
	Expression string `json:"expression"`
}

// SaveEntry stores a named pair, overwriting any previous entry with the
// same name.
func SaveEntry(name string, entry SavedEntry) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(i18nfunc.T("error.saved_name_empty", nil))
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	statefunc.GetStore().Set(savedPrefix+name, string(data))
	return nil
}

// LoadEntry reads a named pair back.
func LoadEntry(name string) (SavedEntry, error) {
	var entry SavedEntry
	blob, ok := statefunc.GetStore().Get(savedPrefix + name)
	if !ok {
		return entry, errors.New(i18nfunc.T("error.saved_unknown_name", map[string]interface{}{"Name": name}))
	}
	if err := json.Unmarshal([]byte(blob), &entry); err != nil {
		return entry, err
	}
	return entry, nil
}

// ListEntries returns the sorted names of all saved pairs.
func ListEntries() []string {
	keys := statefunc.GetStore().Keys(savedPrefix)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, savedPrefix))
	}
	return names
}

// DeleteEntry removes a named pair. Unknown names are not an error.
func DeleteEntry(name string) {
	statefunc.GetStore().Delete(savedPrefix + name)
}
