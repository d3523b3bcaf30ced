package uifunc

import (
	"gopoltui/i18nfunc"
	"gopoltui/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ShowSavedList opens the list of saved policy/expression pairs. Selecting
// an entry closes the list and hands the entry to onLoad; Delete removes
// the highlighted entry in place.
func ShowSavedList(onLoad func(name string, entry SavedEntry)) {
	list := tview.NewList().ShowSecondaryText(true)
	list.SetBorder(true)
	list.SetTitle(" " + i18nfunc.T("title.saved_list", nil) + " ")

	var names []string
	reload := func() {
		names = populateSavedList(list, func(name string, entry SavedEntry) {
			statefunc.ShowPreviousVisual()
			onLoad(name, entry)
		})
	}
	reload()

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			statefunc.ShowPreviousVisual()
			return nil
		case tcell.KeyDelete:
			if list.GetItemCount() == 0 {
				return nil
			}
			name := names[list.GetCurrentItem()]
			Confirm(i18nfunc.T("prompt.delete_saved", map[string]interface{}{"Name": name}), func(ok bool) {
				if ok {
					DeleteEntry(name)
				}
				reload()
				statefunc.App.SetRoot(list, true)
				statefunc.App.SetFocus(list)
			})
			return nil
		}
		return event
	})

	statefunc.PushVisual(statefunc.MainFlex)
	statefunc.App.SetRoot(list, true)
	statefunc.App.SetFocus(list)
}

// populateSavedList fills list with the loadable saved entries and returns
// their names in row order. Entries that fail to load are skipped, so the
// returned slice always lines up with the list rows.
func populateSavedList(list *tview.List, onSelect func(name string, entry SavedEntry)) []string {
	list.Clear()
	var names []string
	for _, name := range ListEntries() {
		entry, err := LoadEntry(name)
		if err != nil {
			continue
		}
		names = append(names, name)
		list.AddItem(tview.Escape(name), tview.Escape(entry.Policy), 0, func() {
			onSelect(name, entry)
		})
	}
	return names
}
