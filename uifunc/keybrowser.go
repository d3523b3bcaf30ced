package uifunc

import (
	"gopoltui/errorhandlefunc"
	"gopoltui/i18nfunc"
	"gopoltui/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// KeyBrowser lists the key variable table and lets the user add, edit and
// delete entries. Changes go through keyvarfunc, so validation and the
// persistence hook run on every mutation.
type KeyBrowser struct {
	*tview.Flex
	table *tview.Table
	hint  *tview.TextView
}

func newKeyBrowser() *KeyBrowser {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetTitle(" " + i18nfunc.T("title.key_variables", nil) + " ")
	hint := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	hint.SetText(i18nfunc.T("hint.key_browser", nil))
	b := &KeyBrowser{
		Flex:  tview.NewFlex().SetDirection(tview.FlexRow),
		table: table,
		hint:  hint,
	}
	b.AddItem(table, 0, 1, true)
	b.AddItem(hint, 1, 0, false)
	table.SetInputCapture(b.handleInput)
	return b
}

// ShowKeyBrowser opens the key variable browser over the main layout.
func ShowKeyBrowser() {
	b := newKeyBrowser()
	b.reload()
	statefunc.PushVisual(statefunc.MainFlex)
	statefunc.App.SetRoot(b, true)
	statefunc.App.SetFocus(b.table)
}

func (b *KeyBrowser) reload() {
	b.table.Clear()
	b.table.SetCell(0, 0, tview.NewTableCell(i18nfunc.T("column.alias", nil)).
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false))
	b.table.SetCell(0, 1, tview.NewTableCell(i18nfunc.T("column.value", nil)).
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false).
		SetExpansion(1))
	for i, kv := range statefunc.GetKeyTable().Snapshot() {
		b.table.SetCell(i+1, 0, tview.NewTableCell(tview.Escape(kv.Alias)))
		b.table.SetCell(i+1, 1, tview.NewTableCell(tview.Escape(kv.Value)).SetExpansion(1))
	}
	if b.table.GetRowCount() > 1 {
		b.table.Select(1, 0)
	}
}

// selectedAlias returns the alias on the selected row, or "".
func (b *KeyBrowser) selectedAlias() string {
	row, _ := b.table.GetSelection()
	if row < 1 {
		return ""
	}
	vars := statefunc.GetKeyTable().Snapshot()
	if row-1 >= len(vars) {
		return ""
	}
	return vars[row-1].Alias
}

func (b *KeyBrowser) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		statefunc.ShowPreviousVisual()
		return nil
	case tcell.KeyInsert:
		b.showForm("", "")
		return nil
	case tcell.KeyEnter:
		if alias := b.selectedAlias(); alias != "" {
			value, _ := statefunc.GetKeyTable().Get(alias)
			b.showForm(alias, value)
		}
		return nil
	case tcell.KeyDelete:
		b.deleteSelected()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'a':
			b.showForm("", "")
			return nil
		case 'e':
			if alias := b.selectedAlias(); alias != "" {
				value, _ := statefunc.GetKeyTable().Get(alias)
				b.showForm(alias, value)
			}
			return nil
		case 'd':
			b.deleteSelected()
			return nil
		}
	}
	return event
}

func (b *KeyBrowser) deleteSelected() {
	alias := b.selectedAlias()
	if alias == "" {
		return
	}
	Confirm(i18nfunc.T("prompt.delete_key", map[string]interface{}{"Name": alias}), func(ok bool) {
		if ok {
			if err := statefunc.GetKeyTable().Delete(alias); err != nil {
				errorhandlefunc.ThrowError(err.Error(), errorhandlefunc.ErrorTypeValidation)
			}
		}
		b.reload()
		statefunc.App.SetRoot(b, true)
		statefunc.App.SetFocus(b.table)
	})
}

// showForm opens the entry form over the browser. An empty alias means a
// new entry; otherwise the alias is fixed and only the value is editable.
func (b *KeyBrowser) showForm(alias, value string) {
	showKeyForm(alias, value, func() {
		b.reload()
		statefunc.App.SetRoot(b, true)
		statefunc.App.SetFocus(b.table)
	})
}
