package uifunc

import (
	"gopoltui/errorhandlefunc"
	"gopoltui/i18nfunc"
	"gopoltui/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showKeyForm shows the add/edit form for one key variable. When editAlias
// is empty the form creates a new entry; otherwise it updates the value of
// the existing one. done is called after the form closes, whether or not a
// change was made.
func showKeyForm(editAlias, value string, done func()) {
	form := tview.NewForm()
	form.SetBorder(true)
	if editAlias == "" {
		form.SetTitle(" " + i18nfunc.T("title.key_add", nil) + " ")
		form.AddInputField(i18nfunc.T("column.alias", nil), "", 20, nil, nil)
	} else {
		form.SetTitle(" " + i18nfunc.T("title.key_edit", nil) + " ")
		form.AddInputField(i18nfunc.T("column.alias", nil), editAlias, 20, nil, nil)
		item := form.GetFormItem(0).(*tview.InputField)
		item.SetDisabled(true)
	}
	form.AddInputField(i18nfunc.T("column.value", nil), value, 0, nil, nil)

	form.AddButton("OK", func() {
		alias := form.GetFormItem(0).(*tview.InputField).GetText()
		newValue := form.GetFormItem(1).(*tview.InputField).GetText()
		var err error
		if editAlias == "" {
			err = statefunc.GetKeyTable().Add(alias, newValue)
		} else {
			err = statefunc.GetKeyTable().Update(editAlias, newValue)
		}
		if err != nil {
			errorhandlefunc.ThrowError(err.Error(), errorhandlefunc.ErrorTypeValidation)
			return
		}
		done()
	})
	form.AddButton("Cancel", func() {
		done()
	})
	form.SetCancelFunc(done)
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			done()
			return nil
		}
		return event
	})
	statefunc.App.SetRoot(form, true)
	statefunc.App.SetFocus(form)
}
