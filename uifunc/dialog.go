package uifunc

import (
	"gopoltui/statefunc"

	"github.com/rivo/tview"
)

// Confirm shows an OK/Cancel modal and reports the choice.
func Confirm(text string, callback func(bool)) {
	dialog := tview.NewModal()
	dialog.SetText(text)
	dialog.AddButtons([]string{"OK", "Cancel"})
	dialog.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		statefunc.ShowPreviousVisual()
		callback(buttonIndex == 0)
	})
	statefunc.PushVisual(statefunc.MainFlex)
	statefunc.App.SetRoot(dialog, true)
	statefunc.App.SetFocus(dialog)
	statefunc.App.ForceDraw()
}

// Message shows an informational modal with a single OK button.
func Message(text string) {
	dialog := tview.NewModal()
	dialog.SetText(text)
	dialog.AddButtons([]string{"OK"})
	dialog.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		statefunc.ShowPreviousVisual()
	})
	statefunc.PushVisual(statefunc.MainFlex)
	statefunc.App.SetRoot(dialog, true)
	statefunc.App.SetFocus(dialog)
	statefunc.App.ForceDraw()
}
