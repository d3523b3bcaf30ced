package pagesfunc

import (
	"gopoltui/statefunc"

	"github.com/rivo/tview"
)

// ErrorMessage shows a modal error dialog over whatever is on screen and
// returns to the main layout when dismissed. It is wired in as the
// compile error sink.
func ErrorMessage(text string) {
	dialog := tview.NewModal()
	dialog.SetText(text)
	dialog.AddButtons([]string{"OK"})
	dialog.SetTextColor(tview.Styles.PrimaryTextColor)
	dialog.SetBackgroundColor(tview.Styles.ContrastBackgroundColor)
	dialog.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		statefunc.ShowMainVisual()
	})
	statefunc.App.SetRoot(dialog, true)
	statefunc.App.SetFocus(dialog)
	statefunc.App.ForceDraw()
}
