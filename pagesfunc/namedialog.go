package pagesfunc

import (
	"gopoltui/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showNameDialog asks for a single name. Enter or OK confirms, Escape or
// Cancel returns to the main layout without calling onOK.
func showNameDialog(title string, onOK func(name string)) {
	input := tview.NewInputField()
	input.SetFieldWidth(0)
	input.SetBorder(true)
	input.SetTitle(" " + title + " ")

	confirm := func() {
		name := input.GetText()
		statefunc.ShowMainVisual()
		onOK(name)
	}
	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			confirm()
		case tcell.KeyEscape:
			statefunc.ShowMainVisual()
		}
	})

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(input, 3, 0, true).
		AddItem(tview.NewBox(), 0, 1, false)
	statefunc.App.SetRoot(flex, true)
	statefunc.App.SetFocus(input)
}
