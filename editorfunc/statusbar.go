package editorfunc

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StatusBar is the one-line message area shown under a Field. Add it to the
// layout right below its field:
//
//	flex := tview.NewFlex().SetDirection(tview.FlexRow).
//		AddItem(field, 0, 1, true).
//		AddItem(field.GetStatusBar(), 1, 0, false)
type StatusBar struct {
	*tview.TextView
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(false).
		SetWrap(false)
	tv.SetBackgroundColor(tcell.ColorDefault)
	tv.SetTextColor(tcell.ColorWhite)
	return &StatusBar{TextView: tv}
}

// SetStatus sets the status message.
func (sb *StatusBar) SetStatus(msg string) {
	sb.Clear()
	sb.Write([]byte(tview.Escape(msg)))
}

// SetErrorStatus sets an error message rendered in red.
func (sb *StatusBar) SetErrorStatus(msg string) {
	sb.Clear()
	sb.Write([]byte("[red::]" + tview.Escape(msg) + "[-::-]"))
}
