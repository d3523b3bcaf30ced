package pagesfunc

import (
	"gopoltui/editorfunc"
	"gopoltui/i18nfunc"
	"gopoltui/statefunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var PolicyField *editorfunc.Field
var ExpressionField *editorfunc.Field
var ResultView *tview.TextView

// ShowEditor builds the main layout: the menu bar, the policy field above
// the expression field (each with its status bar), and the compile result
// pane at the bottom.
func ShowEditor() {
	cfg := statefunc.GetConfig()

	PolicyField = editorfunc.NewField(" " + i18nfunc.T("title.policy", nil) + " ")
	ExpressionField = editorfunc.NewField(" " + i18nfunc.T("title.expression", nil) + " ")
	for _, f := range []*editorfunc.Field{PolicyField, ExpressionField} {
		f.SetRenderDebounce(cfg.RenderDebounce())
		f.History().SetDebounce(cfg.CheckpointDebounce())
		f.History().SetMaxEntries(cfg.MaxCheckpoints)
		f.SetPost(func(fn func()) {
			statefunc.App.QueueUpdateDraw(fn)
		})
	}
	PolicyField.SetOnChange(func() {
		PolicyField.SetStatus(i18nfunc.T("status.edited", nil))
	})

	ResultView = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	ResultView.SetBorder(true)
	ResultView.SetTitle(" " + i18nfunc.T("title.result", nil) + " ")

	statefunc.EditorFlex.Clear()
	statefunc.EditorFlex.
		AddItem(PolicyField, 0, 1, true).
		AddItem(PolicyField.GetStatusBar(), 1, 0, false).
		AddItem(ExpressionField, 0, 1, false).
		AddItem(ExpressionField.GetStatusBar(), 1, 0, false)

	menu := newMainMenu()
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(menu, 1, 0, false).
		AddItem(statefunc.EditorFlex, 0, 2, true).
		AddItem(ResultView, 8, 0, false)

	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			if PolicyField.HasFocus() {
				statefunc.App.SetFocus(ExpressionField)
			} else {
				statefunc.App.SetFocus(PolicyField)
			}
			return nil
		case tcell.KeyF5:
			CompileCurrent()
			return nil
		case tcell.KeyF2:
			ToggleFocusedField()
			return nil
		case tcell.KeyF10:
			if menu.HasFocus() {
				statefunc.App.SetFocus(FocusedField())
			} else {
				statefunc.App.SetFocus(menu)
			}
			return nil
		}
		return event
	})

	statefunc.MainFlex.AddItem(flex, 0, 1, true)
	statefunc.App.SetFocus(PolicyField)
}

// FocusedField returns the field holding focus, defaulting to the policy
// field.
func FocusedField() *editorfunc.Field {
	if ExpressionField != nil && ExpressionField.HasFocus() {
		return ExpressionField
	}
	return PolicyField
}
