package pagesfunc

import (
	"fmt"

	"gopoltui/i18nfunc"
	"gopoltui/statefunc"
	"gopoltui/uifunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MainMenu is the one-line menu bar at the top of the editor.
type MainMenu struct {
	*tview.Flex
	menuBar   *tview.TextView
	menus     []string
	selected  int
	callbacks []func()
}

func newMainMenu() *MainMenu {
	menuBar := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false)
	m := &MainMenu{
		Flex:    tview.NewFlex().SetDirection(tview.FlexColumn),
		menuBar: menuBar,
		menus: []string{
			i18nfunc.T("menu.policy", nil),
			i18nfunc.T("menu.keys", nil),
			i18nfunc.T("menu.examples", nil),
			i18nfunc.T("menu.help", nil),
		},
	}
	m.callbacks = []func(){
		showPolicyMenu,
		showKeysMenu,
		ShowExamplesList,
		showHelp,
	}
	m.updateMenuBar()
	m.SetInputCapture(m.inputHandler)
	m.AddItem(menuBar, 0, 1, true)
	return m
}

func (m *MainMenu) updateMenuBar() {
	m.menuBar.Clear()
	for i, menu := range m.menus {
		if i > 0 {
			fmt.Fprint(m.menuBar, "  ")
		}
		if i == m.selected {
			fmt.Fprintf(m.menuBar, `[black:yellow]%s[-:-]`, menu)
		} else {
			fmt.Fprintf(m.menuBar, `[white]%s[-]`, menu)
		}
	}
}

func (m *MainMenu) inputHandler(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		if m.selected > 0 {
			m.selected--
			m.updateMenuBar()
		}
		return nil
	case tcell.KeyRight:
		if m.selected < len(m.menus)-1 {
			m.selected++
			m.updateMenuBar()
		}
		return nil
	case tcell.KeyEnter:
		if m.selected >= 0 && m.selected < len(m.callbacks) && m.callbacks[m.selected] != nil {
			m.callbacks[m.selected]()
		}
		return nil
	case tcell.KeyEscape:
		statefunc.App.SetFocus(FocusedField())
		return nil
	}
	return event
}

// dropDown shows a drop-down list over the main layout; Escape returns to
// the editor.
func dropDown(title string, build func(list *tview.List)) {
	flex := tview.NewFlex().SetDirection(tview.FlexRow)
	list := tview.NewList()
	build(list)
	list.SetBorder(true).SetTitle(" " + title + " ")
	flex.AddItem(list, 0, 1, true)
	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			statefunc.ShowMainVisual()
			return nil
		}
		return event
	})
	statefunc.App.SetRoot(flex, true)
	statefunc.App.SetFocus(list)
}

func showPolicyMenu() {
	dropDown(i18nfunc.T("menu.policy", nil), func(list *tview.List) {
		list.AddItem(i18nfunc.T("action.compile", nil), "F5", 'c', func() {
			statefunc.ShowMainVisual()
			CompileCurrent()
		})
		list.AddItem(i18nfunc.T("action.context", map[string]interface{}{"Name": scriptContext}), "", 'x', func() {
			CycleScriptContext()
			statefunc.ShowMainVisual()
		})
		list.AddItem(i18nfunc.T("action.save", nil), "", 's', func() {
			SaveCurrent()
		})
		list.AddItem(i18nfunc.T("action.load", nil), "", 'l', func() {
			statefunc.ShowMainVisual()
			uifunc.ShowSavedList(func(name string, entry uifunc.SavedEntry) {
				LoadSaved(name, entry)
			})
		})
		list.AddItem(i18nfunc.T("action.clear", nil), "", 'n', func() {
			PolicyField.SetText("")
			ExpressionField.SetText("")
			ResultView.Clear()
			statefunc.ShowMainVisual()
		})
		list.AddItem(i18nfunc.T("action.quit", nil), "Ctrl+C", 'q', func() {
			statefunc.App.Stop()
		})
	})
}

func showKeysMenu() {
	dropDown(i18nfunc.T("menu.keys", nil), func(list *tview.List) {
		list.AddItem(i18nfunc.T("action.browse_keys", nil), "", 'k', func() {
			statefunc.ShowMainVisual()
			uifunc.ShowKeyBrowser()
		})
		list.AddItem(i18nfunc.T("action.toggle_keys", nil), "F2", 't', func() {
			statefunc.ShowMainVisual()
			ToggleFocusedField()
		})
	})
}

func showHelp() {
	uifunc.Message(i18nfunc.T("help.text", nil))
}
