// Package statefunc holds the shared application state: the tview
// application, the page/flex scaffolding, and the loaded key table, store
// and settings. Everything is injected once from main and read by the
// widget packages.
package statefunc

import (
	"github.com/rivo/tview"

	"gopoltui/configfunc"
	"gopoltui/keyvarfunc"
	"gopoltui/storefunc"
)

var MainFlex *tview.Flex
var EditorFlex *tview.Flex
var Pages *tview.Pages
var App *tview.Application

var visualStack *[]*tview.Primitive

var cfg configfunc.Config
var keyTable *keyvarfunc.Table
var store *storefunc.Store

func SetState(mainFlex *tview.Flex, pages *tview.Pages, app *tview.Application) {
	MainFlex = mainFlex
	MainFlex.SetDirection(tview.FlexRow)
	Pages = pages
	App = app
	EditorFlex = tview.NewFlex().SetDirection(tview.FlexRow)
	visualStack = &[]*tview.Primitive{}
}

func SetConfig(c configfunc.Config) {
	cfg = c
}

func GetConfig() configfunc.Config {
	return cfg
}

func SetKeyTable(t *keyvarfunc.Table) {
	keyTable = t
}

func GetKeyTable() *keyvarfunc.Table {
	return keyTable
}

func SetStore(s *storefunc.Store) {
	store = s
}

func GetStore() *storefunc.Store {
	return store
}

func PushVisual(p tview.Primitive) {
	*visualStack = append(*visualStack, &p)
}

func PopVisual() tview.Primitive {
	if len(*visualStack) == 0 {
		return nil
	}
	p := (*visualStack)[len(*visualStack)-1]
	*visualStack = (*visualStack)[:len(*visualStack)-1]
	App.SetFocus(*p)
	return *p
}

func clearVisualStack() {
	*visualStack = nil
	visualStack = &[]*tview.Primitive{}
}

// ShowPreviousVisual restores the primitive below the one on screen,
// closing whatever dialog or menu is currently shown.
func ShowPreviousVisual() {
	p := PopVisual()
	if p != nil {
		App.SetRoot(p, true)
	}
}

// ShowMainVisual drops back to the main editor layout.
func ShowMainVisual() {
	clearVisualStack()
	if MainFlex != nil {
		App.SetRoot(MainFlex, true)
		App.ForceDraw()
	}
}
