package main

import (
	"flag"
	"fmt"

	"gopoltui/compilefunc"
	"gopoltui/configfunc"
	"gopoltui/errorhandlefunc"
	"gopoltui/i18nfunc"
	"gopoltui/pagesfunc"
	"gopoltui/statefunc"
	"gopoltui/storefunc"
	"gopoltui/uifunc"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func main() {
	configPath := flag.String("config", "gopoltui.yaml", "Path to the settings file")
	flag.Parse()

	cfg := configfunc.Load(*configPath)
	i18nfunc.InitI18n(cfg.Language)

	app := tview.NewApplication()
	mainFlex := tview.NewFlex()
	pages := tview.NewPages().
		AddPage("main", mainFlex, true, true)
	statefunc.SetState(mainFlex, pages, app)
	statefunc.SetConfig(cfg)

	store := storefunc.Open(cfg.DBPath)
	defer store.Close()
	statefunc.SetStore(store)
	table := uifunc.LoadKeyTable()

	// A missing compiler module is not fatal; compile attempts report it.
	if err := compilefunc.LoadCompilerModule(cfg.CompilerScript); err != nil {
		fmt.Println("compiler module not loaded:", err)
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlZ:
			// The undo chord always lands in the checkpoint stacks of
			// the focused field, never in any native per-keystroke
			// history.
			if f := pagesfunc.FocusedField(); f.HasFocus() {
				f.History().Undo()
				return nil
			}
		case tcell.KeyCtrlY:
			if f := pagesfunc.FocusedField(); f.HasFocus() {
				f.History().Redo()
				return nil
			}
		case tcell.KeyEscape:
			switch app.GetFocus().(type) {
			case *tview.Modal, *tview.Button, *tview.List, *tview.Table, *tview.InputField, *tview.Form:
				return event
			}
			if f := statefunc.PopVisual(); f != nil {
				app.SetRoot(f, true)
			}
			return nil
		}
		return event
	})

	errorhandlefunc.SetStatusSink(func(msg string) {
		pagesfunc.FocusedField().SetErrorStatus(msg)
	})
	errorhandlefunc.SetDialogSink(pagesfunc.ErrorMessage)

	app.EnableMouse(true)
	app.SetRoot(pages, true)
	pagesfunc.ShowEditor()
	pagesfunc.PolicyField.SetStatus(uifunc.KeyTableStatus(table))

	if err := app.Run(); err != nil {
		fmt.Println("Error running Application:", err)
	}
}
