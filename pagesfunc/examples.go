package pagesfunc

import (
	"gopoltui/i18nfunc"
	"gopoltui/statefunc"

	"github.com/rivo/tview"
)

// Example is one canned policy, written with the default key aliases.
type Example struct {
	Name   string
	Policy string
}

var examples = []Example{
	{"Single key", "pk(Alice)"},
	{"One of two", "or(pk(Alice),pk(Bob))"},
	{"2-of-3 multisig", "thresh(2,pk(Alice),pk(Bob),pk(Carol))"},
	{"Key with timelock", "and(pk(Alice),older(144))"},
	{"Hot wallet with recovery", "or(99@pk(Alice),1@and(pk(Bob),older(4032)))"},
	{"Inheritance", "or(pk(Alice),and(pk(Dave),after(1767225600)))"},
}

// ShowExamplesList opens the canned examples. Selecting one replaces the
// policy field as a new undo baseline.
func ShowExamplesList() {
	dropDown(i18nfunc.T("menu.examples", nil), func(list *tview.List) {
		for _, ex := range examples {
			ex := ex
			list.AddItem(ex.Name, tview.Escape(ex.Policy), 0, func() {
				statefunc.ShowMainVisual()
				PolicyField.SetText(ex.Policy)
				ExpressionField.SetText("")
				ResultView.Clear()
				PolicyField.SetStatus(i18nfunc.T("status.example_loaded", map[string]interface{}{"Name": ex.Name}))
				statefunc.App.SetFocus(PolicyField)
			})
		}
	})
}
