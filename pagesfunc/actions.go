package pagesfunc

import (
	"fmt"
	"strings"

	"gopoltui/compilefunc"
	"gopoltui/errorhandlefunc"
	"gopoltui/i18nfunc"
	"gopoltui/keyvarfunc"
	"gopoltui/statefunc"
	"gopoltui/timefunc"
	"gopoltui/uifunc"

	"github.com/rivo/tview"
)

var scriptContexts = []string{"legacy", "segwit", "taproot"}
var scriptContext = "segwit"

// CycleScriptContext advances the compile context (legacy, segwit,
// taproot) and reports it in the policy status bar.
func CycleScriptContext() {
	for i, ctx := range scriptContexts {
		if ctx == scriptContext {
			scriptContext = scriptContexts[(i+1)%len(scriptContexts)]
			break
		}
	}
	PolicyField.SetStatus(i18nfunc.T("status.context", map[string]interface{}{"Name": scriptContext}))
}

// CompileCurrent compiles the policy field. On success the derived
// expression, re-keyed to aliases, replaces the expression field as a new
// baseline and the result pane is filled; on failure the error dialog
// opens and both panes are left as they were.
func CompileCurrent() {
	policy := PolicyField.Text()
	if strings.TrimSpace(policy) == "" {
		return
	}
	table := statefunc.GetKeyTable()
	res := compilefunc.CompilePolicy(policy, table, scriptContext)
	if !res.Success {
		PolicyField.SetErrorStatus(i18nfunc.T("status.compile_failed", nil))
		errorhandlefunc.ShowCompileError(res.Error)
		return
	}
	ExpressionField.SetText(keyvarfunc.ValuesToAliases(res.CompiledExpression, table))
	fillResult(res)
	PolicyField.SetStatus(i18nfunc.T("status.compiled_ok", nil))
}

func fillResult(res compilefunc.Result) {
	ResultView.Clear()
	fmt.Fprintf(ResultView, "[yellow]%s[-] %s\n", "Type:", tview.Escape(res.TypeLabel))
	fmt.Fprintf(ResultView, "[yellow]%s[-] %s\n", "Script:", tview.Escape(res.Script))
	fmt.Fprintf(ResultView, "[yellow]%s[-] %s\n", "ASM:", tview.Escape(res.ScriptAsm))
	fmt.Fprintf(ResultView, "[yellow]%s[-] %s\n", "Address:", tview.Escape(res.Address))
	fmt.Fprintf(ResultView, "[yellow]%s[-] %d\n", "Size:", res.ScriptSize)
	for _, line := range timefunc.DescribeLocktimes(res.CompiledExpression) {
		fmt.Fprintf(ResultView, "[yellow]%s[-] %s\n", "Lock:", tview.Escape(line))
	}
}

// ToggleFocusedField switches the focused field between alias and raw
// value display. The replacement is one undoable step.
func ToggleFocusedField() {
	f := FocusedField()
	table := statefunc.GetKeyTable()
	if f.Text() == "" || table.Len() == 0 {
		return
	}
	if keyvarfunc.ContainsAnyAlias(f.Text(), table) {
		f.ReplaceText(keyvarfunc.AliasesToValues(f.Text(), table))
		f.SetStatus(i18nfunc.T("status.showing_values", nil))
	} else {
		f.ReplaceText(keyvarfunc.ValuesToAliases(f.Text(), table))
		f.SetStatus(i18nfunc.T("status.showing_aliases", nil))
	}
}

// SaveCurrent asks for a name and stores the policy/expression pair.
func SaveCurrent() {
	showNameDialog(i18nfunc.T("title.save_name", nil), func(name string) {
		err := uifunc.SaveEntry(name, uifunc.SavedEntry{
			Policy:     PolicyField.Text(),
			Expression: ExpressionField.Text(),
		})
		if err != nil {
			errorhandlefunc.ThrowError(err.Error(), errorhandlefunc.ErrorTypeValidation)
			return
		}
		PolicyField.SetStatus(i18nfunc.T("status.saved", map[string]interface{}{"Name": name}))
	})
}

// LoadSaved puts a saved pair into the fields. Both loads are new undo
// baselines.
func LoadSaved(name string, entry uifunc.SavedEntry) {
	PolicyField.SetText(entry.Policy)
	ExpressionField.SetText(entry.Expression)
	ResultView.Clear()
	PolicyField.SetStatus(i18nfunc.T("status.loaded", map[string]interface{}{"Name": name}))
	statefunc.App.SetFocus(PolicyField)
}
