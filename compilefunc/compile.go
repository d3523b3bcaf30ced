// Package compilefunc is the boundary to the external policy compiler.
// The compiler is a loaded script module exposing a `compile` function; it
// is injected once at startup and every call site checks readiness and
// fails soft, so a missing or broken module never crashes the front end.
package compilefunc

import (
	"gopoltui/i18nfunc"
	"gopoltui/keyvarfunc"

	"github.com/Shopify/go-lua"
)

// Result is the compiler's answer for one expression.
type Result struct {
	Success            bool
	Error              string
	Script             string
	ScriptAsm          string
	Address            string
	ScriptSize         int
	TypeLabel          string
	CompiledExpression string
}

var module *lua.State

// SetCompilerModule injects the compiler module handle. Pass nil to mark
// the compiler unavailable.
func SetCompilerModule(l *lua.State) {
	module = l
}

// LoadCompilerModule creates the module handle from a compiler script and
// injects it. On failure the previous handle is kept.
func LoadCompilerModule(scriptPath string) error {
	l := lua.NewState()
	lua.OpenLibraries(l)
	if err := lua.DoFile(l, scriptPath); err != nil {
		return err
	}
	module = l
	return nil
}

// IsReady reports whether a compiler module with a compile function is
// loaded.
func IsReady() bool {
	if module == nil {
		return false
	}
	module.Global("compile")
	ok := module.IsFunction(-1)
	module.Pop(1)
	return ok
}

// Compile runs expression through the compiler module. The expression must
// already contain raw key values, not aliases (see CompilePolicy). Any
// failure comes back inside the Result; Compile never panics.
func Compile(expression, contextID string) Result {
	if !IsReady() {
		return Result{Error: i18nfunc.T("error.compiler_not_ready", nil)}
	}
	module.Global("compile")
	module.PushString(expression)
	module.PushString(contextID)
	if err := module.ProtectedCall(2, 1, 0); err != nil {
		return Result{Error: err.Error()}
	}
	defer module.Pop(1)
	if !module.IsTable(-1) {
		return Result{Error: i18nfunc.T("error.compile_bad_result", nil)}
	}
	return Result{
		Success:            boolField("success"),
		Error:              stringField("error"),
		Script:             stringField("script"),
		ScriptAsm:          stringField("script_asm"),
		Address:            stringField("address"),
		ScriptSize:         intField("script_size"),
		TypeLabel:          stringField("type"),
		CompiledExpression: stringField("expression"),
	}
}

// CompilePolicy substitutes aliases for raw values and compiles. The
// display layer may run the echoed expression back through
// keyvarfunc.ValuesToAliases before showing it.
func CompilePolicy(policy string, table *keyvarfunc.Table, contextID string) Result {
	return Compile(keyvarfunc.AliasesToValues(policy, table), contextID)
}

func stringField(name string) string {
	module.Field(-1, name)
	s, _ := module.ToString(-1)
	module.Pop(1)
	return s
}

func boolField(name string) bool {
	module.Field(-1, name)
	b := module.ToBoolean(-1)
	module.Pop(1)
	return b
}

func intField(name string) int {
	module.Field(-1, name)
	n, _ := module.ToInteger(-1)
	module.Pop(1)
	return n
}
