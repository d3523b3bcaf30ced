package compilefunc

import (
	"os"
	"path/filepath"
	"testing"

	"gopoltui/keyvarfunc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubCompiler = `
function compile(expression, context)
	return {
		success = true,
		error = "",
		script = "OP_CHECKSIG",
		script_asm = "ac",
		address = "bc1q-test",
		script_size = #expression,
		type = context,
		expression = expression,
	}
end
`

func loadStub(t *testing.T, script string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compiler.lua")
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))
	require.NoError(t, LoadCompilerModule(path))
	t.Cleanup(func() { SetCompilerModule(nil) })
}

func TestCompileNotReady(t *testing.T) {
	SetCompilerModule(nil)
	assert.False(t, IsReady())

	res := Compile("pk(aa)", "segwit")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestCompile(t *testing.T) {
	loadStub(t, stubCompiler)
	require.True(t, IsReady())

	res := Compile("pk(aa)", "segwit")
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Equal(t, "OP_CHECKSIG", res.Script)
	assert.Equal(t, "ac", res.ScriptAsm)
	assert.Equal(t, "bc1q-test", res.Address)
	assert.Equal(t, len("pk(aa)"), res.ScriptSize)
	assert.Equal(t, "segwit", res.TypeLabel)
	assert.Equal(t, "pk(aa)", res.CompiledExpression)
}

func TestCompileScriptError(t *testing.T) {
	loadStub(t, `function compile(expression, context) error("boom") end`)

	res := Compile("pk(aa)", "segwit")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "boom")
}

func TestCompileBadResult(t *testing.T) {
	loadStub(t, `function compile(expression, context) return 42 end`)

	res := Compile("pk(aa)", "segwit")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestCompilePolicySubstitutesAliases(t *testing.T) {
	loadStub(t, stubCompiler)

	table := keyvarfunc.NewTable()
	require.NoError(t, table.Add("Alice", "03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd"))

	res := CompilePolicy("pk(Alice)", table, "segwit")
	require.True(t, res.Success)
	assert.Equal(t, "pk(03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd)", res.CompiledExpression)
	assert.Equal(t, "pk(Alice)", keyvarfunc.ValuesToAliases(res.CompiledExpression, table))
}
