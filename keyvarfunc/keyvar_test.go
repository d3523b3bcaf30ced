package keyvarfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableWith(t *testing.T, vars map[string]string) *Table {
	t.Helper()
	table := NewTable()
	for alias, value := range vars {
		require.NoError(t, table.Add(alias, value))
	}
	return table
}

func TestAliasesToValuesBoundaries(t *testing.T) {
	table := tableWith(t, map[string]string{
		"Alice": "03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd",
	})

	out := AliasesToValues("pk(Alice)", table)
	assert.Equal(t, "pk(03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd)", out)

	// Alice_2 is a different identifier; no partial match.
	assert.Equal(t, "pk(Alice_2)", AliasesToValues("pk(Alice_2)", table))
}

func TestAliasesToValuesLongestFirst(t *testing.T) {
	table := tableWith(t, map[string]string{"A": "1", "AB": "2"})
	// A prefix alias must not pre-empt the longer one.
	assert.Equal(t, "2", AliasesToValues("AB", table))
	assert.Equal(t, "1", AliasesToValues("A", table))
	assert.Equal(t, "thresh(2,1,2)", AliasesToValues("thresh(2,A,AB)", table))
}

func TestValuesToAliasesCollisionSafety(t *testing.T) {
	// Bob's value contains Carol's as a prefix; longest-value-first plus
	// the placeholder phase keeps them apart.
	table := tableWith(t, map[string]string{
		"Carol": "02e844",
		"Bob":   "02e8445082a72f29b75ca48748a914df60622a609cacfce8ed0e35804560741d29",
	})
	out := ValuesToAliases("pk(02e8445082a72f29b75ca48748a914df60622a609cacfce8ed0e35804560741d29),pk(02e844)", table)
	assert.Equal(t, "pk(Bob),pk(Carol)", out)
}

func TestValuesToAliasesShortValues(t *testing.T) {
	// Single-character values must not corrupt the placeholders of values
	// substituted earlier in the same pass.
	table := tableWith(t, map[string]string{"A": "1", "AB": "2"})
	assert.Equal(t, "AB", ValuesToAliases("2", table))
	assert.Equal(t, "and(A,AB)", ValuesToAliases("and(1,2)", table))
}

func TestRoundTrip(t *testing.T) {
	table := tableWith(t, map[string]string{
		"Alice": "03a34b99f22c790c4e36b2b3c2c35a36db06226e41c692fc82b8b56ac1c540c5bd",
		"Bob":   "036d2b085e9e382ed10b69fc311a03f8641ccfff21574de0927513a49d9a688a00",
	})
	inputs := []string{
		"pk(Alice)",
		"or(pk(Alice),pk(Bob))",
		"thresh(2,pk(Alice),pk(Bob),older(144))",
	}
	for _, s := range inputs {
		withValues := AliasesToValues(s, table)
		assert.Equal(t, s, ValuesToAliases(withValues, table), "round trip of %q", s)
		assert.Equal(t, withValues, AliasesToValues(ValuesToAliases(withValues, table), table))
	}
}

func TestSubstitutionEmptyTableNoOp(t *testing.T) {
	assert.Equal(t, "pk(Alice)", AliasesToValues("pk(Alice)", NewTable()))
	assert.Equal(t, "pk(Alice)", ValuesToAliases("pk(Alice)", NewTable()))
	assert.Equal(t, "pk(Alice)", AliasesToValues("pk(Alice)", nil))
	assert.False(t, ContainsAnyAlias("pk(Alice)", nil))
}

func TestContainsAnyAlias(t *testing.T) {
	table := tableWith(t, map[string]string{"Alice": "aa", "Bob": "bb"})
	assert.True(t, ContainsAnyAlias("pk(Alice)", table))
	assert.True(t, ContainsAnyAlias("pk(ALICE)", table))
	assert.True(t, ContainsAnyAlias("pk(bob)", table))
	assert.False(t, ContainsAnyAlias("pk(Malice)", table))
	assert.False(t, ContainsAnyAlias("", table))
}

func TestTableValidation(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Add("Alice", "aa"))

	assert.Error(t, table.Add("Alice", "bb"), "duplicate alias")
	assert.Error(t, table.Add("9lives", "aa"), "alias must not start with a digit")
	assert.Error(t, table.Add("has space", "aa"))
	assert.Error(t, table.Add("", "aa"))
	assert.Error(t, table.Add("Bob", ""), "empty value")
	assert.Error(t, table.Add("Bob", "aa\x00bb"), "NUL byte in value")
	assert.Error(t, table.Add("Bob", "aa\nbb"), "control character in value")
	assert.Error(t, table.Update("Alice", "aa\x00bb"))
	assert.Error(t, table.Update("Nobody", "aa"))
	assert.Error(t, table.Delete("Nobody"))

	require.NoError(t, table.Update("Alice", "cc"))
	v, ok := table.Get("Alice")
	require.True(t, ok)
	assert.Equal(t, "cc", v)
	require.NoError(t, table.Delete("Alice"))
	assert.Equal(t, 0, table.Len())
}

func TestTableSerializeLoad(t *testing.T) {
	table := tableWith(t, map[string]string{"Alice": "aa", "Bob": "bb"})
	blob, err := table.Serialize()
	require.NoError(t, err)

	loaded := NewTable()
	require.NoError(t, loaded.Load(blob))
	assert.Equal(t, table.Snapshot(), loaded.Snapshot())

	// A parse error leaves the table untouched.
	assert.Error(t, loaded.Load("{not json"))
	assert.Equal(t, 2, loaded.Len())
}

func TestTableOnChange(t *testing.T) {
	table := NewTable()
	calls := 0
	table.SetOnChange(func(*Table) { calls++ })

	require.NoError(t, table.Add("Alice", "aa"))
	require.NoError(t, table.Update("Alice", "bb"))
	require.NoError(t, table.Delete("Alice"))
	assert.Error(t, table.Delete("Alice"))
	assert.Equal(t, 3, calls, "only successful mutations persist")
}
