package timefunc

import (
	"os"
	"testing"

	"gopoltui/i18nfunc"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	i18nfunc.InitI18n("en")
	os.Exit(m.Run())
}

func TestDescribeRelative(t *testing.T) {
	assert.Contains(t, DescribeRelative(144), "144")
	assert.Contains(t, DescribeRelative(144), "days")
	assert.Contains(t, DescribeRelative(3), "minutes")
	assert.Contains(t, DescribeRelative(30), "hours")
}

func TestDescribeAbsolute(t *testing.T) {
	assert.Contains(t, DescribeAbsolute(800000), "800000")
	// 2026-01-01T00:00:00Z is past the timestamp threshold.
	assert.Contains(t, DescribeAbsolute(1767225600), "2026-01-01")
}

func TestDescribeLocktimes(t *testing.T) {
	assert.Nil(t, DescribeLocktimes("pk(Alice)"))

	out := DescribeLocktimes("or(and(pk(A),older(144)),and(pk(B),after(800000)))")
	assert.Len(t, out, 2)
	assert.Contains(t, out[0], "144")
	assert.Contains(t, out[1], "800000")
}
