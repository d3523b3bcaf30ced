// Package timefunc turns raw timelock arguments into readable text.
// Relative locks (older) count blocks, absolute locks (after) are either a
// block height or a unix timestamp, split at the consensus threshold.
package timefunc

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"gopoltui/i18nfunc"
)

// Values below the threshold are block heights, at or above it unix
// timestamps.
const lockTimeThreshold = 500000000

const blockInterval = 10 * time.Minute

var DateTimeFormat = "2006-01-02 15:04"

var relativePattern = regexp.MustCompile(`\bolder\((\d+)\)`)
var absolutePattern = regexp.MustCompile(`\bafter\((\d+)\)`)

// DescribeRelative renders an older() argument: a block count with its
// approximate duration.
func DescribeRelative(blocks int64) string {
	d := time.Duration(blocks) * blockInterval
	return i18nfunc.T("locktime.relative", map[string]interface{}{
		"Blocks":   blocks,
		"Duration": formatDuration(d),
	})
}

// DescribeAbsolute renders an after() argument: a block height, or a date
// when the value is past the timestamp threshold.
func DescribeAbsolute(value int64) string {
	if value < lockTimeThreshold {
		return i18nfunc.T("locktime.height", map[string]interface{}{"Height": value})
	}
	return i18nfunc.T("locktime.date", map[string]interface{}{
		"Date": time.Unix(value, 0).UTC().Format(DateTimeFormat),
	})
}

// DescribeLocktimes lists every timelock in the expression, in order of
// appearance. Expressions without locks yield nil.
func DescribeLocktimes(expression string) []string {
	var out []string
	for _, m := range relativePattern.FindAllStringSubmatch(expression, -1) {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			out = append(out, DescribeRelative(n))
		}
	}
	for _, m := range absolutePattern.FindAllStringSubmatch(expression, -1) {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			out = append(out, DescribeAbsolute(n))
		}
	}
	return out
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("~%.1f days", d.Hours()/24)
	case d >= time.Hour:
		return fmt.Sprintf("~%.1f hours", d.Hours())
	default:
		return fmt.Sprintf("~%d minutes", int(d.Minutes()))
	}
}
