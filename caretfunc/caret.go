// Package caretfunc maps caret positions between rendered color-tag markup
// and the plain text underneath it. The plain-text rune offset is the
// authoritative caret representation: it survives any re-render, no matter
// how the markup around it changes.
package caretfunc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// colorTagPattern matches the tview color tags the highlighter emits:
// [green], [#00BFFF::b], [-], [-:-], [white:blue] and so on. Bracketed
// runs of raw text (key-origin descriptors like [73c5da0a/48h/0h]) do not
// match and are treated as ordinary characters.
var colorTagPattern = regexp.MustCompile(`^\[(#[0-9a-fA-F]{6}|[a-z]+|-)?(:(#[0-9a-fA-F]{6}|[a-z]+|-)?)?(:[a-zA-Z-]*)?\]`)

// Raw text can itself look like a color tag ("[-]", "[:]", "[-:-]"). Such
// runs are escaped tview-style before they enter markup: one extra '[' is
// inserted before the closing ']', so "[-]" becomes "[-[]". The character
// classes of the two patterns must stay in sync, or Flatten could decode a
// run EscapeTags never produced.
var (
	escapeCandidatePattern = regexp.MustCompile(`(\[[a-zA-Z0-9_,;: \-\."#]+\[*)\]`)
	escapedTagPattern      = regexp.MustCompile(`^\[([a-zA-Z0-9_,;: \-\."#]+)\[(\[*)\]`)
)

// EscapeTags escapes every bracket run in text that would otherwise parse
// as a color tag, so the characters survive rendering verbatim. Flatten
// decodes the escape, making Flatten(EscapeTags(x)) == x for any x.
func EscapeTags(text string) string {
	return escapeCandidatePattern.ReplaceAllString(text, "$1[]")
}

// EscapedTagAt returns the byte length of the escaped tag starting at
// markup[pos], or 0 if markup[pos] does not start one.
func EscapedTagAt(markup string, pos int) int {
	n, _ := escapedTagAt(markup, pos)
	return n
}

// escapedTagAt returns the byte length of the escaped tag at markup[pos]
// and the offset (relative to pos) of the escape bracket that decoding
// removes; (0, 0) when there is none. The escaped run is all ASCII, so the
// decoded form holds exactly length-1 runes.
func escapedTagAt(markup string, pos int) (length, escape int) {
	if pos >= len(markup) || markup[pos] != '[' {
		return 0, 0
	}
	m := escapedTagPattern.FindStringSubmatchIndex(markup[pos:])
	if m == nil {
		return 0, 0
	}
	return m[1], m[3]
}

// tagAt returns the length in bytes of the color tag starting at markup[pos],
// or 0 if markup[pos] does not start a tag.
func tagAt(markup string, pos int) int {
	if pos >= len(markup) || markup[pos] != '[' {
		return 0
	}
	loc := colorTagPattern.FindStringIndex(markup[pos:])
	if loc == nil {
		return 0
	}
	if loc[1] == 2 { // bare "[]" is raw text, not a tag
		return 0
	}
	return loc[1]
}

// Flatten strips all color tags from markup and decodes escaped tags back
// into their literal characters, returning the plain text the markup
// renders. Flatten(Render(x)) == x for any raw text x.
func Flatten(markup string) string {
	var sb strings.Builder
	for i := 0; i < len(markup); {
		if n, esc := escapedTagAt(markup, i); n > 0 {
			sb.WriteString(markup[i : i+esc])
			sb.WriteString(markup[i+esc+1 : i+n])
			i += n
			continue
		}
		if n := tagAt(markup, i); n > 0 {
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(markup[i:])
		sb.WriteString(markup[i : i+size])
		i += size
	}
	return sb.String()
}

// CaptureOffset converts a byte position inside markup into a plain-text
// rune offset by summing the lengths of all text segments before it,
// skipping tags. Positions beyond the end capture the full text length.
func CaptureOffset(markup string, markupPos int) int {
	offset := 0
	for i := 0; i < len(markup) && i < markupPos; {
		if n, esc := escapedTagAt(markup, i); n > 0 {
			if markupPos < i+n {
				d := markupPos - i
				if d > esc {
					d--
				}
				return offset + d
			}
			offset += n - 1
			i += n
			continue
		}
		if n := tagAt(markup, i); n > 0 {
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(markup[i:])
		i += size
		offset++
	}
	return offset
}

// RestoreOffset converts a plain-text rune offset back into a byte position
// inside markup, walking segments in order and accumulating their lengths
// until the offset falls inside one. An offset beyond the total text length
// clamps to the end of the markup; empty markup restores to 0. It never
// fails: any mismatch between offset and content degrades to a clamp.
func RestoreOffset(markup string, offset int) int {
	if offset <= 0 {
		// Skip any leading tags so the caret lands on text.
		i := 0
		for {
			n := tagAt(markup, i)
			if n == 0 {
				return i
			}
			i += n
		}
	}
	remaining := offset
	for i := 0; i < len(markup); {
		if n, esc := escapedTagAt(markup, i); n > 0 {
			if remaining >= n-1 {
				remaining -= n - 1
				i += n
				continue
			}
			if remaining < esc {
				return i + remaining
			}
			return i + remaining + 1
		}
		if n := tagAt(markup, i); n > 0 {
			i += n
			continue
		}
		if remaining == 0 {
			return i
		}
		_, size := utf8.DecodeRuneInString(markup[i:])
		i += size
		remaining--
	}
	return len(markup)
}

// TextLength returns the number of plain-text runes markup renders.
func TextLength(markup string) int {
	return CaptureOffset(markup, len(markup))
}
