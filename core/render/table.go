// Package render serializes delta tables as literal Python source text.
// Output is byte-exact by contract: downstream consumers diff the
// generated text, so ordering and line packing are deterministic.
package render

import (
	"sort"
	"strings"

	"github.com/typed-lint/typetab/core/resolve"
)

// lineLimit is the soft column limit for wrapped mode. A symbol line is
// extended only while it stays strictly under this width.
const lineLimit = 80

// Entry is one version row of a rendered table: the "pyMM" label and the
// alphabetically sorted symbol names for that version.
type Entry struct {
	Label   string
	Symbols []string
}

// Classify restricts each delta to the given symbol universe, sorts the
// survivors alphabetically, and drops versions whose intersection is
// empty. The deltas are never mutated.
func Classify(deltas []resolve.Delta, universe map[string]struct{}) []Entry {
	var entries []Entry

	for _, d := range deltas {
		var names []string
		for name := range d.Symbols {
			if _, ok := universe[name]; ok {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		entries = append(entries, Entry{Label: d.Version.Label(), Symbols: names})
	}

	return entries
}

// Compact renders one line per version:
//
//	('py36', ('A', 'B')),
//
// with no wrapping regardless of length.
func Compact(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("    (")
		b.WriteString(quote(e.Label))
		b.WriteString(", (")
		b.WriteString(tupleBody(e.Symbols))
		b.WriteString(")),\n")
	}
	return b.String()
}

// Wrapped renders a multi-line block per version:
//
//	(
//	    'py36', (
//	        'A',
//	        'B', 'C',
//	    ),
//	),
//
// Symbols are packed first-fit onto accumulator lines: a line grows by
// " 'Sym'," only while the result stays under the column limit, otherwise
// it is flushed and a new line started.
func Wrapped(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("    (\n")
		b.WriteString("        ")
		b.WriteString(quote(e.Label))
		b.WriteString(", (\n")
		for _, line := range packLines(e.Symbols, "            ") {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("        ),\n")
		b.WriteString("    ),\n")
	}
	return b.String()
}

// Assignment wraps a rendered table body in a named top-level assignment.
func Assignment(name, body string) string {
	return name + " = (\n" + body + ")\n"
}

// packLines greedily fills lines with quoted, comma-terminated symbols.
func packLines(symbols []string, indent string) []string {
	var lines []string
	var cur string

	for _, s := range symbols {
		item := quote(s) + ","
		if cur == "" {
			cur = indent + item
			continue
		}
		candidate := cur + " " + item
		if len(candidate) < lineLimit {
			cur = candidate
		} else {
			lines = append(lines, cur)
			cur = indent + item
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}

	return lines
}

// tupleBody joins quoted symbols the way Python reprs a tuple: comma-space
// separated, with a trailing comma for a single element.
func tupleBody(symbols []string) string {
	quoted := make([]string, len(symbols))
	for i, s := range symbols {
		quoted[i] = quote(s)
	}
	body := strings.Join(quoted, ", ")
	if len(symbols) == 1 {
		body += ","
	}
	return body
}

func quote(s string) string {
	return "'" + s + "'"
}
