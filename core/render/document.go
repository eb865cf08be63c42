package render

import (
	"strings"

	"github.com/typed-lint/typetab/core/resolve"
	"github.com/typed-lint/typetab/core/source"
)

// Generated table assignment names, fixed output contract.
const (
	MypyTableName   = "MYPY_EXTENSIONS_SYMBOLS"
	TypingTableName = "TYPING_EXTENSIONS_SYMBOLS"
)

// Document assembles the complete generated text block: the banner
// comment with the pinned collaborator versions, the compact
// mypy-extensions table, the wrapped typing-extensions table, and the
// trailing end marker.
func Document(db source.Database) string {
	deltas := resolve.Deltas(db.Records, db.Floor)

	var b strings.Builder
	b.WriteString("# GENERATED VIA typetab generate\n")
	b.WriteString(banner(db.Packages))
	b.WriteString(Assignment(MypyTableName, Compact(Classify(deltas, db.MypyExtensions))))
	b.WriteString(Assignment(TypingTableName, Wrapped(Classify(deltas, db.TypingExtensions))))
	b.WriteString("# END GENERATED\n")
	return b.String()
}

// banner renders the "# Using name==version ..." comment line.
func banner(packages []source.Package) string {
	pins := make([]string, len(packages))
	for i, p := range packages {
		pins[i] = p.Name + "==" + p.Version
	}
	return "# Using " + strings.Join(pins, " ") + "\n"
}
