package render

import (
	"testing"

	"github.com/typed-lint/typetab/core/resolve"
	"github.com/typed-lint/typetab/core/source"
	"github.com/typed-lint/typetab/core/version"
)

func testDatabase() source.Database {
	rec := func(major, minor, patch int, names ...string) resolve.Record {
		return resolve.Record{
			Version: version.Version{Major: major, Minor: minor, Patch: patch},
			Symbols: set(names...),
		}
	}

	return source.Database{
		Packages: []source.Package{
			{Name: "flake8-typing-imports", Version: "1.16.0"},
			{Name: "mypy-extensions", Version: "1.0.0"},
			{Name: "typing-extensions", Version: "4.12.2"},
		},
		Floor: version.Rounded{Major: 3, Minor: 6},
		Records: []resolve.Record{
			rec(3, 5, 0, "Any", "Union"),
			rec(3, 5, 3, "Any", "ClassVar", "Union"),
			rec(3, 6, 1, "Any", "ClassVar", "NoReturn", "Union"),
			rec(3, 8, 0, "Any", "ClassVar", "Final", "NoReturn", "Protocol", "TypedDict", "Union"),
		},
		MypyExtensions:   set("Arg", "NoReturn", "TypedDict"),
		TypingExtensions: set("ClassVar", "Final", "NoReturn", "Protocol", "TypedDict"),
	}
}

func TestDocument(t *testing.T) {
	want := `# GENERATED VIA typetab generate
# Using flake8-typing-imports==1.16.0 mypy-extensions==1.0.0 typing-extensions==4.12.2
MYPY_EXTENSIONS_SYMBOLS = (
    ('py37', ('NoReturn',)),
    ('py38', ('TypedDict',)),
)
TYPING_EXTENSIONS_SYMBOLS = (
    (
        'py36', (
            'ClassVar',
        ),
    ),
    (
        'py37', (
            'NoReturn',
        ),
    ),
    (
        'py38', (
            'Final', 'Protocol', 'TypedDict',
        ),
    ),
)
# END GENERATED
`

	got := Document(testDatabase())
	if got != want {
		t.Errorf("Document mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDocument_Idempotent(t *testing.T) {
	db := testDatabase()
	if Document(db) != Document(db) {
		t.Error("Document is not byte-idempotent")
	}
}
