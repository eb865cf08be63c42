// Package source defines the boundary between the generator and the
// upstream symbol database. Callers inject a concrete Provider; the
// resolve and render packages never reach for ambient collaborator data.
package source

import (
	"context"

	"github.com/typed-lint/typetab/core/resolve"
	"github.com/typed-lint/typetab/core/version"
)

// Package pins one collaborator package version, named in the generated
// banner comment and checked against the index by the staleness command.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Database is the full upstream input: pinned collaborator versions, the
// rounded minimum supported version, the ordered per-version symbol
// history, and the two classification universes.
type Database struct {
	Packages         []Package
	Floor            version.Rounded
	Records          []resolve.Record
	MypyExtensions   map[string]struct{}
	TypingExtensions map[string]struct{}
}

// Provider loads the symbol database. Implementations validate version
// ordering and shape; downstream consumers treat the result as trusted.
type Provider interface {
	Load(ctx context.Context) (Database, error)
}
