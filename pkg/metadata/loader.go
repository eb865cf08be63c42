// Package metadata loads the symbol database from a JSON document and
// validates it at the boundary, so the resolver can treat its input as
// trusted and internally consistent.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/typed-lint/typetab/core/resolve"
	"github.com/typed-lint/typetab/core/source"
	"github.com/typed-lint/typetab/core/version"
)

// document is the on-disk JSON shape.
type document struct {
	Packages  []source.Package `json:"packages"`
	Floor     string           `json:"floor"`
	Records   []record         `json:"records"`
	Universes universes        `json:"universes"`
}

type record struct {
	Version string   `json:"version"`
	Symbols []string `json:"symbols"`
}

type universes struct {
	MypyExtensions   []string `json:"mypy_extensions"`
	TypingExtensions []string `json:"typing_extensions"`
}

var _ source.Provider = (*Loader)(nil)

// Loader reads a symbol database document from a file path.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given metadata file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the metadata document. Record versions must be
// valid semver shapes and strictly ascending; both classification
// universes must be non-empty.
func (l *Loader) Load(ctx context.Context) (source.Database, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return source.Database{}, fmt.Errorf("no metadata file at %s", l.path)
		}
		return source.Database{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return source.Database{}, fmt.Errorf("failed to parse metadata %s: %w", l.path, err)
	}

	if len(doc.Packages) == 0 {
		return source.Database{}, fmt.Errorf("metadata %s lists no packages", l.path)
	}
	for _, p := range doc.Packages {
		if p.Name == "" || p.Version == "" {
			return source.Database{}, fmt.Errorf("metadata %s has a package entry missing name or version", l.path)
		}
	}

	floorVersion, err := version.Parse(doc.Floor)
	if err != nil {
		return source.Database{}, fmt.Errorf("invalid floor in %s: %w", l.path, err)
	}
	floor := version.Rounded{Major: floorVersion.Major, Minor: floorVersion.Minor}

	records, err := parseRecords(doc.Records)
	if err != nil {
		return source.Database{}, fmt.Errorf("invalid records in %s: %w", l.path, err)
	}

	mypy := toSet(doc.Universes.MypyExtensions)
	typing := toSet(doc.Universes.TypingExtensions)
	if len(mypy) == 0 || len(typing) == 0 {
		return source.Database{}, fmt.Errorf("metadata %s is missing a classification universe", l.path)
	}

	return source.Database{
		Packages:         doc.Packages,
		Floor:            floor,
		Records:          records,
		MypyExtensions:   mypy,
		TypingExtensions: typing,
	}, nil
}

// parseRecords converts the raw record list and enforces strictly
// ascending version order.
func parseRecords(raw []record) ([]resolve.Record, error) {
	records := make([]resolve.Record, 0, len(raw))
	var prev version.Version

	for i, r := range raw {
		if !semver.IsValid("v" + r.Version) {
			return nil, fmt.Errorf("record %d: %q is not a valid version", i, r.Version)
		}

		v, err := version.Parse(r.Version)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if i > 0 && prev.Compare(v) >= 0 {
			return nil, fmt.Errorf("record %d: version %s does not ascend from %s", i, v, prev)
		}
		prev = v

		records = append(records, resolve.Record{
			Version: v,
			Symbols: toSet(r.Symbols),
		})
	}

	return records, nil
}

func toSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}
