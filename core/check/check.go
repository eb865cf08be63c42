// Package check compares pinned collaborator package versions against the
// latest releases reported by the package index.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	"golang.org/x/mod/semver"

	"github.com/typed-lint/typetab/core/source"
)

// LookupFunc returns the latest released version for a package name.
// Wired to pypi.Client.LatestVersion in production.
type LookupFunc func(ctx context.Context, name string) (string, error)

// Pins reports each pin that differs from the index latest to w and
// returns an error when any pin is behind, so callers exit non-zero. A
// pin ahead of the index (a pre-release checkout) only warns. A lookup
// failure aborts the whole check.
func Pins(ctx context.Context, packages []source.Package, lookup LookupFunc, w io.Writer) error {
	stale := 0

	for _, p := range packages {
		latest, err := lookup(ctx, p.Name)
		if err != nil {
			return fmt.Errorf("checking %s: %w", p.Name, err)
		}

		if latest == p.Version {
			log.Infof("%s: pinned %s is current", p.Name, p.Version)
			continue
		}

		if semver.IsValid("v"+p.Version) && semver.IsValid("v"+latest) {
			if semver.Compare("v"+latest, "v"+p.Version) < 0 {
				fmt.Fprintf(w, "warning: %s pin %s is ahead of index latest %s\n", p.Name, p.Version, latest)
				continue
			}
		}

		fmt.Fprintf(w, "%s: pinned %s, latest %s\n", p.Name, p.Version, latest)
		stale++
	}

	if stale > 0 {
		return fmt.Errorf("%d package pin(s) behind the index", stale)
	}
	return nil
}
