// Package version models Python interpreter versions as (major, minor, patch)
// triples and the rounded (major, minor) form used for table output.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a precise interpreter version. Ordering is lexicographic on
// (Major, Minor, Patch).
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse reads a "major.minor" or "major.minor.patch" version string.
// A missing patch component is treated as zero.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: want major.minor[.patch]", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not a non-negative integer", s, p)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1]}
	if len(nums) == 3 {
		v.Patch = nums[2]
	}
	return v, nil
}

// Compare returns -1, 0, or 1 ordering v against o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpInt(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpInt(v.Minor, o.Minor)
	default:
		return cmpInt(v.Patch, o.Patch)
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Round maps v to the rounded (major, minor) pair. A nonzero patch rounds
// the minor up by one: a symbol introduced in a patch release is only
// guaranteed present from the next minor release baseline.
func (v Version) Round() Rounded {
	r := Rounded{Major: v.Major, Minor: v.Minor}
	if v.Patch != 0 {
		r.Minor++
	}
	return r
}

// Rounded is a (major, minor) pair derived from a Version via Round.
type Rounded struct {
	Major int
	Minor int
}

// Compare returns -1, 0, or 1 ordering r against o.
func (r Rounded) Compare(o Rounded) int {
	if r.Major != o.Major {
		return cmpInt(r.Major, o.Major)
	}
	return cmpInt(r.Minor, o.Minor)
}

// Label renders the table key form, major and minor digits concatenated
// after a "py" prefix (e.g. (3, 8) -> "py38").
func (r Rounded) Label() string {
	return fmt.Sprintf("py%d%d", r.Major, r.Minor)
}

func (r Rounded) String() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
