// Package resolve computes, from an ordered sequence of per-version symbol
// sets, the rounded version at which each symbol first becomes contiguously
// available, and the incremental symbol set introduced at each rounded
// version boundary.
package resolve

import (
	"sort"

	"github.com/typed-lint/typetab/core/version"
)

// Record pairs a precise version with the symbol names present in the
// upstream database at that version. Records are consumed in ascending
// version order; ordering is the caller's responsibility.
type Record struct {
	Version version.Version
	Symbols map[string]struct{}
}

// Delta is the set of symbols first guaranteed-contiguous at a rounded
// version, minus everything introduced at any earlier rounded version.
type Delta struct {
	Version version.Rounded
	Symbols map[string]struct{}
}

// Deltas runs the full resolution pipeline: contiguity tracking, rounding,
// the floor merge, and the running delta subtraction.
//
// floor is the rounded minimum version the downstream consumer supports
// (3.6 for the upstream linter, whose own floor is 3.6.1). The rounded
// group immediately below the floor is folded into the floor group when
// both exist, so pre-floor symbols surface at the supported baseline.
//
// The result is ordered by ascending rounded version and partitions the
// tracked symbols, each appearing in exactly one Delta.
func Deltas(records []Record, floor version.Rounded) []Delta {
	earliest := minContiguous(records)
	grouped := groupRounded(earliest)
	mergeFloor(grouped, floor)
	return subtractEarlier(grouped)
}

// minContiguous walks records in order and returns, per symbol, the
// earliest version from which it is present in every later record. A
// symbol missing from any record is evicted; if it reappears, tracking
// restarts at the reappearance version.
func minContiguous(records []Record) map[string]version.Version {
	earliest := make(map[string]version.Version)

	for _, rec := range records {
		for name := range earliest {
			if _, ok := rec.Symbols[name]; !ok {
				delete(earliest, name)
			}
		}
		for name := range rec.Symbols {
			if _, ok := earliest[name]; !ok {
				earliest[name] = rec.Version
			}
		}
	}

	return earliest
}

// groupRounded inverts the per-symbol earliest versions into rounded
// version groups, unioning symbols whose precise versions round to the
// same (major, minor) pair.
func groupRounded(earliest map[string]version.Version) map[version.Rounded]map[string]struct{} {
	grouped := make(map[version.Rounded]map[string]struct{})

	for name, v := range earliest {
		r := v.Round()
		if grouped[r] == nil {
			grouped[r] = make(map[string]struct{})
		}
		grouped[r][name] = struct{}{}
	}

	return grouped
}

// mergeFloor folds the rounded group one minor below the floor into the
// floor group when both exist.
func mergeFloor(grouped map[version.Rounded]map[string]struct{}, floor version.Rounded) {
	below := version.Rounded{Major: floor.Major, Minor: floor.Minor - 1}

	from, ok := grouped[below]
	if !ok {
		return
	}
	to, ok := grouped[floor]
	if !ok {
		return
	}

	for name := range from {
		to[name] = struct{}{}
	}
	delete(grouped, below)
}

// subtractEarlier orders the rounded groups ascending and strips from each
// group every symbol already introduced by a strictly earlier group.
func subtractEarlier(grouped map[version.Rounded]map[string]struct{}) []Delta {
	keys := make([]version.Rounded, 0, len(grouped))
	for r := range grouped {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Compare(keys[j]) < 0
	})

	seen := make(map[string]struct{})
	deltas := make([]Delta, 0, len(keys))

	for _, r := range keys {
		delta := make(map[string]struct{})
		for name := range grouped[r] {
			if _, ok := seen[name]; ok {
				continue
			}
			delta[name] = struct{}{}
			seen[name] = struct{}{}
		}
		deltas = append(deltas, Delta{Version: r, Symbols: delta})
	}

	return deltas
}
