package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typed-lint/typetab/core/version"
)

// defaultFloor mirrors the production baseline: the downstream linter
// supports 3.6.1+, so the rounded floor is (3, 6).
var defaultFloor = version.Rounded{Major: 3, Minor: 6}

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func rec(major, minor, patch int, names ...string) Record {
	return Record{
		Version: version.Version{Major: major, Minor: minor, Patch: patch},
		Symbols: set(names...),
	}
}

func TestDeltas_WorkedExample(t *testing.T) {
	// With a floor of (1,1), the (1,0) group folds forward: A surfaces at
	// the supported baseline alongside B.
	records := []Record{
		rec(1, 0, 0, "A"),
		rec(1, 0, 1, "A", "B"),
		rec(2, 0, 0, "A", "B", "C"),
	}

	want := []Delta{
		{Version: version.Rounded{Major: 1, Minor: 1}, Symbols: set("A", "B")},
		{Version: version.Rounded{Major: 2, Minor: 0}, Symbols: set("C")},
	}

	got := Deltas(records, version.Rounded{Major: 1, Minor: 1})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltas_ContiguityReset(t *testing.T) {
	// B is present at 3.6.0, dropped at 3.7.0, reintroduced at 3.8.0.
	// Its earliest version must reset to the reintroduction point.
	records := []Record{
		rec(3, 6, 0, "A", "B"),
		rec(3, 7, 0, "A"),
		rec(3, 8, 0, "A", "B"),
	}

	want := []Delta{
		{Version: version.Rounded{Major: 3, Minor: 6}, Symbols: set("A")},
		{Version: version.Rounded{Major: 3, Minor: 8}, Symbols: set("B")},
	}

	got := Deltas(records, defaultFloor)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltas_SymbolRemovedForGood(t *testing.T) {
	records := []Record{
		rec(3, 6, 0, "A", "Gone"),
		rec(3, 7, 0, "A"),
	}

	want := []Delta{
		{Version: version.Rounded{Major: 3, Minor: 6}, Symbols: set("A")},
	}

	got := Deltas(records, defaultFloor)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltas_FloorMerge(t *testing.T) {
	// 3.5.0 rounds to (3,5) and 3.5.3 rounds to (3,6); the (3,5) group is
	// folded into (3,6) and no (3,5) entry survives.
	records := []Record{
		rec(3, 5, 0, "Old"),
		rec(3, 5, 3, "Old", "Mid"),
		rec(3, 7, 0, "Old", "Mid", "New"),
	}

	want := []Delta{
		{Version: version.Rounded{Major: 3, Minor: 6}, Symbols: set("Old", "Mid")},
		{Version: version.Rounded{Major: 3, Minor: 7}, Symbols: set("New")},
	}

	got := Deltas(records, defaultFloor)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deltas mismatch (-want +got):\n%s", diff)
	}

	for _, d := range got {
		if d.Version == (version.Rounded{Major: 3, Minor: 5}) {
			t.Errorf("found (3,5) delta after floor merge: %v", d)
		}
	}
}

func TestDeltas_FloorMergeRequiresBothGroups(t *testing.T) {
	// With no (3,6) group, the (3,5) group is left in place.
	records := []Record{
		rec(3, 5, 0, "Old"),
		rec(3, 7, 0, "Old", "New"),
	}

	want := []Delta{
		{Version: version.Rounded{Major: 3, Minor: 5}, Symbols: set("Old")},
		{Version: version.Rounded{Major: 3, Minor: 7}, Symbols: set("New")},
	}

	got := Deltas(records, defaultFloor)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltas_RoundedGroupsUnion(t *testing.T) {
	// 3.7.0 and 3.6.1 both round to (3,7); their symbols group together.
	records := []Record{
		rec(3, 6, 1, "A"),
		rec(3, 7, 0, "A", "B"),
		rec(3, 8, 0, "A", "B", "C"),
	}

	want := []Delta{
		{Version: version.Rounded{Major: 3, Minor: 7}, Symbols: set("A", "B")},
		{Version: version.Rounded{Major: 3, Minor: 8}, Symbols: set("C")},
	}

	got := Deltas(records, defaultFloor)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Deltas mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltas_Partition(t *testing.T) {
	records := []Record{
		rec(3, 6, 0, "A", "B"),
		rec(3, 6, 1, "A", "B", "C"),
		rec(3, 7, 0, "A", "B", "C", "D"),
		rec(3, 8, 0, "A", "B", "C", "D", "E", "F"),
	}

	got := Deltas(records, defaultFloor)

	seen := make(map[string]int)
	for _, d := range got {
		for name := range d.Symbols {
			seen[name]++
		}
	}

	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		if seen[name] != 1 {
			t.Errorf("symbol %q appears in %d deltas, want exactly 1", name, seen[name])
		}
	}
}

func TestDeltas_EmptyInput(t *testing.T) {
	if got := Deltas(nil, defaultFloor); len(got) != 0 {
		t.Errorf("Deltas(nil) = %v, want empty", got)
	}
}

func TestDeltas_DoesNotMutateInput(t *testing.T) {
	records := []Record{
		rec(3, 6, 0, "A"),
		rec(3, 7, 0, "A", "B"),
	}

	Deltas(records, defaultFloor)

	if len(records[0].Symbols) != 1 || len(records[1].Symbols) != 2 {
		t.Error("Deltas mutated its input records")
	}
}
