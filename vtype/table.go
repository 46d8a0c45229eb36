package vtype

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/hepvec/coords"
)

// construction maps the sorted canonical field set, joined by ",", to a system.
var construction = buildTable()

func tableKey(canonical []string) string {
	sorted := append([]string(nil), canonical...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func buildTable() map[string]coords.System {
	table := make(map[string]coords.System, 20)
	for _, sys := range coords.All() {
		key := tableKey(sys.Fields())
		if prev, dup := table[key]; dup {
			panic(fmt.Sprintf("vtype: field set %q matches both %s and %s", key, prev, sys))
		}
		table[key] = sys
	}
	return table
}

// Entry is one row of the construction table.
type Entry struct {
	Key    string
	System coords.System
}

// Table returns the construction table ordered by dimension and kind.
func Table() []Entry {
	out := make([]Entry, 0, len(construction))
	for k, sys := range construction {
		out = append(out, Entry{Key: k, System: sys})
	}
	sort.Slice(out, func(i, j int) bool {
		a := Descriptor{sys: out[i].System}
		return a.Less(Descriptor{sys: out[j].System})
	})
	return out
}

// FromNames infers the descriptor of a vector from its field names.
// slots[i] is the payload slot that names[i] fills.
func FromNames(names []string) (d Descriptor, slots []int, err error) {
	if len(names) == 0 {
		return Descriptor{}, nil, &ConstructionError{Reason: "no fields given"}
	}

	seen := make(map[string]string, len(names))
	canonical := make([]string, 0, len(names))
	flavor := coords.Geometric
	for _, n := range names {
		c, momentum, ok := coords.Canonical(n)
		if !ok {
			return Descriptor{}, nil, &ConstructionError{Fields: names, Reason: fmt.Sprintf("unrecognized field %q", n)}
		}
		if prev, dup := seen[c]; dup {
			return Descriptor{}, nil, &ConstructionError{Fields: names, Reason: fmt.Sprintf("%q and %q both name field %s", prev, n, c)}
		}
		seen[c] = n
		canonical = append(canonical, c)
		if momentum {
			flavor = coords.Momentum
		}
	}

	sys, ok := construction[tableKey(canonical)]
	if !ok {
		return Descriptor{}, nil, &ConstructionError{Fields: names, Reason: "fields do not form exactly one coordinate system"}
	}

	d = Descriptor{sys: sys, flavor: flavor}
	slots = make([]int, len(names))
	for i, n := range names {
		slots[i], _ = d.Slot(n)
	}
	return d, slots, nil
}
