package modifiers

import (
	"sort"
	"strings"
)

// Set is an ordered collection of distinct descriptors. Sets are values:
// every operation returns a new Set and leaves its receiver untouched. The
// empty Set is nil.
type Set []Descriptor

// NewSet builds a Set from ds, dropping duplicates.
func NewSet(ds ...Descriptor) Set {
	if len(ds) == 0 {
		return nil
	}
	out := make(Set, len(ds))
	copy(out, ds)
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	unique := out[:1]
	for _, d := range out[1:] {
		if d != unique[len(unique)-1] {
			unique = append(unique, d)
		}
	}
	return unique
}

// Union returns the descriptors present in either set.
func (s Set) Union(other Set) Set {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	all := make([]Descriptor, 0, len(s)+len(other))
	all = append(all, s...)
	all = append(all, other...)
	return NewSet(all...)
}

// Intersect returns the descriptors present in both sets.
func (s Set) Intersect(other Set) Set {
	var common []Descriptor
	for _, d := range s {
		if other.Contains(d) {
			common = append(common, d)
		}
	}
	return NewSet(common...)
}

// Contains reports whether d is in the set.
func (s Set) Contains(d Descriptor) bool {
	i := sort.Search(len(s), func(i int) bool { return !s[i].less(d) })
	return i < len(s) && s[i] == d
}

// Names returns the Karabiner token of every descriptor, in set order.
func (s Set) Names() []string {
	if len(s) == 0 {
		return nil
	}
	names := make([]string, len(s))
	for i, d := range s {
		names[i] = d.Name()
	}
	return names
}

func (s Set) String() string {
	return "[" + strings.Join(s.Names(), " ") + "]"
}
