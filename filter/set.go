// Package filter matches movies against streaming services and indexes the catalog per service subset.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reelroll-cli/reelroll/streaming"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// ErrUnknownService is reported when a filter names a service outside the catalog.
var ErrUnknownService = errors.New("unknown streaming service")

const separator = ","

// Set is an order-independent set of service names. The zero value is the empty set,
// which matches every movie.
type Set struct {
	names []string
}

// NewSet builds a set, dropping blanks and duplicates.
func NewSet(names ...string) Set {
	names = lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = strings.TrimSpace(name)
		return name, name != ""
	}))
	slices.Sort(names)
	return Set{names: names}
}

// ParseKey reads a set back from its key form.
func ParseKey(key string) Set {
	return NewSet(strings.Split(key, separator)...)
}

// Parse builds a set from user input, resolving names through the catalog.
// Unknown names are reported with a suggestion.
func Parse(catalog *streaming.Catalog, names ...string) (Set, error) {
	canonical := make([]string, 0, len(names))
	for _, name := range NewSet(names...).names {
		c, ok := catalog.Canonical(name)
		if !ok {
			return Set{}, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownService, name, catalog.Closest(name))
		}
		canonical = append(canonical, c)
	}

	return NewSet(canonical...), nil
}

// Resolve maps every name the catalog knows to its canonical spelling.
// Names the catalog does not know are kept as given.
func (s Set) Resolve(catalog *streaming.Catalog) Set {
	return NewSet(lo.Map(s.names, func(name string, _ int) string {
		if c, ok := catalog.Canonical(name); ok {
			return c
		}
		return name
	})...)
}

// Key is the canonical serialized form: sorted names joined by a comma.
func (s Set) Key() string {
	return strings.Join(s.names, separator)
}

// Names returns the sorted member names.
func (s Set) Names() []string {
	return append([]string(nil), s.names...)
}

func (s Set) Len() int {
	return len(s.names)
}

func (s Set) Empty() bool {
	return len(s.names) == 0
}

func (s Set) Has(name string) bool {
	return lo.Contains(s.names, name)
}

// Equal reports whether both sets hold the same names.
func (s Set) Equal(other Set) bool {
	return s.Key() == other.Key()
}

// Toggle returns a copy with name added, or removed when already present.
func (s Set) Toggle(name string) Set {
	if s.Has(name) {
		return NewSet(lo.Without(s.names, name)...)
	}
	return NewSet(append(s.Names(), name)...)
}

func (s Set) String() string {
	if s.Empty() {
		return "all"
	}
	return strings.Join(s.names, " + ")
}

// Subsets enumerates every non-empty subset of names.
func Subsets(names []string) []Set {
	names = NewSet(names...).names
	n := len(names)
	subsets := make([]Set, 0, (1<<n)-1)

	for mask := 1; mask < 1<<n; mask++ {
		var members []string
		for i, name := range names {
			if mask&(1<<i) != 0 {
				members = append(members, name)
			}
		}
		subsets = append(subsets, NewSet(members...))
	}

	return subsets
}
