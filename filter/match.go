package filter

import (
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/streaming"
)

// Matches reports whether a movie's providers satisfy the requested service names.
// An empty request matches everything; otherwise at least one requested name must
// resolve through the catalog to a provider the movie has. Unknown names never match,
// and a movie without provider data never matches a non-empty request.
func Matches(catalog *streaming.Catalog, providers []source.ProviderRef, requested []string) bool {
	if len(requested) == 0 {
		return true
	}

	for _, name := range requested {
		id, ok := catalog.Lookup(name)
		if !ok {
			continue
		}

		for _, p := range providers {
			if p.ID == id {
				return true
			}
		}
	}

	return false
}

// MatchesSet is Matches for a typed set.
func MatchesSet(catalog *streaming.Catalog, movie *source.Movie, set Set) bool {
	return Matches(catalog, movie.Providers, set.names)
}
