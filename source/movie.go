// Package source defines the movie domain model and the paged catalog it is read from.
package source

import (
	"fmt"
	"strings"

	"github.com/reelroll-cli/reelroll/constant"
	"github.com/samber/lo"
)

// ProviderRef describes one streaming service offering a movie.
type ProviderRef struct {
	ID   int    `json:"provider_id"`
	Name string `json:"provider_name"`
	Logo string `json:"logo_path,omitempty"`
}

// Movie is a single catalog entry.
// Everything except Providers is immutable once the movie is cached.
type Movie struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Poster      string        `json:"poster_path,omitempty"`
	Backdrop    string        `json:"backdrop_path,omitempty"`
	Overview    string        `json:"overview,omitempty"`
	ReleaseDate string        `json:"release_date,omitempty"`
	Rating      float64       `json:"vote_average"`
	Providers   []ProviderRef `json:"providers"`
}

// Page is one page of the catalog.
type Page struct {
	Number     int      `json:"page"`
	Results    []*Movie `json:"results"`
	TotalPages int      `json:"total_pages"`
}

func (m *Movie) String() string {
	if year := m.Year(); year != "" {
		return fmt.Sprintf("%s (%s)", m.Title, year)
	}
	return m.Title
}

// Year returns the release year, or an empty string when the date is unknown.
func (m *Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// URL returns the public TMDB page of the movie.
func (m *Movie) URL() string {
	return fmt.Sprintf("%s/movie/%d", constant.TMDBSiteURL, m.ID)
}

// PosterURL joins the poster path with an image base URL.
func (m *Movie) PosterURL(base string) string {
	if m.Poster == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(m.Poster, "/")
}

// ProviderNames lists the display names of the attached providers.
func (m *Movie) ProviderNames() []string {
	return lo.Map(m.Providers, func(p ProviderRef, _ int) string {
		return p.Name
	})
}

// HasProvider reports whether a provider with the given id is attached.
func (m *Movie) HasProvider(id int) bool {
	return lo.ContainsBy(m.Providers, func(p ProviderRef) bool {
		return p.ID == id
	})
}

// Clone returns a copy that does not share the provider slice.
func (m *Movie) Clone() *Movie {
	clone := *m
	clone.Providers = append([]ProviderRef(nil), m.Providers...)
	return &clone
}
