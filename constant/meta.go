// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Reelroll is the canonical application identifier used for filesystem paths and CLI branding.
	Reelroll = "reelroll"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the HTTP User-Agent sent to the metadata service.
	UserAgent = Reelroll + "/" + Version
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// TMDB endpoints used when the configuration does not override them.
const (
	TMDBBaseURL  = "https://api.themoviedb.org/3"
	TMDBImageURL = "https://image.tmdb.org/t/p/w500"
	TMDBSiteURL  = "https://www.themoviedb.org"
)

// Release locations for the update check.
const (
	Repository  = "reelroll-cli/reelroll"
	ReleasesURL = "https://github.com/" + Repository + "/releases/tag/v"
	LatestAPI   = "https://api.github.com/repos/" + Repository + "/releases/latest"
)
