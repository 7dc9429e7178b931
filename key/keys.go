// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// TMDB access - these keys configure the paged metadata service and its credentials.
const (
	TMDBAPIKey        = "tmdb.api_key"
	TMDBBaseURL       = "tmdb.base_url"
	TMDBImageURL      = "tmdb.image_url"
	TMDBRegion        = "tmdb.region"
	TMDBLanguage      = "tmdb.language"
	TMDBCacheLifetime = "tmdb.cache_lifetime"
)

// Streaming catalog - the fixed table of services a user can filter by.
const (
	StreamingServices = "streaming.services"
)

// Browsing - these keys size the visible window and the load-more trigger.
const (
	BrowseWindowSize     = "browse.window_size"
	BrowseFetchThreshold = "browse.fetch_threshold"
	BrowseDragThreshold  = "browse.drag_threshold"
)

// Fetching - these keys bound provider lookups and the request retry policy.
const (
	FetchConcurrency = "fetch.concurrency"
	FetchTimeout     = "fetch.timeout"
	FetchAttempts    = "fetch.attempts"
	FetchBackoff     = "fetch.backoff"
	FetchMaxBackoff  = "fetch.max_backoff"
	FetchEagerIngest = "fetch.eager_ingest"
)

// Search Interaction - these keys define the title search behaviour.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the browser's layout.
const (
	TUIShowOverview       = "tui.show_overview"
	TUIShowProviders      = "tui.show_providers"
	TUISearchPromptString = "tui.search_prompt"
	TUICardWidth          = "tui.card_width"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
