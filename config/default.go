// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/reelroll-cli/reelroll/color"
	"github.com/reelroll-cli/reelroll/constant"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Reelroll + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.TMDBAPIKey, "", "TMDB API key (v3) or read access token (v4).\nLeave empty to use the key stored with \"reelroll auth\"")
	register(key.TMDBBaseURL, constant.TMDBBaseURL, "Base URL of the TMDB API")
	register(key.TMDBImageURL, constant.TMDBImageURL, "Base URL used to build poster links")
	register(key.TMDBRegion, "US", "Region whose streaming availability is used for filtering")
	register(key.TMDBLanguage, "en-US", "Language of titles and overviews")
	register(key.TMDBCacheLifetime, 24, "Hours a movie's provider list is cached on disk. 0 disables the cache")
	register(key.StreamingServices, []string{"Netflix=8", "Disney+=337", "Prime=9", "AppleTV=350"}, "Streaming services available as filters, as Name=ProviderID.\nAt most 4 services")
	register(key.BrowseWindowSize, 9, "Number of movies in the visible window. Even values are rounded up")
	register(key.BrowseFetchThreshold, 5, "Distance from the end of the list at which the next page is requested")
	register(key.BrowseDragThreshold, 10, "Mouse drag distance in cells that moves one movie")
	register(key.FetchConcurrency, 8, "Maximum number of concurrent provider lookups")
	register(key.FetchTimeout, 10, "Timeout of a single request in seconds")
	register(key.FetchAttempts, 3, "Attempts for a page request before the failure is reported")
	register(key.FetchBackoff, 250, "Initial retry delay in milliseconds, doubled on each attempt")
	register(key.FetchMaxBackoff, 4000, "Maximum retry delay in milliseconds")
	register(key.FetchEagerIngest, false, "Show movies before their streaming providers are known")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching titles")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.TUIShowOverview, true, "Show the overview of the current movie")
	register(key.TUIShowProviders, true, "Show the streaming providers of the current movie")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUICardWidth, 18, "Width of a movie card in the window row")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
