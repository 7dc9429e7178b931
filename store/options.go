package store

import (
	"github.com/reelroll-cli/reelroll/key"
	"github.com/spf13/viper"
)

const (
	DefaultWindowSize     = 9
	DefaultFetchThreshold = 5
)

// Options size the window and the load-more trigger.
type Options struct {
	// WindowSize is the number of movies visible at once. Even sizes are rounded up.
	WindowSize int

	// FetchThreshold is the trailing distance from the end of the active
	// sequence at which more movies are requested.
	FetchThreshold int
}

// OptionsFromConfig reads the browse.* settings.
func OptionsFromConfig() Options {
	return Options{
		WindowSize:     viper.GetInt(key.BrowseWindowSize),
		FetchThreshold: viper.GetInt(key.BrowseFetchThreshold),
	}
}

func (o Options) normalized() Options {
	if o.WindowSize <= 0 {
		o.WindowSize = DefaultWindowSize
	}
	if o.WindowSize%2 == 0 {
		o.WindowSize++
	}
	if o.FetchThreshold <= 0 {
		o.FetchThreshold = DefaultFetchThreshold
	}
	return o
}
