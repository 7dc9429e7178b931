package fetch

import (
	"time"

	"github.com/reelroll-cli/reelroll/key"
	"github.com/spf13/viper"
)

// Options bound the requests of one coordinator.
type Options struct {
	// Concurrency is the number of provider lookups running at once.
	Concurrency int

	// Timeout applies to every single request. Zero disables it.
	Timeout time.Duration

	// Attempts, Backoff and MaxBackoff shape the retries of one page request.
	Attempts   uint
	Backoff    time.Duration
	MaxBackoff time.Duration

	// EagerIngest caches a page before its provider lookups resolve.
	EagerIngest bool
}

func OptionsFromConfig() Options {
	return Options{
		Concurrency: viper.GetInt(key.FetchConcurrency),
		Timeout:     time.Duration(viper.GetInt(key.FetchTimeout)) * time.Second,
		Attempts:    uint(max(viper.GetInt(key.FetchAttempts), 1)),
		Backoff:     time.Duration(viper.GetInt(key.FetchBackoff)) * time.Millisecond,
		MaxBackoff:  time.Duration(viper.GetInt(key.FetchMaxBackoff)) * time.Millisecond,
		EagerIngest: viper.GetBool(key.FetchEagerIngest),
	}
}

func (o Options) normalized() Options {
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.Attempts < 1 {
		o.Attempts = 1
	}
	if o.MaxBackoff < o.Backoff {
		o.MaxBackoff = o.Backoff
	}
	return o
}
