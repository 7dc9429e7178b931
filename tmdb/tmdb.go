// Package tmdb implements the movie source over The Movie Database HTTP API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/reelroll-cli/reelroll/auth"
	"github.com/reelroll-cli/reelroll/constant"
	"github.com/reelroll-cli/reelroll/internal/cache"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/reelroll-cli/reelroll/log"
	"github.com/reelroll-cli/reelroll/network"
	"github.com/reelroll-cli/reelroll/source"
	"github.com/reelroll-cli/reelroll/util"
	"github.com/reelroll-cli/reelroll/where"
	"github.com/spf13/viper"
)

// ErrNoCredentials is returned when neither the config nor the keyring holds an API key.
var ErrNoCredentials = errors.New("TMDB API key is not set, run `" + constant.Reelroll + " auth` or set " + key.TMDBAPIKey)

// Options configure a Client.
type Options struct {
	BaseURL  string
	Key      string
	Region   string
	Language string

	// HTTP defaults to the shared network client.
	HTTP *http.Client

	// Providers caches availability lookups. Nil disables caching.
	Providers *cache.Cache[string, []source.ProviderRef]
}

// OptionsFromConfig reads the tmdb.* settings, falling back to the keyring for the key.
func OptionsFromConfig() (Options, error) {
	apiKey := viper.GetString(key.TMDBAPIKey)
	if apiKey == "" {
		stored, err := auth.GetKey()
		if err != nil || stored == "" {
			return Options{}, ErrNoCredentials
		}
		apiKey = stored
	}

	return Options{
		BaseURL:  viper.GetString(key.TMDBBaseURL),
		Key:      apiKey,
		Region:   viper.GetString(key.TMDBRegion),
		Language: viper.GetString(key.TMDBLanguage),
		Providers: cache.New[string, []source.ProviderRef](
			where.Providers(),
			time.Duration(viper.GetInt(key.TMDBCacheLifetime))*time.Hour,
		),
	}, nil
}

// Client is a source.Source backed by TMDB.
type Client struct {
	options Options
}

var _ source.Source = (*Client)(nil)

func New(options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = constant.TMDBBaseURL
	}
	if options.Region == "" {
		options.Region = "US"
	}
	if options.Language == "" {
		options.Language = "en-US"
	}
	if options.HTTP == nil {
		options.HTTP = network.Client
	}
	options.BaseURL = strings.TrimSuffix(options.BaseURL, "/")

	return &Client{options: options}
}

func (c *Client) Name() string {
	return "TMDB"
}

func (c *Client) Region() string {
	return c.options.Region
}

// maxPages is the last discover page TMDB will serve.
const maxPages = 500

// Discover fetches one page of popular movies.
func (c *Client) Discover(ctx context.Context, page int) (*source.Page, error) {
	log.Infof("Discovering movies, page %d", page)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("language", c.options.Language)
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")

	var response source.Page
	if err := c.get(ctx, "/discover/movie", params, &response); err != nil {
		log.Error(err)
		return nil, fmt.Errorf("%w: discover page %d: %w", source.ErrUnavailable, page, err)
	}

	if response.TotalPages < 0 {
		return nil, fmt.Errorf("%w: negative total_pages", source.ErrUnavailable)
	}

	response.TotalPages = min(response.TotalPages, maxPages)

	log.Infof("Got page %d of %d with %d movies", response.Number, response.TotalPages, len(response.Results))
	return &response, nil
}

type providersResponse struct {
	ID      int `json:"id"`
	Results map[string]struct {
		Link     string               `json:"link"`
		Flatrate []source.ProviderRef `json:"flatrate"`
	} `json:"results"`
}

// ProvidersOf returns the subscription services offering the movie in the configured region.
func (c *Client) ProvidersOf(ctx context.Context, movieID int) ([]source.ProviderRef, error) {
	cacheKey := fmt.Sprintf("%s:%d", c.options.Region, movieID)
	if c.options.Providers != nil {
		if cached, ok := c.options.Providers.Get(cacheKey).Get(); ok {
			return cached, nil
		}
	}

	var response providersResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil, &response); err != nil {
		return nil, fmt.Errorf("%w: movie %d: %w", source.ErrProviderLookup, movieID, err)
	}

	providers := response.Results[c.options.Region].Flatrate
	if providers == nil {
		providers = []source.ProviderRef{}
	}

	if c.options.Providers != nil {
		if err := c.options.Providers.Set(cacheKey, providers); err != nil {
			log.Warnf("caching providers for movie %d: %v", movieID, err)
		}
	}

	return providers, nil
}

// Ping checks that the credentials are accepted.
func (c *Client) Ping(ctx context.Context) error {
	var response struct {
		Images struct {
			BaseURL string `json:"secure_base_url"`
		} `json:"images"`
	}
	return c.get(ctx, "/configuration", nil, &response)
}

// bearer reports whether the key is a v4 read access token rather than a v3 api key.
func (c *Client) bearer() bool {
	return strings.HasPrefix(c.options.Key, "eyJ")
}

func (c *Client) get(ctx context.Context, path string, params url.Values, into any) error {
	if params == nil {
		params = url.Values{}
	}

	if !c.bearer() {
		params.Set("api_key", c.options.Key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if c.bearer() {
		req.Header.Set("Authorization", "Bearer "+c.options.Key)
	}

	resp, err := c.options.HTTP.Do(req)
	if err != nil {
		return &source.TransientError{Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		err = &StatusError{Code: resp.StatusCode, Path: path}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return &source.TransientError{Err: err}
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("malformed response from %s: %w", path, err)
	}

	return nil
}

// StatusError is a non-success HTTP response.
type StatusError struct {
	Code int
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status code %d", e.Path, e.Code)
}
