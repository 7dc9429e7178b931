// Package streaming holds the fixed table of streaming services a user can filter by.
package streaming

import (
	"fmt"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/reelroll-cli/reelroll/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// MaxServices bounds the catalog so every subset of it can be indexed eagerly.
const MaxServices = 4

// Service is a filterable streaming service and its TMDB provider id.
type Service struct {
	Name string `json:"name"`
	ID   int    `json:"provider_id"`
}

func (s Service) String() string {
	return fmt.Sprintf("%s=%d", s.Name, s.ID)
}

// Catalog is an ordered, immutable set of services.
type Catalog struct {
	services []Service
	byName   map[string]Service
}

// Parse reads a service from its "Name=ID" form.
func Parse(s string) (Service, error) {
	name, id, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return Service{}, fmt.Errorf("invalid service %q, expected Name=ID", s)
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || parsed <= 0 {
		return Service{}, fmt.Errorf("invalid provider id in %q", s)
	}

	return Service{Name: name, ID: parsed}, nil
}

// NewCatalog validates services and builds a catalog keeping their order.
func NewCatalog(services ...Service) (*Catalog, error) {
	if len(services) > MaxServices {
		return nil, fmt.Errorf("too many streaming services: %d, at most %d are supported", len(services), MaxServices)
	}

	c := &Catalog{byName: make(map[string]Service, len(services))}
	ids := make(map[int]struct{}, len(services))

	for _, s := range services {
		if s.Name == "" || strings.Contains(s.Name, ",") {
			return nil, fmt.Errorf("invalid service name %q", s.Name)
		}

		normalized := normalize(s.Name)
		if _, ok := c.byName[normalized]; ok {
			return nil, fmt.Errorf("duplicate streaming service %q", s.Name)
		}
		if _, ok := ids[s.ID]; ok {
			return nil, fmt.Errorf("duplicate provider id %d", s.ID)
		}

		c.byName[normalized] = s
		ids[s.ID] = struct{}{}
		c.services = append(c.services, s)
	}

	return c, nil
}

// MustCatalog is NewCatalog that panics on invalid input.
func MustCatalog(services ...Service) *Catalog {
	return lo.Must(NewCatalog(services...))
}

// FromConfig builds the catalog from the configured Name=ID list.
func FromConfig() (*Catalog, error) {
	var services []Service
	for _, entry := range viper.GetStringSlice(key.StreamingServices) {
		s, err := Parse(entry)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}

	return NewCatalog(services...)
}

// Services returns the services in catalog order.
func (c *Catalog) Services() []Service {
	return append([]Service(nil), c.services...)
}

// Names returns the service names in catalog order.
func (c *Catalog) Names() []string {
	return lo.Map(c.services, func(s Service, _ int) string {
		return s.Name
	})
}

// Len returns the number of services.
func (c *Catalog) Len() int {
	return len(c.services)
}

// Lookup resolves a service name, ignoring case, to its provider id.
func (c *Catalog) Lookup(name string) (int, bool) {
	s, ok := c.byName[normalize(name)]
	return s.ID, ok
}

// Canonical returns the catalog spelling of name.
func (c *Catalog) Canonical(name string) (string, bool) {
	s, ok := c.byName[normalize(name)]
	return s.Name, ok
}

// Closest returns the catalog name nearest to name by edit distance.
func (c *Catalog) Closest(name string) string {
	if len(c.services) == 0 {
		return ""
	}

	normalized := normalize(name)
	return lo.MinBy(c.services, func(a, b Service) bool {
		return levenshtein.Distance(normalized, normalize(a.Name)) < levenshtein.Distance(normalized, normalize(b.Name))
	}).Name
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
