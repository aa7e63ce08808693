package routeconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/maskroute/mask"
)

var (
	// ErrInvalidRoute is wrapped by every validation error.
	ErrInvalidRoute = errors.New("routeconf: invalid route")
)

// Config is a route table.
type Config struct {
	// Prefix is the path the routes are mounted under. Empty means "/".
	Prefix string `yaml:"prefix,omitempty"`

	Routes []RouteConfig `yaml:"routes"`
}

// RouteConfig describes a single route. Exactly one of Mask and Regexp must
// be set.
type RouteConfig struct {
	Name    string `yaml:"name,omitempty"`
	Mask    string `yaml:"mask,omitempty"`
	Regexp  string `yaml:"regexp,omitempty"`
	Handler string `yaml:"handler,omitempty"`
}

// HandlerKey returns the key used to look up the route handler.
func (rc RouteConfig) HandlerKey() string {
	if rc.Handler != "" {
		return rc.Handler
	}
	return rc.Name
}

// Load decodes and validates a route table. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("routeconf: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile reads a route table from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routeconf: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks that every route has exactly one pattern, that the
// pattern compiles and that names are unique.
func (c *Config) Validate() error {
	names := make(map[string]int, len(c.Routes))

	for i, rc := range c.Routes {
		switch {
		case rc.Mask != "" && rc.Regexp != "":
			return fmt.Errorf("%w %d: both mask and regexp set", ErrInvalidRoute, i)
		case rc.Mask == "" && rc.Regexp == "":
			return fmt.Errorf("%w %d: mask or regexp required", ErrInvalidRoute, i)
		}

		if rc.Name != "" {
			if j, ok := names[rc.Name]; ok {
				return fmt.Errorf("%w %d: name %q already used by route %d", ErrInvalidRoute, i, rc.Name, j)
			}
			names[rc.Name] = i
		}

		if rc.Mask != "" {
			if _, err := mask.Compile(rc.Mask); err != nil {
				return fmt.Errorf("%w %d: %w", ErrInvalidRoute, i, err)
			}
			continue
		}

		if _, err := regexp.Compile(rc.Regexp); err != nil {
			return fmt.Errorf("%w %d: regexp %q: %w", ErrInvalidRoute, i, rc.Regexp, err)
		}
	}

	return nil
}

// Marshal encodes the table as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
