// Package config loads addisroute settings from a YAML file, a .env file and
// the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/addisroute/search"
)

const (
	// DefaultFile is read when no path is given and EnvConfig is unset.
	DefaultFile = "addisroute.yml"

	// Environment variables consulted by Load.
	EnvConfig    = "ADDISROUTE_CONFIG"
	EnvAddr      = "ADDISROUTE_ADDR"
	EnvMode      = "ADDISROUTE_MODE"
	EnvEndpoint  = "ADDISROUTE_ENDPOINT"
	EnvAlgorithm = "ADDISROUTE_ALGORITHM"

	// ModeLocal runs searches in-process.
	ModeLocal = "local"
	// ModeRemote delegates searches to Client.Endpoint.
	ModeRemote = "remote"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full addisroute configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
	Search SearchConfig `yaml:"search"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	SearchTimeout   time.Duration `yaml:"search_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimit       float64       `yaml:"rate_limit"` // requests per second, whole server
	RateBurst       int           `yaml:"rate_burst"`
	AllowOrigin     string        `yaml:"allow_origin"`
}

// ClientConfig selects local or remote execution for the CLI.
type ClientConfig struct {
	Mode      string        `yaml:"mode"`
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	Algorithm     string `yaml:"algorithm"`
	MaxExpansions int    `yaml:"max_expansions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			SearchTimeout:   2 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			RateLimit:       20,
			RateBurst:       40,
			AllowOrigin:     "*",
		},
		Client: ClientConfig{
			Mode:      ModeLocal,
			Endpoint:  "http://localhost:5000",
			Timeout:   10 * time.Second,
			RateLimit: 10,
		},
		Search: SearchConfig{
			Algorithm:     search.BFS.String(),
			MaxExpansions: 10000,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path, a .env file in
// the working directory and the environment, then validates it.
//
// An empty path falls back to $ADDISROUTE_CONFIG, then DefaultFile. A missing
// DefaultFile is not an error; a missing file named explicitly is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		if p, ok := os.LookupEnv(EnvConfig); ok && p != "" {
			path, explicit = p, true
		} else {
			path = DefaultFile
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment variables that are set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvMode); ok && v != "" {
		c.Client.Mode = strings.ToLower(v)
	}
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Client.Endpoint = v
	}
	if v, ok := lookup(EnvAlgorithm); ok && v != "" {
		c.Search.Algorithm = v
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	case c.Server.SearchTimeout <= 0:
		return fmt.Errorf("%w: server.search_timeout must be positive, got %s", ErrInvalid, c.Server.SearchTimeout)
	case c.Server.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: server.shutdown_timeout must be positive, got %s", ErrInvalid, c.Server.ShutdownTimeout)
	case c.Server.RateLimit <= 0:
		return fmt.Errorf("%w: server.rate_limit must be positive, got %g", ErrInvalid, c.Server.RateLimit)
	case c.Server.RateBurst < 1:
		return fmt.Errorf("%w: server.rate_burst must be at least 1, got %d", ErrInvalid, c.Server.RateBurst)
	case c.Client.Mode != ModeLocal && c.Client.Mode != ModeRemote:
		return fmt.Errorf("%w: client.mode must be %q or %q, got %q", ErrInvalid, ModeLocal, ModeRemote, c.Client.Mode)
	case c.Client.Mode == ModeRemote && c.Client.Endpoint == "":
		return fmt.Errorf("%w: client.endpoint is required in remote mode", ErrInvalid)
	case c.Client.Timeout <= 0:
		return fmt.Errorf("%w: client.timeout must be positive, got %s", ErrInvalid, c.Client.Timeout)
	case c.Client.RateLimit <= 0:
		return fmt.Errorf("%w: client.rate_limit must be positive, got %g", ErrInvalid, c.Client.RateLimit)
	case c.Search.MaxExpansions < 0:
		return fmt.Errorf("%w: search.max_expansions cannot be negative, got %d", ErrInvalid, c.Search.MaxExpansions)
	}
	if _, err := search.ParseAlgorithm(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: search.algorithm: %w", ErrInvalid, err)
	}

	return nil
}

// Algorithm returns the parsed default algorithm. Call after Validate.
func (c *Config) Algorithm() search.Algorithm {
	a, err := search.ParseAlgorithm(c.Search.Algorithm)
	if err != nil {
		return search.BFS
	}

	return a
}
