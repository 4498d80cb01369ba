package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"expgrowth/internal/compare"
	"expgrowth/internal/model"
	"expgrowth/internal/scenario"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	// Optional: load comparison tables from a separate YAML (e.g. examples/references.yaml).
	// If both ReferencesFile and References are provided, References overrides the file
	// table by table.
	ReferencesFile string           `yaml:"references_file"`
	References     ReferencesConfig `yaml:"references"`
	Defaults       DefaultsConfig   `yaml:"defaults"`
}

type ServerConfig struct {
	Port           string          `yaml:"port"`
	Env            string          `yaml:"env"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig is a per-client token bucket. Capacity 0 disables limiting.
type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"`
	Refill   time.Duration `yaml:"refill"`
}

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type CacheConfig struct {
	Backend   string        `yaml:"backend"`
	TTL       time.Duration `yaml:"ttl"`
	RedisAddr string        `yaml:"redis_addr"`
	RedisDB   int           `yaml:"redis_db"`
}

type ReferencesConfig struct {
	GrainWeightGrams float64         `yaml:"grain_weight_grams"`
	Chessboard       []compare.Entry `yaml:"chessboard"`
	Viral            []compare.Entry `yaml:"viral"`
	// Milestones a headline may name; left empty, the built-in ones apply.
	HeadlineChessboard []compare.Entry `yaml:"headline_chessboard"`
	HeadlineViral      []compare.Entry `yaml:"headline_viral"`
}

// DefaultsConfig sets the parameters used when a caller leaves a field out.
type DefaultsConfig struct {
	Chessboard model.ChessboardParams `yaml:"chessboard"`
	Compound   model.CompoundParams   `yaml:"compound"`
	Viral      model.ViralParams      `yaml:"viral"`
	Revenue    model.RevenueParams    `yaml:"revenue"`
}

// Default returns a complete, valid configuration.
func Default() *Config {
	refs := scenario.DefaultReferences()
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"*"},
			RateLimit:      RateLimitConfig{Capacity: 120, Refill: time.Minute},
		},
		Cache: CacheConfig{
			Backend:   CacheNone,
			TTL:       time.Hour,
			RedisAddr: "localhost:6379",
		},
		References: ReferencesConfig{
			GrainWeightGrams: refs.GrainWeightGrams.InexactFloat64(),
			Chessboard:       refs.Chessboard,
			Viral:            refs.Viral,

			HeadlineChessboard: refs.HeadlineChessboard,
			HeadlineViral:      refs.HeadlineViral,
		},
		Defaults: DefaultsConfig{
			Chessboard: model.DefaultChessboardParams(),
			Compound:   model.DefaultCompoundParams(),
			Viral:      model.DefaultViralParams(),
			Revenue:    model.DefaultRevenueParams(),
		},
	}
}

// Load reads path on top of Default, applies environment overrides and validates.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		loaded, err := LoadUnchecked(path)
		if err != nil {
			return nil, err
		}
		c = Merge(c, loaded)
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges the references file, but does not validate or
// apply defaults. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ReferencesFile != "" {
		refPath := c.ReferencesFile
		if !filepath.IsAbs(refPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), refPath)
			if _, err := os.Stat(cand); err == nil {
				refPath = cand
			}
		}
		loaded, err := loadReferencesFile(refPath)
		if err != nil {
			return nil, err
		}
		c.References = MergeReferences(loaded, c.References)
	}
	return &c, nil
}

// ApplyEnv overlays the deployment environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.RedisAddr = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Cache.TTL = d
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unsupported cache.backend: %q", c.Cache.Backend)
	}
	if c.Cache.Backend != CacheNone && c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be > 0")
	}
	if c.Server.RateLimit.Capacity < 0 {
		return errors.New("server.rate_limit.capacity must be >= 0")
	}
	if c.Server.RateLimit.Capacity > 0 && c.Server.RateLimit.Refill <= 0 {
		return errors.New("server.rate_limit.refill must be > 0")
	}
	if _, err := c.References.ToScenario(); err != nil {
		return fmt.Errorf("references invalid: %w", err)
	}
	if err := errors.Join(
		c.Defaults.Chessboard.Validate(),
		c.Defaults.Compound.Validate(),
		c.Defaults.Viral.Validate(),
		c.Defaults.Revenue.Validate(),
	); err != nil {
		return fmt.Errorf("defaults invalid: %w", err)
	}
	return nil
}

// Production reports whether the server runs in release mode.
func (c *Config) Production() bool { return c.Server.Env == "production" }

// ToScenario converts the YAML tables into validated comparison tables.
func (r ReferencesConfig) ToScenario() (scenario.References, error) {
	if r.GrainWeightGrams <= 0 {
		return scenario.References{}, errors.New("grain_weight_grams must be > 0")
	}
	chess, err := compare.NewTable(r.Chessboard...)
	if err != nil {
		return scenario.References{}, fmt.Errorf("chessboard: %w", err)
	}
	viral, err := compare.NewTable(r.Viral...)
	if err != nil {
		return scenario.References{}, fmt.Errorf("viral: %w", err)
	}
	chessHeadline, err := compare.NewTable(r.HeadlineChessboard...)
	if err != nil {
		return scenario.References{}, fmt.Errorf("headline_chessboard: %w", err)
	}
	viralHeadline, err := compare.NewTable(r.HeadlineViral...)
	if err != nil {
		return scenario.References{}, fmt.Errorf("headline_viral: %w", err)
	}
	return scenario.References{
		GrainWeightGrams:   decimal.NewFromFloat(r.GrainWeightGrams),
		Chessboard:         chess,
		Viral:              viral,
		HeadlineChessboard: chessHeadline,
		HeadlineViral:      viralHeadline,
	}, nil
}

type referencesFileWrapper struct {
	References ReferencesConfig `yaml:"references"`
}

func loadReferencesFile(path string) (ReferencesConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ReferencesConfig{}, err
	}
	var w referencesFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ReferencesConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.References, nil
}
