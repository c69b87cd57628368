package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-srim/stopping"
	"github.com/cwbudde/algo-srim/stopping/table"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

// ErrNoLoader is returned when a model is not cached and the catalog has no
// loader to build it from.
var ErrNoLoader = errors.New("catalog: no table loader configured")

// Config holds catalog settings.
type Config struct {
	// TTL is how long a model stays cached after it is added, whether or
	// not it is used; 0 keeps models forever.
	TTL          time.Duration
	Logger       l.Wrapper
	ModelOptions []stopping.Option
}

// Option mutates a Config.
type Option func(*Config)

// WithTTL sets the cache expiry. Negative values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(cfg *Config) {
		if ttl >= 0 {
			cfg.TTL = ttl
		}
	}
}

// WithLogger sets the logger. Models built by the catalog inherit it unless
// WithModelOptions overrides it.
func WithLogger(logger l.Wrapper) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithModelOptions sets the options passed to every stopping.New call.
func WithModelOptions(opts ...stopping.Option) Option {
	return func(cfg *Config) {
		cfg.ModelOptions = append(cfg.ModelOptions, opts...)
	}
}

// Catalog caches models by ion and material. It is safe for concurrent use.
type Catalog struct {
	loader *table.Loader
	cfg    Config
	logger l.Wrapper
	models *cache.Cache
}

// New creates a catalog that builds missing models from loader. loader may
// be nil if every model is registered with Add.
func New(loader *table.Loader, opts ...Option) *Catalog {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = l.NewNopLoggerWrapper()
	}

	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if cfg.TTL > 0 {
		expiration = cfg.TTL
		cleanup = cfg.TTL
	}

	return &Catalog{
		loader: loader,
		cfg:    cfg,
		logger: cfg.Logger.WithFields(l.StringField(l.ClsKey, "catalog")),
		models: cache.New(expiration, cleanup),
	}
}

func key(ion, material string) string {
	return table.FileName(ion, material)
}

// Model returns the model for ion in material, loading and building it on
// first use.
func (c *Catalog) Model(ion, material string) (*stopping.Model, error) {
	k := key(ion, material)
	if v, ok := c.models.Get(k); ok {
		return v.(*stopping.Model), nil
	}

	if c.loader == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoLoader, k)
	}

	t, err := c.loader.Load(ion, material)
	if err != nil {
		c.logger.WithFields(l.ErrorField(err), l.StringField("table", k)).Error("load table failed")

		return nil, err
	}

	c.logger.WithFields(l.StringField("table", k), l.IntField("samples", t.Len())).Debug("table loaded")

	return c.Add(ion, material, t)
}

// Add builds the model for ion in material from t and caches it, replacing
// any previous entry.
func (c *Catalog) Add(ion, material string, t table.Table) (*stopping.Model, error) {
	opts := append([]stopping.Option{stopping.WithLogger(c.cfg.Logger)}, c.cfg.ModelOptions...)

	m, err := stopping.New(ion, material, t, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", key(ion, material), err)
	}

	c.models.SetDefault(key(ion, material), m)

	return m, nil
}

// Forget evicts the model for ion in material.
func (c *Catalog) Forget(ion, material string) {
	c.models.Delete(key(ion, material))
}

// Len returns the number of cached models, including expired ones not yet
// cleaned up.
func (c *Catalog) Len() int {
	return c.models.ItemCount()
}
