package media

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"ia2amp/config"
)

// Cache finds local copies of media by file name.
type Cache interface {
	Lookup(ctx context.Context, name string) (Dimensions, error)
}

// Fetcher downloads media to learn its size.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Dimensions, error)
}

// Resolver finds media dimensions trying, in order, explicitly configured
// sizes, local cache, download (images only, when enabled) and finally
// configured default size. Failures of any strategy are logged and treated
// as a miss.
type Resolver struct {
	sizes   map[string]config.Dimensions
	cache   Cache
	fetcher Fetcher
	fetch   bool
	def     Dimensions
	log     *zap.Logger
}

// Option customizes Resolver.
type Option func(*Resolver)

// WithCache replaces cache strategy.
func WithCache(c Cache) Option {
	return func(r *Resolver) {
		r.cache = c
	}
}

// WithFetcher replaces fetch strategy, fetching still has to be enabled in
// configuration.
func WithFetcher(f Fetcher) Option {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

// NewResolver creates resolver from configuration.
func NewResolver(cfg *config.MediaConfig, log *zap.Logger, opts ...Option) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg == nil {
		cfg = &config.MediaConfig{}
	}
	w, h := cfg.DefaultSize()
	r := &Resolver{
		sizes: cfg.Sizes,
		fetch: cfg.Fetch,
		def:   Dimensions{Width: w, Height: h},
		log:   log.Named("media"),
	}
	if cfg.CacheDir != "" {
		r.cache = NewDirCache(cfg.CacheDir, cfg.FetchLimit)
	}
	if cfg.Fetch {
		r.fetcher = NewHTTPFetcher(cfg.FetchTimeout, cfg.FetchLimit)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default returns fallback dimensions.
func (r *Resolver) Default() Dimensions {
	return r.def
}

// Resolve returns dimensions of media at url, never fails.
func (r *Resolver) Resolve(ctx context.Context, url string, kind Kind) Dimensions {
	if d, ok := r.sizes[url]; ok && d.Width > 0 && d.Height > 0 {
		r.log.Debug("Media size configured", zap.String("url", url), zap.Int("width", d.Width), zap.Int("height", d.Height))
		return Dimensions{Width: d.Width, Height: d.Height}
	}

	if r.cache != nil {
		if name := Filename(url); name != "" {
			d, err := r.cache.Lookup(ctx, name)
			if err == nil && !d.IsZero() {
				r.log.Debug("Media size from cache", zap.String("url", url), zap.String("name", name), zap.Int("width", d.Width), zap.Int("height", d.Height))
				return d
			}
			if err != nil && !errors.Is(err, ErrNotCached) {
				r.log.Debug("Media cache lookup failed", zap.String("url", url), zap.Error(err))
			}
		}
	}

	if kind == KindImage && r.fetch && r.fetcher != nil {
		d, err := r.fetcher.Fetch(ctx, url)
		if err == nil && d.Width != 0 {
			r.log.Debug("Media size fetched", zap.String("url", url), zap.Int("width", d.Width), zap.Int("height", d.Height))
			return d
		}
		r.log.Debug("Media fetch failed", zap.String("url", url), zap.Error(err))
	}

	r.log.Debug("Media size unknown, using default", zap.String("url", url), zap.Stringer("kind", kind))
	return r.def
}
