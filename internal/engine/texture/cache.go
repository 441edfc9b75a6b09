package texture

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"io/fs"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-house/internal/logger"
)

// FallbackSize is the edge length of procedural stand-ins.
const FallbackSize = 256

// Loader reads one image. Load is the default.
type Loader func(path string, maxSize int) (*image.NRGBA, error)

// CacheOptions configures a Cache.
type CacheOptions struct {
	MaxSize int
	// Fallback generates a procedural stand-in when a file is missing or
	// cannot be decoded, instead of returning the error.
	Fallback bool
	Loader   Loader
	Logger   *zap.Logger
}

// Cache loads each image path at most once.
type Cache struct {
	mu       sync.Mutex
	images   map[string]*image.NRGBA
	fallback map[string]bool
	failed   map[string]error

	maxSize     int
	useFallback bool
	load        Loader
	log         *zap.Logger
}

// NewCache creates an empty cache.
func NewCache(opts CacheOptions) *Cache {
	c := &Cache{
		images:      make(map[string]*image.NRGBA),
		fallback:    make(map[string]bool),
		failed:      make(map[string]error),
		maxSize:     opts.MaxSize,
		useFallback: opts.Fallback,
		load:        opts.Loader,
		log:         opts.Logger,
	}
	if c.load == nil {
		c.load = Load
	}
	if c.log == nil {
		c.log = logger.Named("texture")
	}
	return c
}

// Get returns the image for path, loading it on first use.
func (c *Cache) Get(path string) (*image.NRGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[path]; ok {
		return img, nil
	}
	if err, ok := c.failed[path]; ok {
		return nil, err
	}

	img, err := c.load(path, c.maxSize)
	if err != nil {
		if !c.useFallback {
			err = fmt.Errorf("loading texture: %w", err)
			c.failed[path] = err
			c.log.Warn("texture unavailable", zap.String("path", path), zap.Error(err))
			return nil, err
		}
		kind := KindFor(path)
		if errors.Is(err, fs.ErrNotExist) {
			c.log.Warn("texture missing, using procedural stand-in",
				zap.String("path", path), zap.Stringer("kind", kind))
		} else {
			c.log.Warn("texture unreadable, using procedural stand-in",
				zap.String("path", path), zap.Stringer("kind", kind), zap.Error(err))
		}
		img = Procedural(kind, min(FallbackSize, max(c.maxSize, 1)), seedFor(path))
		c.fallback[path] = true
	} else {
		c.log.Debug("texture loaded", zap.String("path", path),
			zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	}
	c.images[path] = img
	return img, nil
}

// IsFallback reports whether path was replaced by a procedural stand-in.
func (c *Cache) IsFallback(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fallback[path]
}

// Len returns the number of cached images, fallbacks included and failed
// loads excluded.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

func seedFor(path string) int64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return int64(h.Sum64() >> 1)
}
