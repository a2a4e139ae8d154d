package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/organilive/storefront/domain"
	"github.com/organilive/storefront/repository"
)

// Loader fetches the product catalog from the external feed and holds
// the current list. A failed load never discards what is already there:
// the previous catalog (or the cached snapshot on a cold start) keeps
// serving while the error state is surfaced for manual retry.
type Loader struct {
	source repository.ProductSource
	cache  repository.CatalogCache
	logger *zap.Logger

	mu       sync.RWMutex
	products []domain.Product
	lastLoad time.Time
	lastErr  error
}

// NewLoader builds a catalog loader. cache may be nil.
func NewLoader(source repository.ProductSource, cache repository.CatalogCache, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Load replaces the catalog wholesale from the feed. Re-invoking it is
// the only retry mechanism.
func (l *Loader) Load(ctx context.Context) error {
	products, err := l.source.Fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.lastErr = err
		if len(l.products) == 0 && l.cache != nil {
			if snapshot, ok, cacheErr := l.cache.Get(ctx); cacheErr == nil && ok {
				l.products = snapshot
				l.logger.Warn("feed unavailable, serving cached catalog snapshot",
					zap.Int("products", len(snapshot)), zap.Error(err))
				return err
			}
		}
		l.logger.Error("catalog load failed", zap.Error(err))
		return err
	}

	l.products = products
	l.lastLoad = time.Now()
	l.lastErr = nil

	if l.cache != nil {
		if cacheErr := l.cache.Set(ctx, products); cacheErr != nil {
			l.logger.Warn("failed to write catalog snapshot", zap.Error(cacheErr))
		}
	}

	l.logger.Info("catalog loaded", zap.Int("products", len(products)))
	return nil
}

// Products returns a copy of the current catalog.
func (l *Loader) Products() []domain.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Product, len(l.products))
	copy(out, l.products)
	return out
}

// Product looks a single product up by id.
func (l *Loader) Product(id string) (domain.Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.products {
		if l.products[i].ID == id {
			return l.products[i], true
		}
	}
	return domain.Product{}, false
}

// Status reports the last successful load time and the sticky error of
// the most recent attempt, if it failed.
func (l *Loader) Status() (time.Time, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastLoad, l.lastErr
}
