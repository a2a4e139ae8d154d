package monitor

import (
	"context"
	"sync"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/organilive/storefront/repository/bolt"
	"github.com/organilive/storefront/usecase/catalog"
)

// Monitor periodically probes the service dependencies: the local
// account store, the optional Redis cache and the product feed state.
type Monitor struct {
	store   *bolt.Store
	redis   *redislib.Client
	catalog *catalog.Loader

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store *bolt.Store, redis *redislib.Client, catalog *catalog.Loader, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		redis:    redis,
		catalog:  catalog,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{
		Store:     m.checkStore(),
		Cache:     m.checkRedis(),
		LastCheck: time.Now(),
	}
	if m.catalog != nil {
		lastFetch, err := m.catalog.Status()
		status.Feed = err == nil && !lastFetch.IsZero()
		status.LastFetch = lastFetch
		status.Products = len(m.catalog.Products())
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkStore() bool {
	if m.store == nil {
		return false
	}
	return m.store.Ping() == nil
}

func (m *Monitor) checkRedis() bool {
	if m.redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.redis.Ping(ctx).Err() == nil
}
