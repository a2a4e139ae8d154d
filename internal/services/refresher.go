package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/organilive/storefront/usecase/catalog"
)

// RefresherConfig controls how often the catalog feed is re-fetched.
type RefresherConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

// CatalogRefresher re-fetches the product feed on a schedule so the
// catalog stays current without manual reloads. A failed refresh keeps
// the previous catalog serving; there is no backoff, the next tick just
// tries again.
type CatalogRefresher struct {
	catalog *catalog.Loader
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     RefresherConfig
}

func NewCatalogRefresher(loader *catalog.Loader, logger *zap.Logger, cfg RefresherConfig) *CatalogRefresher {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cr := &CatalogRefresher{
		catalog: loader,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = cr.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if err := cr.catalog.Load(ctx); err != nil {
			cr.logger.Warn("scheduled catalog refresh failed", zap.Error(err))
		}
	})

	return cr
}

// Start launches the cron scheduler.
func (cr *CatalogRefresher) Start() {
	if cr == nil || cr.cron == nil {
		return
	}
	cr.cron.Start()
	cr.logger.Info("catalog refresher started",
		zap.Duration("interval", cr.cfg.Interval))
}

// Stop gracefully stops the scheduler.
func (cr *CatalogRefresher) Stop(ctx context.Context) {
	if cr == nil || cr.cron == nil {
		return
	}
	stopCtx := cr.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	cr.logger.Info("catalog refresher stopped")
}
