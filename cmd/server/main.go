package main

import (
	"context"
	"log"

	redislib "github.com/redis/go-redis/v9"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/organilive/storefront/api/handler"
	"github.com/organilive/storefront/internal/config"
	"github.com/organilive/storefront/internal/infrastructure/monitor"
	redisInfra "github.com/organilive/storefront/internal/infrastructure/redis"
	"github.com/organilive/storefront/internal/middleware"
	"github.com/organilive/storefront/internal/router"
	"github.com/organilive/storefront/internal/services"
	"github.com/organilive/storefront/internal/services/lifecycle"
	"github.com/organilive/storefront/pkg/httpcontext"
	"github.com/organilive/storefront/pkg/logger"
	"github.com/organilive/storefront/repository"
	boltRepo "github.com/organilive/storefront/repository/bolt"
	redisRepo "github.com/organilive/storefront/repository/redis"
	"github.com/organilive/storefront/repository/sheets"
	accountUC "github.com/organilive/storefront/usecase/account"
	cartUC "github.com/organilive/storefront/usecase/cart"
	catalogUC "github.com/organilive/storefront/usecase/catalog"
	contactUC "github.com/organilive/storefront/usecase/contact"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, cancel := manager.Context(context.Background())
	defer cancel()

	store, err := boltRepo.Open(cfg.Store.Path, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open account store", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return store.Close()
	})

	// The cache is optional: a missing Redis only costs the snapshot
	// fallback, never the service.
	var catalogCache repository.CatalogCache
	var redisClient *redislib.Client
	if cfg.Cache.Enabled {
		client, err := redisInfra.NewClient(cfg.Cache)
		if err != nil {
			zapLogger.Warn("redis unavailable, catalog snapshot cache disabled", zap.Error(err))
		} else {
			redisClient = client
			catalogCache = redisRepo.NewCatalogCache(client, cfg.Cache.TTL)
			manager.Register("redis", func(ctx context.Context) error {
				return client.Close()
			})
		}
	}

	feed := sheets.NewFeed(cfg.Feed.URL, cfg.Feed.Timeout, zapLogger)
	catalogLoader := catalogUC.NewLoader(feed, catalogCache, zapLogger)
	if err := catalogLoader.Load(appCtx); err != nil {
		zapLogger.Warn("initial catalog load failed, continuing with empty catalog", zap.Error(err))
	}

	accounts := accountUC.New(store, zapLogger)
	if err := accounts.Start(appCtx); err != nil {
		zapLogger.Fatal("failed to load account state", zap.Error(err))
	}

	cart := cartUC.New(catalogLoader, zapLogger)
	contactSink := sheets.NewContactClient(cfg.Contact.EndpointURL, cfg.Contact.Timeout, zapLogger)
	contactSvc := contactUC.New(contactSink, zapLogger)

	mon := monitor.New(store, redisClient, catalogLoader, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	if cfg.Feed.RefreshEnabled {
		refresher := services.NewCatalogRefresher(catalogLoader, zapLogger, services.RefresherConfig{
			Interval: cfg.Feed.RefreshInterval,
			Timeout:  cfg.Feed.Timeout,
		})
		refresher.Start()
		manager.Register("catalog_refresher", func(ctx context.Context) error {
			refresher.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Account: apiHandler.NewAccountHandler(accounts, ctxAdapter, zapLogger),
		Profile: apiHandler.NewProfileHandler(accounts, ctxAdapter, zapLogger),
		Catalog: apiHandler.NewCatalogHandler(catalogLoader, ctxAdapter, zapLogger),
		Cart:    apiHandler.NewCartHandler(cart, ctxAdapter, zapLogger),
		Contact: apiHandler.NewContactHandler(contactSvc, cfg.Contact.Info, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	sessionGuard := middleware.RequireSession(accounts, zapLogger)
	r := router.New(handlers, sessionGuard)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
