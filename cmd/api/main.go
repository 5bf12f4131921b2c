package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tiendalocal/storefront-backend/api/controllers"
	"github.com/tiendalocal/storefront-backend/api/routes"
	"github.com/tiendalocal/storefront-backend/internal/auth"
	"github.com/tiendalocal/storefront-backend/internal/notify"
	"github.com/tiendalocal/storefront-backend/internal/store/local"
	"github.com/tiendalocal/storefront-backend/internal/store/remote"
	storerouter "github.com/tiendalocal/storefront-backend/internal/store/router"
	"github.com/tiendalocal/storefront-backend/pkg/auth/session"
	"github.com/tiendalocal/storefront-backend/pkg/blob"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	"github.com/tiendalocal/storefront-backend/pkg/db"
	"github.com/tiendalocal/storefront-backend/pkg/logger"
	"github.com/tiendalocal/storefront-backend/pkg/metrics"
	"github.com/tiendalocal/storefront-backend/pkg/migrate"
	"github.com/tiendalocal/storefront-backend/pkg/pubsub"
	"github.com/tiendalocal/storefront-backend/pkg/redis"
	"github.com/tiendalocal/storefront-backend/pkg/storage/gcs"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	readiness := map[string]controllers.Pinger{
		"database": dbClient,
		"redis":    redisClient,
	}

	// Object storage and eventing are optional in dev; the remote store
	// degrades the affected operations when they are absent.
	var uploader remote.Uploader
	if cfg.GCS.BucketName != "" {
		gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap object storage", err)
			os.Exit(1)
		}
		uploader = remote.NewGCSUploader(gcsClient)
		readiness["storage"] = gcsClient
	} else {
		logg.Warn(context.Background(), "object storage not configured, uploads disabled")
	}

	var orderEvents remote.OrderEventPublisher
	if cfg.GCP.ProjectID != "" {
		pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		defer func() {
			if err := pubsubClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing pubsub", err)
			}
		}()
		orderEvents = pubsubClient.OrdersPublisher()
		readiness["pubsub"] = pubsubClient
	} else {
		logg.Warn(context.Background(), "pubsub not configured, order events disabled")
	}

	blobs, err := blob.NewFileStore(cfg.LocalStore.BlobDir)
	if err != nil {
		logg.Error(context.Background(), "failed to open blob store", err)
		os.Exit(1)
	}

	localStore, err := local.Open(context.Background(), cfg.LocalStore, blobs, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open local store", err)
		os.Exit(1)
	}
	defer func() {
		if err := localStore.Close(); err != nil {
			logg.Error(context.Background(), "error closing local store", err)
		}
	}()

	remoteStore := remote.New(dbClient.DB(), uploader, orderEvents, logg)
	routerMetrics := metrics.NewRouterMetrics(prometheus.DefaultRegisterer)
	routedStore := storerouter.New(remoteStore, localStore, logg, routerMetrics).
		WithProbe(func(ctx context.Context) bool {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return dbClient.Ping(ctx) == nil
		})

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Store:          routedStore,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:        cfg,
			Logger:        logg,
			Store:         routedStore,
			AuthService:   authService,
			Sessions:      sessionManager,
			Notifications: notify.NewRepository(dbClient.DB()),
			RedisClient:   redisClient,
			Readiness:     readiness,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
