package main

import (
	"context"
	"log"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"touchpay-system/config"
	"touchpay-system/internal/database"
	"touchpay-system/internal/database/models"
	"touchpay-system/internal/gateway/middleware"
	"touchpay-system/internal/remote"
	"touchpay-system/internal/state"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	node, err := snowflake.NewNode(1)
	if err != nil {
		sugar.Fatalw("snowflake node init failed", "error", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	store := state.NewStore(node)

	ctx := context.Background()
	seeded, err := state.LoadSampleData(ctx, store, state.NewRedisFlagStore(redisClient))
	if err != nil {
		sugar.Fatalw("bootstrap failed", "error", err)
	}
	if seeded {
		sugar.Info("sample data loaded into the session store")
	}

	// The advanced collections need Postgres; the floor keeps running
	// without it.
	var remoteClient *remote.Client
	if cfg.DB.DSN != "" {
		db, err := database.NewConnection(cfg.DB.DSN)
		if err != nil {
			sugar.Fatalw("database connection failed", "error", err)
		}
		if err := models.MigrateRemoteDB(db); err != nil {
			sugar.Fatalw("database migration failed", "error", err)
		}
		remoteClient = remote.NewClient(db, redisClient, sugar)
	} else {
		sugar.Warn("POS_DSN not set, advanced collections disabled")
	}

	if remoteClient != nil {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc("0 3 * * *", func() {
			if err := remoteClient.ArchiveServedKitchenOrders(context.Background(), 24); err != nil {
				sugar.Errorw("kitchen order archive failed", "error", err)
			}
		}); err != nil {
			sugar.Fatalw("scheduler setup failed", "error", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit())

	registerRoutes(r, cfg, store, remoteClient, redisClient, sugar)

	sugar.Infow("starting server", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
