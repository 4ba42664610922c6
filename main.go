package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/auth"
	"github.com/camden-git/fleetsysbackend/config"
	"github.com/camden-git/fleetsysbackend/database"
	"github.com/camden-git/fleetsysbackend/handlers"
	"github.com/camden-git/fleetsysbackend/repository"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	if err := godotenv.Load(); err != nil {
		logger.Infof("no .env file found or error loading: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.UsingInsecureSessionSecret() {
		logger.Warn("SESSION_SECRET is unset; using the insecure development default")
	}

	db, err := database.InitDB(cfg.DatabasePath, logger)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	// schema setup is a single explicit startup step; any failure here is
	// fatal rather than retried per request
	if cfg.ResetDBOnStartup {
		logger.Warn("resetting fleet schema and reseeding sample data (RESET_DB_ON_STARTUP)")
		if err := database.Reset(db); err != nil {
			logger.Fatalf("failed to reset schema: %v", err)
		}
		if err := database.Seed(db); err != nil {
			logger.Fatalf("failed to seed database: %v", err)
		}
	} else if err := database.AutoMigrateModels(db); err != nil {
		logger.Fatalf("failed to migrate schema: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf("failed to get underlying sql.DB: %v", err)
	}

	var sessionStore auth.Store = auth.NewMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Fatalf("failed to connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		sessionStore = auth.NewRedisStore(client)
		logger.Infof("using redis session store at %s", cfg.RedisAddr)
	}

	router := handlers.NewRouter(handlers.App{
		Log:               logger,
		Sessions:          sessionStore,
		Codec:             auth.NewCookieCodec(cfg.SessionSecret),
		Users:             repository.NewGormUserRepository(db),
		Trucks:            repository.NewGormTruckRepository(db),
		Drivers:           repository.NewGormDriverRepository(db),
		Alerts:            repository.NewGormAlertRepository(db),
		Recordings:        repository.NewGormVideoRecordingRepository(db),
		DB:                sqlDB,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	logger.Infof("server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
