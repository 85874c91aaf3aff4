package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gyan0205/hospital-management/cmd/internal/cache"
	"github.com/Gyan0205/hospital-management/cmd/internal/config"
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/database"
	"github.com/Gyan0205/hospital-management/cmd/internal/server"
	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital",
		Short: "Hospital management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if _, err := database.Init(cfg.Database); err != nil {
				return err
			}
			log.Infof("migrated %s database", cfg.Database.Driver)
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample departments, doctors, patients and logins into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Init(cfg.Database)
			if err != nil {
				return err
			}

			seeded, err := database.Seed(db)
			if err != nil {
				return err
			}
			if !seeded {
				log.Info("database already has users, nothing seeded")
				return nil
			}
			log.Info("sample data inserted")
			return nil
		},
	}
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Errorf("failed to initialize database: %v", err)
		return err
	}

	// Availability cache, optional
	var availCache service.AvailabilityCache
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = cache.Connect(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			log.Warnf("availability cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			availCache = cache.NewAvailabilityCache(redisClient, cfg.Redis.AvailabilityTTL)
		}
	}

	e := server.New(cfg, db, availCache)

	go func() {
		log.Infof("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("failed to load config: %v", err)
		return nil, err
	}
	log.SetLevel(logLevel(cfg.LogLevel))
	return cfg, nil
}

func logLevel(name string) log.Lvl {
	switch name {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
