package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gestionusuarios/userhub/internal/config"
	"gestionusuarios/userhub/internal/handler"
	"gestionusuarios/userhub/internal/i18n"
	"gestionusuarios/userhub/internal/logger"
	"gestionusuarios/userhub/internal/metrics"
	"gestionusuarios/userhub/internal/model"
	"gestionusuarios/userhub/internal/repository"
	"gestionusuarios/userhub/internal/service"
	"gestionusuarios/userhub/internal/validation"
)

// version is set with -ldflags "-X main.version=..."
var version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "userhub",
		Short: "User management service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("userhub version %s\n", version)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := config.NewDB(cfg.Database)
	if err != nil {
		zl.Error("failed to connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return nil, nil, nil, err
	}
	return cfg, zl, db, nil
}

func migrate() error {
	_, zl, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer zl.Sync()

	if err := model.AutoMigrate(db); err != nil {
		zl.Error("migration failed", zap.Error(err))
		return err
	}
	zl.Info("database migration completed")
	return nil
}

func serve() error {
	// 1. Load configuration, logger and database
	cfg, zl, db, err := bootstrap()
	if err != nil {
		log.Printf("startup failed: %v", err)
		return err
	}
	defer zl.Sync()

	// 2. Auto-migrate if enabled
	if cfg.Database.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			zl.Fatal("failed to auto-migrate", zap.Error(err))
		}
		zl.Info("database migration completed")
	}
	zl.Warn("passwords are stored as given, without hashing")

	// 3. Initialize user-type cache store
	userTypeRepo := repository.NewGormUserTypeRepository(db)
	var stateStore repository.StateStore
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Redis)
		if err != nil {
			zl.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		stateStore = repository.NewRedisStateStore(redisClient)
		zl.Info("using Redis user-type cache")
	case "memory":
		stateStore = repository.NewMemoryStateStore()
		zl.Info("using in-memory user-type cache")
	case "none", "":
		zl.Info("user-type cache disabled")
	default:
		zl.Fatal("unknown cache backend", zap.String("backend", cfg.Cache.Backend))
	}
	if stateStore != nil {
		userTypeRepo = repository.NewCachedUserTypeRepository(userTypeRepo, stateStore, cfg.Cache.TTL, cfg.Cache.Prefix, zl)
	}

	// 4. Initialize repositories
	tx := repository.NewTransactor(db)
	adminRepo := repository.NewGormAccountRepository[model.Administrator](db)
	clientRepo := repository.NewGormAccountRepository[model.Client](db)
	employeeRepo := repository.NewGormAccountRepository[model.SalesEmployee](db)
	managerRepo := repository.NewGormAccountRepository[model.StoreManager](db)
	orderRepo := repository.NewGormOrderRepository(db)

	// 5. Initialize services
	v := validation.New()
	adminService := service.NewAdministratorService(tx, adminRepo, userTypeRepo, v, zl)
	clientService := service.NewClientService(tx, clientRepo, orderRepo, userTypeRepo, v, zl)
	employeeService := service.NewSalesEmployeeService(tx, employeeRepo, userTypeRepo, v, zl)
	managerService := service.NewStoreManagerService(tx, managerRepo, userTypeRepo, v, zl)
	orderService := service.NewOrderService(tx, orderRepo, clientRepo, v, zl)
	userTypeService := service.NewUserTypeService(userTypeRepo, v, zl)

	// 6. Initialize translator and metrics
	translator, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		zl.Fatal("failed to load message catalogs", zap.Error(err))
	}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
		if sqlDB, err := db.DB(); err == nil {
			if err := m.RegisterDB(sqlDB, cfg.Database.Driver); err != nil {
				zl.Warn("failed to register database metrics", zap.Error(err))
			}
		}
	}

	// 7. Setup router
	router := handler.SetupRouter(cfg, zl, translator, m, handler.Handlers{
		Administrators: handler.NewAccountHandler(adminService, translator, zl),
		Clients:        handler.NewAccountHandler(clientService, translator, zl),
		SalesEmployees: handler.NewAccountHandler(employeeService, translator, zl),
		StoreManagers:  handler.NewAccountHandler(managerService, translator, zl),
		Orders:         handler.NewOrderHandler(orderService, translator, zl),
		UserTypes:      handler.NewUserTypeHandler(userTypeService, translator, zl),
		Health:         handler.NewHealthHandler(db, zl),
	})

	// 8. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 9. Start server with graceful shutdown
	go func() {
		zl.Info("server starting", zap.String("addr", addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zl.Info("server exited gracefully")
	return nil
}
