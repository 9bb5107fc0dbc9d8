package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budgetwise/expense-tracker/internal"
	"github.com/budgetwise/expense-tracker/internal/auth"
	authPostgres "github.com/budgetwise/expense-tracker/internal/auth/postgres"
	"github.com/budgetwise/expense-tracker/internal/expenditure"
	expenditurePostgres "github.com/budgetwise/expense-tracker/internal/expenditure/postgres"
	"github.com/budgetwise/expense-tracker/internal/income"
	incomePostgres "github.com/budgetwise/expense-tracker/internal/income/postgres"
	"github.com/budgetwise/expense-tracker/internal/transport/rest"
	"github.com/budgetwise/expense-tracker/internal/user"
	userPostgres "github.com/budgetwise/expense-tracker/internal/user/postgres"
	userDatamodel "github.com/budgetwise/expense-tracker/internal/core/datamodel/user"
	"github.com/budgetwise/expense-tracker/pkg/logger"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	ORM    *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)
	validateOpenAPISpec(deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := internal.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.JWTSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)

	authService := auth.NewService(
		authPostgres.NewUserRepository(deps.ORM),
		authPostgres.NewRevocationRepository(deps.ORM),
		tokenGen,
		cfg.Security.BCryptCost,
		deps.Logger,
	)
	authService.SetLoginHook(func(u *userDatamodel.User) {
		deps.Logger.Info("user logged in", "user_id", u.ID, "username", u.Username)
	})

	userService := user.NewService(userPostgres.NewUserRepository(deps.ORM), deps.Logger)
	incomeService := income.NewService(incomePostgres.NewIncomeRepository(deps.ORM), deps.Logger)
	expenditureService := expenditure.NewService(expenditurePostgres.NewExpenditureRepository(deps.ORM), deps.Logger)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		cfg.Server.AllowedOrigins,
		auth.NewHandler(authService),
		user.NewHandler(userService),
		income.NewHandler(incomeService),
		expenditure.NewHandler(expenditureService),
		deps.Logger,
	)
}

// validateOpenAPISpec loads the published spec so a broken document is
// caught at startup instead of by the first swagger visitor.
func validateOpenAPISpec(lg *slog.Logger) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("./api/openapi.yml")
	if err != nil {
		lg.Warn("could not load OpenAPI spec", "error", err)
		return
	}
	if err := doc.Validate(loader.Context); err != nil {
		lg.Warn("OpenAPI spec failed validation", "error", err)
	}
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logEnv := "development"
	if config.Observability.Logging.Format == "json" {
		logEnv = "production"
	}
	logger.Init(logEnv)
	lg := logger.L()

	db, orm, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		ORM:    orm,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pgx connection pool and layers GORM on top of it, so the
// health check and the repositories share one pool.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, *gorm.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	orm, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return db, orm, nil
}
