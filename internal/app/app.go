package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/daavo03/node-tours-app/internal/auth"
	"github.com/daavo03/node-tours-app/internal/config"
	"github.com/daavo03/node-tours-app/internal/handler"
	"github.com/daavo03/node-tours-app/internal/invoice"
	"github.com/daavo03/node-tours-app/internal/middleware"
	"github.com/daavo03/node-tours-app/internal/notification"
	"github.com/daavo03/node-tours-app/internal/payment"
	"github.com/daavo03/node-tours-app/internal/repository"
	"github.com/daavo03/node-tours-app/internal/router"
	"github.com/daavo03/node-tours-app/internal/scheduler"
	"github.com/daavo03/node-tours-app/internal/service"
	"github.com/daavo03/node-tours-app/internal/upload"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	return logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Natours",
		cfg.App.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
}

// OpenDB connects to Postgres with the configured pool limits.
func OpenDB(ctx context.Context, cfg config.PostgresConfig) (*dbpg.DB, error) {
	db, err := dbpg.New(
		cfg.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.Master.PingContext(ctx); err != nil {
		_ = db.Master.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func (a *App) initDB() error {
	db, err := OpenDB(context.Background(), a.cfg.Postgres)
	if err != nil {
		return err
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	tourRepo := repository.NewTourRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	tokens := auth.NewTokenManager(a.cfg.JWT.Secret, a.cfg.JWT.ExpiresIn)
	hasher := auth.NewHasher(a.cfg.Security.BcryptCost)

	mailer := notification.NewMailer(notification.MailerConfig{
		Host:     a.cfg.Email.Host,
		Port:     a.cfg.Email.Port,
		Username: a.cfg.Email.Username,
		Password: a.cfg.Email.Password,
		From:     a.cfg.Email.From,
	}, a.log)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	gateway := payment.NewLocalGateway(a.cfg.Payment.SecretKey, a.cfg.Payment.Currency, a.cfg.Payment.SessionTTL)

	tourService := service.NewTourService(tourRepo, reviewRepo, bookingRepo, a.log)
	userService := service.NewUserService(userRepo, a.log)
	authService := service.NewAuthService(userRepo, tokens, hasher, mailer, a.log)
	reviewService := service.NewReviewService(reviewRepo, tourRepo, a.log)
	bookingService := service.NewBookingService(bookingRepo, tourRepo, userRepo, gateway, notifier, a.log)

	a.scheduler = scheduler.New(
		userService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		tourService,
		userService,
		authService,
		reviewService,
		bookingService,
		upload.NewStore(a.cfg.App.UploadDir),
		invoice.NewRenderer(),
		handler.Config{
			Production: a.cfg.App.Production(),
			CookieTTL:  a.cfg.JWT.CookieTTL(),
		},
	)

	rateLimit, err := middleware.RateLimit(a.cfg.RateLimit.Rate)
	if err != nil {
		return fmt.Errorf("init rate limit: %w", err)
	}

	r := router.InitRouter(
		router.Options{
			Mode: a.cfg.Gin.Mode,
			Auth: authService,
			CORS: middleware.CORS(a.cfg.CORS.Origins),
			API: []ginext.HandlerFunc{
				rateLimit,
				middleware.BodyLimit(a.cfg.Security.JSONLimit, a.cfg.Security.MultipartLimit),
			},
			TemplatesGlob: a.cfg.App.TemplatesGlob,
			StaticDir:     a.cfg.App.StaticDir,
		},
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.ErrorHandler(a.log, a.cfg.App.Production()),
		middleware.Security(a.cfg.App.Production()),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("env", a.cfg.App.Env),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	return RunMigrations(a.cfg.Postgres, a.log)
}

func RunMigrations(cfg config.PostgresConfig, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err = goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
