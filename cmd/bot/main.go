package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordofday/internal/config"
	"wordofday/internal/handler"
	"wordofday/internal/middleware"
	"wordofday/internal/refresher"
	"wordofday/internal/repository"
	"wordofday/internal/repository/postgres"
	"wordofday/internal/service"
	"wordofday/internal/wordlist"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Word of the Day bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to resolve local calendar", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("timezone", location.String()),
		zap.String("words_source", cfg.WordsSource),
	)

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Load the word list once; it is read-only from here on
	wordRepo, err := wordRepository(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up word source", zap.Error(err))
	}

	words, err := service.NewWordService(wordRepo, logger).LoadList()
	if err != nil {
		logger.Fatal("Failed to load word list", zap.Error(err))
	}

	scheduler, err := service.NewScheduler(words, location, logger)
	if err != nil {
		logger.Fatal("Failed to create scheduler", zap.Error(err))
	}

	// Initialize services
	clock := service.SystemClock{}
	sessionService := service.NewSessionService(scheduler)
	subscriptionService := service.NewSubscriptionService(postgres.NewSubscriptionRepo(db), logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.Logging(logger))

	// Initialize handler
	h := handler.NewHandler(bot, scheduler, sessionService, subscriptionService, clock, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keep passive surfaces current in background
	refreshHost := refresher.New(
		scheduler,
		subscriptionService,
		refresher.NewTelegramPublisher(bot),
		refresher.NewGocronTrigger(location),
		clock,
		logger,
	)
	refreshErr := make(chan error, 1)
	go func() {
		refreshErr <- refreshHost.Run(ctx)
	}()

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, stopping bot...")
	case err := <-refreshErr:
		logger.Error("Refresher stopped unexpectedly", zap.Error(err))
	}

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// wordRepository picks the configured word source
func wordRepository(cfg *config.Config, db *sql.DB) (repository.WordRepository, error) {
	switch cfg.WordsSource {
	case config.SourcePostgres:
		return postgres.NewWordRepo(db), nil
	case config.SourceFile:
		return wordlist.FileRepo(cfg.WordsFile)
	default:
		return wordlist.NewEmbeddedRepo(), nil
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
