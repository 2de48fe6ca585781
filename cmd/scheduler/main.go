package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/config"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/logger"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/mailer"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/repositories"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/scheduler"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/services"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Level Marketing Scheduler")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	templateRepo := repositories.NewEmailTemplateRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)

	// Initialize SMTP sender
	sender := mailer.NewSMTPSender(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.Scheduler.SendTimeout,
	)

	// Initialize dispatcher
	dispatchService := services.NewDispatchService(templateRepo, clientRepo, sender, logger.Logger)

	// Initialize and start scheduler
	sched := scheduler.NewScheduler(
		campaignRepo,
		templateRepo,
		clientRepo,
		dispatchService,
		cfg.Scheduler.Cron,
		logger.Logger,
	)
	if err := sched.Start(); err != nil {
		logger.Logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down scheduler...")
	sched.Stop()
	logger.Logger.Info("Scheduler exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
