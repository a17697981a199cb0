package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"swasthya-bot/internal/advisory"
	"swasthya-bot/internal/audit"
	"swasthya-bot/internal/config"
	"swasthya-bot/internal/core"
	httpserver "swasthya-bot/internal/http"
	"swasthya-bot/internal/lang"
	"swasthya-bot/internal/llm"
	"swasthya-bot/internal/sched"
	"swasthya-bot/internal/store"
	"swasthya-bot/internal/whatsapp"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	// Profile store and language detection
	detector := lang.NewDetector()
	profiles := store.New(detector)

	// Audit sink: Postgres when DATABASE_URL is set, in-memory otherwise
	var auditLog audit.Recorder = audit.NewMemoryLog()
	if cfg.DatabaseURL != "" {
		dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := dbConn.PingContext(ctx); err != nil {
			cancel()
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		cancel()
		if err := audit.Migrate(context.Background(), dbConn); err != nil {
			logger.Fatal("failed to run audit migration", zap.Error(err))
		}
		auditLog = audit.NewPostgresLog(dbConn)
		logger.Info("audit events recorded in postgres")
	}

	// LLM-backed generative fallback and intent classifier
	// (uses env: OPENAI_API_KEY, OPENAI_MODEL)
	llmClient := llm.NewOpenAIClient()

	// Outbound delivery and advisory source
	sender := whatsapp.NewClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID, logger)
	var advisorySource advisory.Source = advisory.NewStaticSource()
	if cfg.AdvisoryURL != "" {
		advisorySource = advisory.NewHTTPSource(cfg.AdvisoryURL)
	}

	resolver := core.NewResolver(llmClient, llmClient, logger)
	service := core.NewService(profiles, resolver, sender, auditLog, logger)

	// Background sweeps: hourly outbreak alerts, daily reminders
	sweeper := sched.NewSweeper(profiles, advisorySource, sender, auditLog, logger)
	scheduler, err := sched.NewScheduler(sweeper, cfg.ReminderHourLocal, logger)
	if err != nil {
		logger.Fatal("failed to construct scheduler", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := httpserver.NewServer(service, cfg.VerifyToken, logger)
	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newLogger builds the zap logger for the configured environment:
// production JSON or development console output.
func newLogger(cfg config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger
}
