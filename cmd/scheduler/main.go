package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/course_scheduler/internal/apiclient"
	"github.com/Freeeeeet/course_scheduler/internal/app"
	"github.com/Freeeeeet/course_scheduler/internal/config"
	"github.com/Freeeeeet/course_scheduler/internal/notify"
	"github.com/Freeeeeet/course_scheduler/internal/repository"
	"github.com/Freeeeeet/course_scheduler/internal/service"
	"github.com/Freeeeeet/course_scheduler/internal/store"
	"github.com/Freeeeeet/course_scheduler/migrations"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting course scheduler",
		zap.String("environment", cfg.Environment),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Duration("poll_interval", cfg.PollInterval))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// База для настроек и журнала аудита
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create db pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	configRepo := repository.NewConfigRepository(pool)
	logRepo := repository.NewLogRepository(pool)

	// Уведомления: Telegram, если настроен, иначе лог
	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		b, err := bot.New(cfg.TelegramToken)
		if err != nil {
			logger.Fatal("Failed to create telegram bot", zap.Error(err))
		}
		notifier = notify.NewTelegramNotifier(b, cfg.TelegramChatID, logger)
		logger.Info("Telegram notifications enabled",
			zap.Int64("chat_id", cfg.TelegramChatID))
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.APIToken, cfg.HTTPTimeout, logger)

	st := store.New(store.NewState(), logger)

	auditService := service.NewAuditService(logRepo, logger)
	configService := service.NewConfigService(configRepo, auditService, logger)
	schedulerService := service.NewSchedulerService(api, notifier, st, logger)

	st.RegisterEffect(auditService.Effect)
	st.RegisterEffect(configService.Effect)
	st.RegisterEffect(schedulerService.Effect)

	go st.Run(ctx)

	// Настройки читаются один раз при старте, корпус конфликтов — сразу следом
	st.Dispatch(store.LoadAppConfig{})
	st.Dispatch(store.LoadScheduledCourses{})

	poller := app.NewPendingCourseSync(st, cfg.PollInterval, logger)
	poller.Start(ctx)

	<-ctx.Done()
	logger.Info("Shutting down")

	poller.Stop()
	<-st.Done()

	logger.Info("Course scheduler stopped")
}
