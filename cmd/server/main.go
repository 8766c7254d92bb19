package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/group-meeting-rotation/internal/config"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/contract"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/service"
	"github.com/diegoclair/group-meeting-rotation/internal/handlers"
	"github.com/diegoclair/group-meeting-rotation/internal/mail"
	"github.com/diegoclair/group-meeting-rotation/internal/storage"
	"github.com/diegoclair/group-meeting-rotation/pkg/retry"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("env_file_not_found")
	}

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		slog.Error("storage_init_failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	instance := service.NewInstance(cfg, store, newSender(cfg), newSlackClient(cfg))
	if err := instance.Meeting.Init(ctx); err != nil {
		slog.Error("state_init_failed", "error", err)
		os.Exit(1)
	}

	instance.Scheduler.Start()
	defer instance.Scheduler.Stop()

	var slackHandler *handlers.SlackHandler
	if cfg.SlackSigningSecret != "" {
		slackHandler = handlers.NewSlackHandler(instance.Meeting, mail.Details{
			GroupName:   cfg.GroupName,
			MeetingLink: cfg.MeetingLink,
			Location:    cfg.Location(),
		}, cfg.SlackSigningSecret)
	}

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewRouter(
			handlers.NewAPIHandler(instance.Meeting, cfg.CronSecret),
			slackHandler,
			handlers.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst, cfg.TrustedProxies...),
			cfg.StaticDir,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server_starting", "port", cfg.Port, "backend", store.Backend())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server_failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("server_stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server_shutdown_failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newSender(cfg *config.Config) contract.Sender {
	if !cfg.MailConfigured() {
		slog.Warn("mail_not_configured", "hint", "set RESEND_API_KEY and MAIL_FROM")
		return mail.NewDisabledSender()
	}
	return mail.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom, cfg.MailReplyTo, retry.Policy{
		Attempts: cfg.OutboundRetries,
		Delay:    cfg.OutboundRetryDelay,
		Timeout:  cfg.OutboundTimeout,
	})
}

// newSlackClient returns nil when no channel is configured so announcements are skipped.
func newSlackClient(cfg *config.Config) contract.SlackClient {
	if !cfg.SlackConfigured() {
		return nil
	}
	return slack.New(cfg.SlackBotToken)
}
