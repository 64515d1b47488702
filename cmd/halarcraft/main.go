package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"halarcraft/internal/app"
	"halarcraft/internal/config"

	"github.com/fatih/color"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title Halarcraft Network API
// @version 1.0
// @description Сайт сообщества сервера Halarcraft: лента работ, модерация, секретные коды.
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	if cfg.Env == envLocal {
		color.Green("halarcraft backend")
		color.Cyan("env: %s, http port: %s", cfg.Env, cfg.HTTP.Port)
	}

	application := app.New(log, cfg)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	go application.Submissions.RunJanitor(janitorCtx, 10*time.Minute)

	go func() {
		application.HTTPServer.BuildRouters()
		application.HTTPServer.MustRun()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop

	stopJanitor()
	application.Stop()

	log.Info("Gracefully stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}

	return log
}
