package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mpukk3/electricity-twitter-bot/config"
	"github.com/Mpukk3/electricity-twitter-bot/elering"
	"github.com/Mpukk3/electricity-twitter-bot/task"
	"github.com/Mpukk3/electricity-twitter-bot/twitter"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var Version = "?.?.?"

func main() {
	configPath := flag.String("config", "", "path to config file")
	dryRun := flag.Bool("dry-run", false, "compose the post without publishing it")
	flag.Parse()

	// Secrets may live in a .env file during development
	_ = godotenv.Load()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)
	logger.Debug("electricity bot is starting...", slog.String("version", Version))

	provider := elering.New(cnfg.EnergyPrice.Area)
	publisher := twitter.New(cnfg.Twitter)

	if cnfg.Schedule.RunAt == "" {
		// One-shot mode: post once and exit, scheduling is external.
		task.NewDailyPostTask(logger.With("module", "task"), provider, publisher, *dryRun)()
		return
	}

	logger.Info("daemon mode", slog.String("runAt", cnfg.Schedule.RunAt))
	tasks := task.NewTasks(provider, publisher, cnfg, *dryRun)
	tasks.Run()
	defer tasks.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down...", slog.Any("signal", sig))
}
