package task

import (
	"context"
	"log/slog"

	"github.com/Mpukk3/electricity-twitter-bot/config"
	"github.com/Mpukk3/electricity-twitter-bot/types"
	"github.com/robfig/cron/v3"
)

// Tasks schedules the daily post when the bot runs in daemon mode.
type Tasks struct {
	cron          *cron.Cron
	cnfg          *config.AppConfig
	DailyPostTask func()
}

func NewTasks(provider types.PriceProvider, publisher Publisher, cnfg *config.AppConfig, dryRun bool) *Tasks {
	logger := slog.Default().With("module", "tasks")
	return &Tasks{
		cron:          cron.New(),
		cnfg:          cnfg,
		DailyPostTask: NewDailyPostTask(logger.With(slog.String("task", "daily_post")), provider, publisher, dryRun),
	}
}

func (t *Tasks) Run() {
	_, err := t.cron.AddFunc(t.cnfg.Schedule.RunAt, t.DailyPostTask)
	if err != nil {
		panic(err)
	}
	t.cron.Start()
}

func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
