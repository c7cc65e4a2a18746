package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mpukk3/electricity-twitter-bot/calc"
	"github.com/Mpukk3/electricity-twitter-bot/tweet"
	"github.com/Mpukk3/electricity-twitter-bot/types"
)

type Publisher interface {
	PostTweet(ctx context.Context, text string) (string, error)
}

// NewDailyPostTask returns the fetch-rank-compose-publish pipeline as a task
// closure. Every stage failure is logged and ends the run early, nothing
// escapes to the caller.
func NewDailyPostTask(logger *slog.Logger, provider types.PriceProvider, publisher Publisher, dryRun bool) func() {
	return func() { runDailyPostTask(logger, provider, publisher, dryRun, time.Now) }
}

func runDailyPostTask(
	logger *slog.Logger,
	provider types.PriceProvider,
	publisher Publisher,
	dryRun bool,
	now func() time.Time,
) {
	logger.Info("fetching electricity prices...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prices, err := provider.GetPrices(ctx)
	if err != nil {
		logger.Error("daily post task error, fetching prices", slog.Any("error", err))
		return
	}

	top := calc.MostExpensive(prices, 2)
	if top == nil {
		logger.Info("not enough price data for a post", slog.Int("noOfHours", len(prices)))
		return
	}

	text, ok := tweet.Compose(top, now())
	if !ok {
		logger.Info("no post composed")
		return
	}
	logger.Info("composed post", slog.String("text", text))

	if dryRun {
		logger.Info("dry run, skipping publish")
		return
	}

	id, err := publisher.PostTweet(ctx, text)
	if err != nil {
		logger.Error("daily post task error, publishing", slog.Any("error", err))
		return
	}

	logger.Info("daily post task done", slog.String("tweetId", id))
}
