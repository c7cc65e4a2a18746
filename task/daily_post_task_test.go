package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Mpukk3/electricity-twitter-bot/types"
)

type fakeProvider struct {
	prices []types.SpotPrice
	err    error
	calls  int
}

func (f *fakeProvider) GetPrices(ctx context.Context) ([]types.SpotPrice, error) {
	f.calls++
	return f.prices, f.err
}

type fakePublisher struct {
	posted []string
	err    error
}

func (f *fakePublisher) PostTweet(ctx context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.posted = append(f.posted, text)
	return "1346889436626259968", nil
}

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testNow    = func() time.Time { return time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC) }
)

func dayPrices() []types.SpotPrice {
	day := func(hour int) time.Time {
		return time.Date(2025, time.January, 15, hour, 0, 0, 0, time.UTC)
	}
	return []types.SpotPrice{
		{Time: day(8), Price: 50},
		{Time: day(18), Price: 200},
		{Time: day(12), Price: 150},
	}
}

func TestDailyPostTask(t *testing.T) {
	provider := &fakeProvider{prices: dayPrices()}
	publisher := &fakePublisher{}

	runDailyPostTask(testLogger, provider, publisher, false, testNow)

	if len(publisher.posted) != 1 {
		t.Fatalf("expected 1 post, got %d", len(publisher.posted))
	}
	text := publisher.posted[0]
	if !strings.Contains(text, "1. 18:00 - 20.00") {
		t.Errorf("expected most expensive hour first, got %q", text)
	}
	if !strings.Contains(text, "2. 12:00 - 15.00") {
		t.Errorf("expected second most expensive hour, got %q", text)
	}
	if !strings.Contains(text, "15.01.2025") {
		t.Errorf("expected current date in post, got %q", text)
	}
}

func TestDailyPostTaskTooFewPrices(t *testing.T) {
	provider := &fakeProvider{prices: dayPrices()[:1]}
	publisher := &fakePublisher{}

	runDailyPostTask(testLogger, provider, publisher, false, testNow)

	if len(publisher.posted) != 0 {
		t.Errorf("expected no post, got %d", len(publisher.posted))
	}
}

func TestDailyPostTaskFetchError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	publisher := &fakePublisher{}

	runDailyPostTask(testLogger, provider, publisher, false, testNow)

	if len(publisher.posted) != 0 {
		t.Errorf("expected no post after fetch error, got %d", len(publisher.posted))
	}
}

func TestDailyPostTaskPublishError(t *testing.T) {
	provider := &fakeProvider{prices: dayPrices()}
	publisher := &fakePublisher{err: errors.New("401 unauthorized")}

	// Must not panic, the failure is logged and the run ends.
	runDailyPostTask(testLogger, provider, publisher, false, testNow)

	if len(publisher.posted) != 0 {
		t.Errorf("expected no post recorded, got %d", len(publisher.posted))
	}
}

func TestDailyPostTaskDryRun(t *testing.T) {
	provider := &fakeProvider{prices: dayPrices()}
	publisher := &fakePublisher{}

	runDailyPostTask(testLogger, provider, publisher, true, testNow)

	if provider.calls != 1 {
		t.Errorf("expected prices to be fetched, got %d calls", provider.calls)
	}
	if len(publisher.posted) != 0 {
		t.Errorf("expected dry run to skip publishing, got %d posts", len(publisher.posted))
	}
}
