package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dt-bots/kotori/pkg/service/webfetch"
	"github.com/dt-bots/kotori/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newBeatCommands(t *testing.T, now time.Time) (*usecase.Commands, *fakeSlack) {
	t.Helper()
	fake := &fakeSlack{}
	c := usecase.New(fake, webfetch.New(), nil, usecase.Config{},
		usecase.WithClock(func() time.Time { return now }),
	)
	return c, fake
}

func TestBeatRoundTrip(t *testing.T) {
	// Midnight BMT (UTC+1) is 23:00 UTC of the previous day
	anchor := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)

	for k := 0; k < 1000; k++ {
		instant := anchor.Add(time.Duration(float64(k) * 86.4 * float64(time.Second)))
		gt.Equal(t, usecase.BeatOfDay(instant), k)
	}
}

func TestBeatToTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c, _ := newBeatCommands(t, now)

	// Beat 500 is half a day past midnight BMT: 23:00 UTC - 1 day + 12h
	gt.Equal(t, c.BeatToTime(500).UTC(), time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC))
	gt.Equal(t, c.BeatToTime(0).UTC(), time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))
}

func TestHandleBeatCurrentTime(t *testing.T) {
	// 12:00 UTC is 13:00 BMT, i.e. beat round(46800/86.4) = 542
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c, fake := newBeatCommands(t, now)

	gt.NoError(t, c.HandleBeat(context.Background(), usecase.Request{ChannelID: "C1"}))

	text := fake.lastText()
	gt.True(t, strings.Contains(text, "@542"))
	gt.True(t, strings.Contains(text, "12:00 UTC"))
}

func TestHandleBeatFromBeatValue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c, fake := newBeatCommands(t, now)

	gt.NoError(t, c.HandleBeat(context.Background(), usecase.Request{Args: "@500", ChannelID: "C1"}))

	text := fake.lastText()
	gt.True(t, strings.Contains(text, "@500"))
	gt.True(t, strings.Contains(text, "11:00 UTC"))
}

func TestHandleBeatFromTimeString(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c, fake := newBeatCommands(t, now)

	gt.NoError(t, c.HandleBeat(context.Background(), usecase.Request{Args: "2025-03-10T12:00:00Z", ChannelID: "C1"}))

	text := fake.lastText()
	gt.True(t, strings.Contains(text, "*Time Conversion:*"))
	gt.True(t, strings.Contains(text, "@542"))
}

func TestHandleBeatUnparseableInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c, fake := newBeatCommands(t, now)

	gt.NoError(t, c.HandleBeat(context.Background(), usecase.Request{Args: "definitely not a date", ChannelID: "C1"}))

	text := fake.lastText()
	gt.True(t, strings.Contains(text, "Could not understand the time string"))
	gt.True(t, strings.Contains(text, "definitely not a date"))
}
