package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// beatUnit is the length of one .beat in seconds: a day split into 1000 units.
const beatUnit = 86.4

// beatOfDay converts an instant to its .beat value. Beat time is anchored to
// BMT (UTC+1), so the day fraction is taken after shifting one hour forward.
// Rounding can yield 1000 in the last half-beat before midnight.
func beatOfDay(t time.Time) int {
	bmt := t.UTC().Add(time.Hour)
	secs := bmt.Hour()*3600 + bmt.Minute()*60 + bmt.Second()
	return int(math.Round(float64(secs) / beatUnit))
}

// beatToTime converts a .beat value back to a clock time on the current day.
// The anchor is midnight BMT, which is 23:00 UTC of the previous UTC day.
func (c *Commands) beatToTime(beat int) time.Time {
	now := c.now().UTC()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(-time.Hour)
	return anchor.Add(time.Duration(float64(beat) * beatUnit * float64(time.Second)))
}

func formatBeat(beat int) string {
	return fmt.Sprintf("@%03d", beat)
}

func formatUTC(t time.Time) string {
	return t.UTC().Format("15:04") + " UTC"
}

// HandleBeat is a three-way sub-dispatch: no argument reports the current
// .beat time, "@NNN" converts a beat back to clock time, and anything else is
// parsed as a free-form date/time and converted forward.
func (c *Commands) HandleBeat(ctx context.Context, req Request) error {
	args := strings.Fields(req.Args)

	switch {
	case len(args) == 0:
		now := c.now()
		return c.reply(ctx, req, fmt.Sprintf(
			"*Current Time:*\n.beat time: %s\nUTC time: %s",
			formatBeat(beatOfDay(now)), formatUTC(now)))

	case strings.HasPrefix(args[0], "@") && len(args[0]) == 4:
		beat, err := strconv.Atoi(args[0][1:])
		if err != nil || beat < 0 {
			return c.reply(ctx, req, fmt.Sprintf(
				"Invalid .beat time: %s. Please use format @XXX where XXX is a number between 000 and 999.",
				args[0]))
		}
		result := c.beatToTime(beat)
		return c.reply(ctx, req, fmt.Sprintf(
			"*Beat Time Conversion:*\n.beat time: %s\nUTC time: %s",
			args[0], formatUTC(result)))

	default:
		input := strings.Join(args, " ")
		t, err := dateparse.ParseAny(input)
		if err != nil {
			return c.reply(ctx, req, fmt.Sprintf(
				"Could not understand the time string: %q. Please use a valid time format or .beat time (@XXX).",
				input))
		}
		return c.reply(ctx, req, fmt.Sprintf(
			"*Time Conversion:*\n.beat time: %s\nUTC time: %s",
			formatBeat(beatOfDay(t)), formatUTC(t)))
	}
}
