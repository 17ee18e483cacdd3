package usecase

import "time"

// Exposed for white-box tests
var (
	BeatOfDay   = beatOfDay
	ExtractURLs = extractURLs
)

// BeatToTime exposes the beat-to-clock conversion for tests
func (c *Commands) BeatToTime(beat int) time.Time {
	return c.beatToTime(beat)
}
