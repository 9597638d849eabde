package engine

import "time"

// DailySeed derives an integer seed from a calendar date: year*10000 +
// month*100 + day. The same real day always yields the same seed.
func DailySeed(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}

// SessionSeed combines the calendar seed with the in-game day counter, so a
// fresh session on the same real day reproduces the same stream while manual
// day advances within one real day still diverge.
func SessionSeed(t time.Time, day int) int64 {
	return DailySeed(t) + int64(day)
}

// DateKey formats a date the way State.LastPlayed stores it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
