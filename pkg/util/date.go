package util

import "time"

// FromUnix converts epoch seconds to a UTC time.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// MillisSince returns whole milliseconds elapsed since start.
func MillisSince(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
