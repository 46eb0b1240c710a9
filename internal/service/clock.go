package service

import "time"

// SystemClock is the production ports.Clock backed by wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
