package services

import "time"

// Clock abstracts time.Now so the state machine and window math are
// testable with a frozen clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewRealClock() Clock { return realClock{} }
