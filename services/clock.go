package services

import (
	"time"

	"frontdesk/utils"
)

// Clock is the source of "now" for date validation and report windows.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today is the hotel-local calendar day as a UTC midnight date.
func (c *SystemClock) Today() time.Time {
	return utils.DateOf(c.Now())
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c *FixedClock) Now() time.Time   { return c.At }
func (c *FixedClock) Today() time.Time { return utils.DateOf(c.At) }
