package utils

import (
	"fmt"
	"time"
)

// Clock is the single reference clock every period decision is made against
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a wall clock reporting times in the named timezone
func NewSystemClock(timezone string) (*SystemClock, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &SystemClock{loc: loc}, nil
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the location the clock reports in
func (c *SystemClock) Location() *time.Location {
	return c.loc
}

// FixedClock always returns the same instant until moved
type FixedClock struct {
	T time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{T: t}
}

func (c *FixedClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d
func (c *FixedClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// AdvanceDays moves the clock forward by n calendar days
func (c *FixedClock) AdvanceDays(n int) {
	c.T = c.T.AddDate(0, 0, n)
}
