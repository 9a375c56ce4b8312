package store

import "time"

// IDSource hands out item ids.
type IDSource interface {
	Next() int64
}

// Counter is a monotonic id source starting at 1. It never repeats.
type Counter struct {
	last int64
}

func (c *Counter) Next() int64 {
	c.last++
	return c.last
}

// Clock derives ids from the wall clock in milliseconds. If two ids would
// land on the same tick the later one is bumped past the previous id, so
// ids stay unique and increasing.
type Clock struct {
	Now  func() time.Time
	last int64
}

func (c *Clock) Next() int64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	id := now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}
