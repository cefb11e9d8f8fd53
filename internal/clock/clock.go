package clock

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock provides the current calendar date. Time of day is never exposed.
type Clock interface {
	Today() civil.Date
}

type systemClock struct {
	loc *time.Location
}

// System returns a Clock backed by the wall clock in loc.
// A nil loc means time.Local.
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Today() civil.Date {
	return civil.DateOf(time.Now().In(c.loc))
}

// Func adapts a plain function to the Clock interface.
type Func func() civil.Date

func (f Func) Today() civil.Date { return f() }

// Fixed returns a Clock that always reports d.
func Fixed(d civil.Date) Clock {
	return Func(func() civil.Date { return d })
}
