package week

import "time"

// Week is one scoring period inside a season. Picks close when IsLocked is
// set; IsScored flips after a scoring run completes.
type Week struct {
	ID         int64
	SeasonID   int64
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	IsLocked   bool
	IsScored   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Contains reports whether the instant falls inside the week's date window.
func (w Week) Contains(at time.Time) bool {
	return !at.Before(w.StartDate) && at.Before(w.EndDate)
}
