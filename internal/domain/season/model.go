package season

import "time"

// Season groups the weeks of one pool year.
type Season struct {
	ID        int64
	Year      int
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
