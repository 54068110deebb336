package matchup

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinal     = "final"
)

// Side names which team a spread or a pick refers to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Matchup is one scheduled game. PointSpread is the line as received from
// upstream and may carry either sign; SpreadFavor names the side laying the
// points. Scores are nil until the game goes final.
type Matchup struct {
	ID             int64
	WeekID         int64
	ExternalGameID string
	HomeTeam       string
	AwayTeam       string
	HomeTeamAbbr   string
	AwayTeamAbbr   string
	PointSpread    float64
	SpreadFavor    Side
	GameTime       time.Time
	HomeScore      *int
	AwayScore      *int
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsValidStatus(value string) bool {
	switch NormalizeStatus(value) {
	case StatusScheduled, StatusLive, StatusFinal:
		return true
	default:
		return false
	}
}

// Final reports whether the game is scoreable: status final with both
// scores present.
func (m Matchup) Final() bool {
	return NormalizeStatus(m.Status) == StatusFinal && m.HomeScore != nil && m.AwayScore != nil
}

// HasTeam reports whether abbr names either side of the matchup.
func (m Matchup) HasTeam(abbr string) bool {
	return abbr == m.HomeTeamAbbr || abbr == m.AwayTeamAbbr
}
