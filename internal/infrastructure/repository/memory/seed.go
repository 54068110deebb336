package memory

import (
	"time"

	"github.com/mrftt12/Pickem/internal/domain/matchup"
	"github.com/mrftt12/Pickem/internal/domain/season"
	"github.com/mrftt12/Pickem/internal/domain/week"
)

// Seed data for running without a database. One active season, the first
// two weeks, and a small opening-week slate.

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:        1,
			Year:      2025,
			StartDate: time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			IsActive:  true,
		},
	}
}

func SeedWeeks() []week.Week {
	return []week.Week{
		{
			ID:         1,
			SeasonID:   1,
			WeekNumber: 1,
			StartDate:  time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			SeasonID:   1,
			WeekNumber: 2,
			StartDate:  time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedMatchups() []matchup.Matchup {
	return []matchup.Matchup{
		{
			ID:             1,
			WeekID:         1,
			ExternalGameID: "401772510",
			HomeTeam:       "Kansas City Chiefs",
			AwayTeam:       "Buffalo Bills",
			HomeTeamAbbr:   "KC",
			AwayTeamAbbr:   "BUF",
			PointSpread:    3,
			SpreadFavor:    matchup.SideHome,
			GameTime:       time.Date(2025, 9, 5, 0, 20, 0, 0, time.UTC),
			Status:         matchup.StatusScheduled,
		},
		{
			ID:             2,
			WeekID:         1,
			ExternalGameID: "401772511",
			HomeTeam:       "Philadelphia Eagles",
			AwayTeam:       "Dallas Cowboys",
			HomeTeamAbbr:   "PHI",
			AwayTeamAbbr:   "DAL",
			PointSpread:    6.5,
			SpreadFavor:    matchup.SideHome,
			GameTime:       time.Date(2025, 9, 7, 17, 0, 0, 0, time.UTC),
			Status:         matchup.StatusScheduled,
		},
		{
			ID:             3,
			WeekID:         1,
			ExternalGameID: "401772512",
			HomeTeam:       "Seattle Seahawks",
			AwayTeam:       "San Francisco 49ers",
			HomeTeamAbbr:   "SEA",
			AwayTeamAbbr:   "SF",
			PointSpread:    2.5,
			SpreadFavor:    matchup.SideAway,
			GameTime:       time.Date(2025, 9, 7, 20, 5, 0, 0, time.UTC),
			Status:         matchup.StatusScheduled,
		},
	}
}
