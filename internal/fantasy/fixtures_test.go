package fantasy

import "github.com/jkringel/fantasy-football-agent/internal/espn"

// fixtureLeague builds a small two-team league at week 3 of the 2025 season.
func fixtureLeague() *espn.League {
	return &espn.League{
		ID:          1234,
		Year:        2025,
		Name:        "Test League",
		CurrentWeek: 3,
		Teams: []espn.Team{
			{
				ID:        1,
				Name:      "Gridiron Geeks",
				Abbrev:    "GG",
				Wins:      2,
				Losses:    0,
				PointsFor: 240.6,
				OwnerIDs:  []string{"{ABC-123}"},
				Roster: []espn.Player{
					{
						ID: 101, Name: "Josh Allen", Position: "QB", ProTeam: "BUF",
						LineupSlot: "QB", ProjectedAvg: 23.0,
						Stats: map[int]espn.WeekStats{
							1: {Projected: 22.1, Actual: 28.4},
							2: {Projected: 23.7, Actual: 19.2},
							3: {Projected: 24.3, ProjectedBreakdown: map[string]float64{
								"passing_attempts": 34.2, "passing_completions": 22.8,
								"passing_yards": 271.5, "passing_touchdowns": 2.1,
								"rushing_attempts": 6.3, "rushing_yards": 38.9,
							}},
						},
					},
					{
						ID: 102, Name: "Bijan Robinson", Position: "RB", ProTeam: "ATL",
						LineupSlot: "RB", ProjectedAvg: 17.5,
						Stats: map[int]espn.WeekStats{
							3: {Projected: 18.2, ProjectedBreakdown: map[string]float64{
								"rushing_attempts": 18.4, "rushing_yards": 86.1, "rushing_touchdowns": 0.7,
								"receiving_targets": 4.9, "receiving_receptions": 3.8,
								"receiving_yards": 29.3, "receiving_touchdowns": 0.2,
							}},
						},
					},
					{
						ID: 103, Name: "Ja'Marr Chase", Position: "WR", ProTeam: "CIN",
						LineupSlot: "WR", InjuryStatus: "QUESTIONABLE", ProjectedAvg: 16.8,
						Stats: map[int]espn.WeekStats{3: {Projected: 17.5}},
					},
					{
						ID: 104, Name: "Jaylen Warren", Position: "RB", ProTeam: "PIT",
						LineupSlot: "BE", ProjectedAvg: 8.4,
						Stats: map[int]espn.WeekStats{3: {Projected: 9.1}},
					},
					{
						ID: 105, Name: "Rashee Rice", Position: "WR", ProTeam: "KC",
						LineupSlot: "IR", InjuryStatus: "INJURY_RESERVE", ProjectedAvg: 14.0,
					},
				},
			},
			{
				ID:        2,
				Name:      "Bench Warmers",
				Abbrev:    "BW",
				Wins:      1,
				Losses:    1,
				PointsFor: 198.3,
				OwnerIDs:  []string{"{DEF-456}"},
				Roster: []espn.Player{
					{
						ID: 201, Name: "Lamar Jackson", Position: "QB", ProTeam: "BAL",
						LineupSlot: "QB", ProjectedAvg: 22.4,
						Stats: map[int]espn.WeekStats{3: {Projected: 21.9}},
					},
					{
						ID: 202, Name: "Saquon Barkley", Position: "RB", ProTeam: "PHI",
						LineupSlot: "RB", ProjectedAvg: 19.2,
						Stats: map[int]espn.WeekStats{3: {Projected: 20.0}},
					},
				},
			},
		},
		Matchups: []espn.Matchup{
			{
				Week:       3,
				HomeTeamID: 1,
				AwayTeamID: 2,
				HomeLineup: []espn.LineupPlayer{
					{PlayerID: 101, Name: "Josh Allen", Slot: "QB", ProjectedPoints: 24.3},
					{PlayerID: 102, Name: "Bijan Robinson", Slot: "RB", ProjectedPoints: 18.2},
					{PlayerID: 103, Name: "Ja'Marr Chase", Slot: "WR", ProjectedPoints: 17.5},
					{PlayerID: 104, Name: "Jaylen Warren", Slot: "BE", ProjectedPoints: 9.1},
				},
				AwayLineup: []espn.LineupPlayer{
					{PlayerID: 201, Name: "Lamar Jackson", Slot: "QB", ProjectedPoints: 21.9},
					{PlayerID: 202, Name: "Saquon Barkley", Slot: "RB", ProjectedPoints: 20.0},
				},
			},
		},
	}
}

// fixtureFreeAgents covers the waiver filter paths: healthy producers, a
// below-threshold body, and a positionless defense-style entry.
func fixtureFreeAgents() []espn.Player {
	return []espn.Player{
		{
			ID: 301, Name: "Jordan Mason", Position: "RB", ProTeam: "MIN",
			Stats: map[int]espn.WeekStats{3: {Projected: 11.4}},
		},
		{
			ID: 302, Name: "Quentin Johnston", Position: "WR", ProTeam: "LAC",
			Stats: map[int]espn.WeekStats{3: {Projected: 9.8}},
		},
		{
			ID: 303, Name: "Tyler Allgeier", Position: "RB", ProTeam: "ATL",
			Stats: map[int]espn.WeekStats{3: {Projected: 7.2}},
		},
		{
			ID: 304, Name: "Deep Bench Guy", Position: "RB", ProTeam: "CAR",
			Stats: map[int]espn.WeekStats{3: {Projected: 1.4}},
		},
		{
			ID: 305, Name: "Roman Wilson", Position: "WR", ProTeam: "PIT",
			InjuryStatus: "OUT",
			Stats:        map[int]espn.WeekStats{3: {Projected: 6.1}},
		},
	}
}
