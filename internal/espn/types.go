package espn

// WeekStats holds one scoring period of a player's numbers. Projected and
// Actual are applied fantasy points; ProjectedBreakdown carries named raw
// stat projections (rushing_yards, passing_attempts, ...) when ESPN provides
// them.
type WeekStats struct {
	Projected          float64
	Actual             float64
	ProjectedBreakdown map[string]float64
}

// Player is a rostered or free-agent player. Fields that ESPN may omit are
// zero-valued: InjuryStatus "" means healthy/unreported, ProjectedAvg 0 means
// no season projection.
type Player struct {
	ID           int
	Name         string
	Position     string
	ProTeam      string
	LineupSlot   string
	InjuryStatus string
	ProjectedAvg float64
	Stats        map[int]WeekStats
}

// WeekProjection returns the player's projected points for the given week,
// falling back to the season per-game projection when no weekly figure
// exists.
func (p Player) WeekProjection(week int) float64 {
	if ws, ok := p.Stats[week]; ok && ws.Projected > 0 {
		return ws.Projected
	}
	return p.ProjectedAvg
}

// Team is one fantasy franchise in the league.
type Team struct {
	ID            int
	Name          string
	Abbrev        string
	Wins          int
	Losses        int
	PointsFor     float64
	PointsAgainst float64
	OwnerIDs      []string
	Roster        []Player
}

// LineupSlotted reports whether slot is a starting slot (not bench or IR).
func LineupSlotted(slot string) bool {
	return slot != "BE" && slot != "IR"
}

// LineupPlayer is a box-score lineup entry for the current scoring period.
type LineupPlayer struct {
	PlayerID        int
	Name            string
	Slot            string
	ProjectedPoints float64
}

// Matchup pairs two teams for one scoring period, with the box-score lineups
// ESPN reported for that period.
type Matchup struct {
	Week       int
	HomeTeamID int
	AwayTeamID int
	HomeLineup []LineupPlayer
	AwayLineup []LineupPlayer
}

// League is the read-only snapshot the advisor works from.
type League struct {
	ID          int
	Year        int
	Name        string
	CurrentWeek int
	Teams       []Team
	Matchups    []Matchup
}

// TeamByID returns the team with the given id, or nil.
func (l *League) TeamByID(id int) *Team {
	for i := range l.Teams {
		if l.Teams[i].ID == id {
			return &l.Teams[i]
		}
	}
	return nil
}

// PlayerByID searches all rosters for a player id. The second return is the
// owning team, nil when the player is not rostered.
func (l *League) PlayerByID(id int) (*Player, *Team) {
	for i := range l.Teams {
		t := &l.Teams[i]
		for j := range t.Roster {
			if t.Roster[j].ID == id {
				return &t.Roster[j], t
			}
		}
	}
	return nil, nil
}

// CurrentMatchup returns the current-week matchup involving teamID, or nil.
func (l *League) CurrentMatchup(teamID int) *Matchup {
	for i := range l.Matchups {
		m := &l.Matchups[i]
		if m.Week != l.CurrentWeek {
			continue
		}
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			return m
		}
	}
	return nil
}
