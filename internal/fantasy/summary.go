package fantasy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jkringel/fantasy-football-agent/internal/espn"
)

// slotOrder fixes the display order of starting lineup slots.
var slotOrder = []string{"QB", "RB", "WR", "TE", "RB/WR/TE", "K", "D/ST"}

func slotRank(slot string) int {
	for i, s := range slotOrder {
		if s == slot {
			return i
		}
	}
	return len(slotOrder)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RosterSummary renders a team's roster as compact prompt text: starters
// first (slot-prefixed), then bench, each with projection, bye, and injury
// annotations.
func RosterSummary(lg *espn.League, team *espn.Team) string {
	var starters, bench []string
	for _, p := range team.Roster {
		if p.LineupSlot == "IR" {
			continue
		}
		proj := p.WeekProjection(lg.CurrentWeek)

		var line string
		if espn.LineupSlotted(p.LineupSlot) {
			line = fmt.Sprintf("%s: %s (%s) - %.1fpts", p.LineupSlot, p.Name, p.Position, proj)
		} else {
			line = fmt.Sprintf("%s (%s) - %.1fpts", p.Name, p.Position, proj)
		}
		if bye, ok := ByeWeek(p.ProTeam); ok {
			line += fmt.Sprintf(" (Bye: W%d)", bye)
		}
		if p.InjuryStatus != "" {
			line += fmt.Sprintf(" [%s]", p.InjuryStatus)
		}

		if espn.LineupSlotted(p.LineupSlot) {
			starters = append(starters, line)
		} else {
			bench = append(bench, line)
		}
	}

	summary := "STARTERS:\n" + strings.Join(starters, "\n")
	if len(bench) > 0 {
		summary += "\n\nBENCH:\n" + strings.Join(bench, "\n")
	}
	return summary
}

// StandingsText renders minimal league standings: rank, name, record,
// points, and the team_id the model needs for the team-details tool.
func StandingsText(lg *espn.League) string {
	type row struct {
		id   int
		name string
		wins int
		loss int
		pts  float64
	}
	rows := make([]row, 0, len(lg.Teams))
	for _, t := range lg.Teams {
		rows = append(rows, row{id: t.ID, name: t.Name, wins: t.Wins, loss: t.Losses, pts: round1(t.PointsFor)})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].wins != rows[j].wins {
			return rows[i].wins > rows[j].wins
		}
		return rows[i].pts > rows[j].pts
	})

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		line := fmt.Sprintf("%d. %s (%d-%d) - %.1fpts", i+1, r.name, r.wins, r.loss, r.pts)
		if r.id != 0 {
			line += fmt.Sprintf(" (team_id: %d)", r.id)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// StartersProjected sums the box-score projections for a team's starting
// lineup in the current week. Returns 0 when no matchup data exists.
func StartersProjected(lg *espn.League, teamID int) float64 {
	m := lg.CurrentMatchup(teamID)
	if m == nil {
		return 0
	}
	lineup := m.HomeLineup
	if m.AwayTeamID == teamID {
		lineup = m.AwayLineup
	}
	var total float64
	for _, p := range lineup {
		if espn.LineupSlotted(p.Slot) {
			total += p.ProjectedPoints
		}
	}
	return total
}

// Opponent describes the current-week opponent for a team.
type Opponent struct {
	Team           *espn.Team
	ProjectedTotal float64
	AvgPerWeek     float64
}

// CurrentOpponent resolves the current-week opponent of teamID, or nil when
// the schedule has no matchup for it.
func CurrentOpponent(lg *espn.League, teamID int) *Opponent {
	m := lg.CurrentMatchup(teamID)
	if m == nil {
		return nil
	}
	oppID := m.HomeTeamID
	if oppID == teamID {
		oppID = m.AwayTeamID
	}
	opp := lg.TeamByID(oppID)
	if opp == nil {
		return nil
	}
	return &Opponent{
		Team:           opp,
		ProjectedTotal: StartersProjected(lg, oppID),
		AvgPerWeek:     AvgPointsPerWeek(lg, opp),
	}
}

// OpponentSummary renders the one-line opponent blurb for the prompt.
func OpponentSummary(lg *espn.League, teamID int) string {
	opp := CurrentOpponent(lg, teamID)
	if opp == nil {
		return "No opponent data available"
	}
	s := fmt.Sprintf("%s (%d-%d) - Proj: %.1fpts", opp.Team.Name, opp.Team.Wins, opp.Team.Losses, opp.ProjectedTotal)
	if opp.Team.ID != 0 {
		s += fmt.Sprintf(" (team_id: %d)", opp.Team.ID)
	}
	return s + "\nUse get_team_details tool for full roster analysis"
}

// AvgPointsPerWeek returns points-for divided by completed weeks.
func AvgPointsPerWeek(lg *espn.League, team *espn.Team) float64 {
	if lg.CurrentWeek <= 1 {
		return 0
	}
	return team.PointsFor / float64(lg.CurrentWeek-1)
}

// RosterStrength scores a roster by summing season per-game projections.
func RosterStrength(team *espn.Team) float64 {
	var total float64
	for _, p := range team.Roster {
		total += p.ProjectedAvg
	}
	return math.Round(total*100) / 100
}
