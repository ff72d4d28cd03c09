package fantasy

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jkringel/fantasy-football-agent/internal/espn"
)

// minWaiverProjection filters out free agents without a meaningful weekly
// projection.
const minWaiverProjection = 2.0

func playerBye(p espn.Player) any {
	if bye, ok := ByeWeek(p.ProTeam); ok {
		return bye
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func injuryOrNil(p espn.Player) any {
	if p.InjuryStatus == "" {
		return nil
	}
	return p.InjuryStatus
}

// WaiverWirePayload shapes a free-agent listing into the waiver-wire tool
// result: players with a weekly projection above the threshold, optionally
// filtered by position, sorted by projection descending, capped at size.
func WaiverWirePayload(lg *espn.League, freeAgents []espn.Player, position string, size int) map[string]any {
	type candidate struct {
		player espn.Player
		proj   float64
	}
	var candidates []candidate
	for _, p := range freeAgents {
		if position != "" && p.Position != position {
			continue
		}
		proj := 0.0
		if ws, ok := p.Stats[lg.CurrentWeek]; ok {
			proj = ws.Projected
		}
		if proj > minWaiverProjection {
			candidates = append(candidates, candidate{player: p, proj: proj})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].proj > candidates[j].proj })
	if len(candidates) > size {
		candidates = candidates[:size]
	}

	if len(candidates) == 0 {
		if position != "" {
			return map[string]any{"message": fmt.Sprintf("No available players found for position %s", position)}
		}
		return map[string]any{"message": "No available players found"}
	}

	players := make([]map[string]any, 0, len(candidates))
	for _, c := range candidates {
		players = append(players, map[string]any{
			"player_id":        c.player.ID,
			"name":             c.player.Name,
			"position":         orNA(c.player.Position),
			"team":             orNA(c.player.ProTeam),
			"projected_points": round1(c.proj),
			"bye_week":         playerBye(c.player),
			"injury_status":    injuryOrNil(c.player),
		})
	}

	posLabel := position
	if posLabel == "" {
		posLabel = "All"
	}
	return map[string]any{
		"position":          posLabel,
		"available_players": players,
		"count":             len(players),
		"note":              "Use get_player_stats tool with player_id for detailed analysis of any player",
	}
}

// StructuredRoster splits a roster into starters (ordered by lineup slot) and
// bench (ordered by projection), each entry carrying the player_id needed for
// the player-stats tool. IR players are excluded.
func StructuredRoster(lg *espn.League, team *espn.Team) map[string]any {
	var starters, bench []map[string]any
	for _, p := range team.Roster {
		if p.LineupSlot == "IR" {
			continue
		}
		info := map[string]any{
			"player_id":        p.ID,
			"name":             p.Name,
			"position":         orNA(p.Position),
			"lineup_slot":      p.LineupSlot,
			"projected_points": round1(p.WeekProjection(lg.CurrentWeek)),
			"bye_week":         playerBye(p),
			"injury_status":    injuryOrNil(p),
		}
		if espn.LineupSlotted(p.LineupSlot) {
			starters = append(starters, info)
		} else {
			bench = append(bench, info)
		}
	}
	sort.SliceStable(starters, func(i, j int) bool {
		return slotRank(starters[i]["lineup_slot"].(string)) < slotRank(starters[j]["lineup_slot"].(string))
	})
	sort.SliceStable(bench, func(i, j int) bool {
		return bench[i]["projected_points"].(float64) > bench[j]["projected_points"].(float64)
	})
	return map[string]any{"starters": starters, "bench": bench}
}

// TeamDetailsPayload is the team-details tool result: record, points, roster
// strength, and the structured lineup. Unknown ids produce an error payload,
// not a Go error.
func TeamDetailsPayload(lg *espn.League, teamID int) map[string]any {
	team := lg.TeamByID(teamID)
	if team == nil {
		return map[string]any{"error": fmt.Sprintf("Team with ID '%d' not found", teamID)}
	}
	return map[string]any{
		"team_name":       team.Name,
		"record":          fmt.Sprintf("%d-%d", team.Wins, team.Losses),
		"points_for":      team.PointsFor,
		"points_against":  team.PointsAgainst,
		"roster_strength": RosterStrength(team),
		"lineup":          StructuredRoster(lg, team),
		"note":            "Use get_player_stats tool with player_id for detailed player analysis",
	}
}

// PlayerStatsPayload is the player-stats tool result: identity, season
// projection, and a chronological weekly breakdown with position-specific
// projected stat lines. Week 0 entries are skipped (season totals, not
// weekly data).
func PlayerStatsPayload(lg *espn.League, playerID int) map[string]any {
	player, team := lg.PlayerByID(playerID)
	if player == nil {
		return map[string]any{"error": fmt.Sprintf("Player with ID '%d' not found", playerID)}
	}

	weekly := map[string]any{}
	weeks := make([]int, 0, len(player.Stats))
	for w := range player.Stats {
		if w == 0 {
			continue
		}
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	for _, w := range weeks {
		ws := player.Stats[w]
		status := "projected"
		if ws.Actual > 0 {
			status = "completed"
		}
		entry := map[string]any{
			"projected_points": round1(ws.Projected),
			"actual_points":    round1(ws.Actual),
			"status":           status,
		}
		if breakdown := positionBreakdown(player.Position, ws.ProjectedBreakdown); breakdown != nil {
			entry["breakdown"] = breakdown
		}
		weekly[strconv.Itoa(w)] = entry
	}

	return map[string]any{
		"player_id":            player.ID,
		"name":                 player.Name,
		"position":             orNA(player.Position),
		"team":                 orNA(player.ProTeam),
		"fantasy_team":         team.Name,
		"projected_avg_points": round1(player.ProjectedAvg),
		"bye_week":             playerBye(*player),
		"injury_status":        injuryOrNil(*player),
		"weekly_stats":         weekly,
	}
}

// positionBreakdown selects the stat categories relevant to the position.
func positionBreakdown(position string, breakdown map[string]float64) map[string]any {
	if len(breakdown) == 0 {
		return nil
	}
	var keys []string
	switch position {
	case "RB", "WR", "TE":
		keys = []string{
			"rushing_attempts", "rushing_yards", "rushing_touchdowns",
			"receiving_targets", "receiving_receptions", "receiving_yards", "receiving_touchdowns",
		}
	case "QB":
		keys = []string{
			"passing_attempts", "passing_completions", "passing_yards", "passing_touchdowns",
			"rushing_attempts", "rushing_yards",
		}
	default:
		return nil
	}
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = round1(breakdown[k])
	}
	return out
}
