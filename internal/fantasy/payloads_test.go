package fantasy

import (
	"strings"
	"testing"
)

func TestWaiverWirePayload_SortedAndCapped(t *testing.T) {
	lg := fixtureLeague()
	got := WaiverWirePayload(lg, fixtureFreeAgents(), "", 3)

	players, ok := got["available_players"].([]map[string]any)
	if !ok {
		t.Fatalf("no players in payload: %v", got)
	}
	if got["position"] != "All" {
		t.Errorf("position label: %v", got["position"])
	}
	if got["count"] != 3 {
		t.Errorf("count: %v", got["count"])
	}

	wantOrder := []string{"Jordan Mason", "Quentin Johnston", "Tyler Allgeier"}
	for i, name := range wantOrder {
		if players[i]["name"] != name {
			t.Errorf("position %d: want %s, got %v", i, name, players[i]["name"])
		}
	}
	for _, p := range players {
		if p["name"] == "Deep Bench Guy" {
			t.Error("sub-threshold projections must be filtered out")
		}
	}

	if players[0]["projected_points"] != 11.4 {
		t.Errorf("projection: %v", players[0]["projected_points"])
	}
	if players[0]["bye_week"] != 6 { // MIN
		t.Errorf("bye week: %v", players[0]["bye_week"])
	}
	if players[0]["injury_status"] != nil {
		t.Errorf("healthy player should report nil injury status: %v", players[0]["injury_status"])
	}
}

func TestWaiverWirePayload_PositionFilter(t *testing.T) {
	lg := fixtureLeague()
	got := WaiverWirePayload(lg, fixtureFreeAgents(), "WR", 10)

	players := got["available_players"].([]map[string]any)
	if len(players) != 2 {
		t.Fatalf("expected 2 WRs, got %d", len(players))
	}
	for _, p := range players {
		if p["position"] != "WR" {
			t.Errorf("filter leak: %v", p)
		}
	}
	if players[1]["injury_status"] != "OUT" {
		t.Errorf("injury status should survive into the payload: %v", players[1]["injury_status"])
	}
}

func TestWaiverWirePayload_EmptyResults(t *testing.T) {
	lg := fixtureLeague()

	got := WaiverWirePayload(lg, fixtureFreeAgents(), "TE", 3)
	msg, _ := got["message"].(string)
	if !strings.Contains(msg, "position TE") {
		t.Errorf("filtered empty result should name the position: %v", got)
	}

	got = WaiverWirePayload(lg, nil, "", 3)
	if got["message"] != "No available players found" {
		t.Errorf("unfiltered empty result: %v", got)
	}
}

func TestStructuredRoster(t *testing.T) {
	lg := fixtureLeague()
	got := StructuredRoster(lg, &lg.Teams[0])

	starters := got["starters"].([]map[string]any)
	bench := got["bench"].([]map[string]any)

	wantStarters := []string{"Josh Allen", "Bijan Robinson", "Ja'Marr Chase"}
	if len(starters) != len(wantStarters) {
		t.Fatalf("starters: %d", len(starters))
	}
	for i, name := range wantStarters {
		if starters[i]["name"] != name {
			t.Errorf("starter %d: want %s got %v (slot order QB, RB, WR)", i, name, starters[i]["name"])
		}
	}

	if len(bench) != 1 || bench[0]["name"] != "Jaylen Warren" {
		t.Errorf("bench: %v", bench)
	}
	for _, p := range append(starters, bench...) {
		if p["name"] == "Rashee Rice" {
			t.Error("IR players are excluded")
		}
		if _, ok := p["player_id"].(int); !ok {
			t.Errorf("entries must carry player_id: %v", p)
		}
	}
}

func TestTeamDetailsPayload(t *testing.T) {
	lg := fixtureLeague()
	got := TeamDetailsPayload(lg, 2)

	if got["team_name"] != "Bench Warmers" {
		t.Errorf("team_name: %v", got["team_name"])
	}
	if got["record"] != "1-1" {
		t.Errorf("record: %v", got["record"])
	}
	if _, ok := got["lineup"].(map[string]any); !ok {
		t.Errorf("lineup missing: %v", got)
	}
	if note, _ := got["note"].(string); !strings.Contains(note, "get_player_stats") {
		t.Errorf("note should point at the player-stats tool: %v", got["note"])
	}
}

func TestTeamDetailsPayload_NotFound(t *testing.T) {
	lg := fixtureLeague()
	got := TeamDetailsPayload(lg, 99)
	if got["error"] != "Team with ID '99' not found" {
		t.Errorf("error payload: %v", got)
	}
}

func TestPlayerStatsPayload(t *testing.T) {
	lg := fixtureLeague()
	got := PlayerStatsPayload(lg, 101)

	if got["name"] != "Josh Allen" {
		t.Errorf("name: %v", got["name"])
	}
	if got["fantasy_team"] != "Gridiron Geeks" {
		t.Errorf("fantasy_team: %v", got["fantasy_team"])
	}
	if got["bye_week"] != 7 {
		t.Errorf("bye_week: %v", got["bye_week"])
	}

	weekly := got["weekly_stats"].(map[string]any)
	if len(weekly) != 3 {
		t.Fatalf("weeks: %d", len(weekly))
	}

	w1 := weekly["1"].(map[string]any)
	if w1["status"] != "completed" {
		t.Errorf("played week status: %v", w1["status"])
	}
	if w1["actual_points"] != 28.4 {
		t.Errorf("actual points: %v", w1["actual_points"])
	}

	w3 := weekly["3"].(map[string]any)
	if w3["status"] != "projected" {
		t.Errorf("future week status: %v", w3["status"])
	}
	breakdown, ok := w3["breakdown"].(map[string]any)
	if !ok {
		t.Fatalf("QB week with projections should carry a breakdown: %v", w3)
	}
	if breakdown["passing_yards"] != 271.5 {
		t.Errorf("passing_yards: %v", breakdown["passing_yards"])
	}
	if _, hasReceiving := breakdown["receiving_yards"]; hasReceiving {
		t.Error("QB breakdown must not include receiving stats")
	}
}

func TestPlayerStatsPayload_RBBreakdown(t *testing.T) {
	lg := fixtureLeague()
	got := PlayerStatsPayload(lg, 102)

	weekly := got["weekly_stats"].(map[string]any)
	w3 := weekly["3"].(map[string]any)
	breakdown := w3["breakdown"].(map[string]any)
	if breakdown["rushing_yards"] != 86.1 {
		t.Errorf("rushing_yards: %v", breakdown["rushing_yards"])
	}
	if breakdown["receiving_targets"] != 4.9 {
		t.Errorf("receiving_targets: %v", breakdown["receiving_targets"])
	}
	if _, hasPassing := breakdown["passing_yards"]; hasPassing {
		t.Error("RB breakdown must not include passing stats")
	}
}

func TestPlayerStatsPayload_NotFound(t *testing.T) {
	lg := fixtureLeague()
	got := PlayerStatsPayload(lg, 999)
	if got["error"] != "Player with ID '999' not found" {
		t.Errorf("error payload: %v", got)
	}
}
