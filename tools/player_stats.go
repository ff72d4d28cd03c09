package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jkringel/fantasy-football-agent/internal/espn"
	"github.com/jkringel/fantasy-football-agent/internal/fantasy"
)

type PlayerStatsInput struct {
	PlayerID int `json:"player_id" jsonschema_description:"The player_id from roster data. Example: 4426515"`
}

var PlayerStatsInputSchema = GenerateSchema[PlayerStatsInput]()

// PlayerStatsDefinition builds the get_player_stats tool over the league
// snapshot.
func PlayerStatsDefinition(lg *espn.League) Definition {
	return Definition{
		Name:        "get_player_stats",
		Description: "Get detailed weekly breakdown stats for any player. Useful for analyzing usage trends, projections, and performance patterns. Use the player_id from roster data.",
		Parameters:  PlayerStatsInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			var in PlayerStatsInput
			if err := json.Unmarshal(input, &in); err != nil {
				return map[string]any{"error": fmt.Sprintf("invalid arguments: %v", err)}, nil
			}
			return fantasy.PlayerStatsPayload(lg, in.PlayerID), nil
		},
	}
}

// ForLeague assembles the advisor's registry: the three fantasy tools plus
// the pre-declared host-native web_search.
func ForLeague(lg *espn.League, src FreeAgentSource) (*Registry, error) {
	r := NewRegistry()
	defs := []Definition{
		WaiverWireDefinition(lg, src),
		TeamDetailsDefinition(lg),
		PlayerStatsDefinition(lg),
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}
