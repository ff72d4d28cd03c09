package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jkringel/fantasy-football-agent/internal/espn"
	"github.com/jkringel/fantasy-football-agent/internal/fantasy"
)

type TeamDetailsInput struct {
	TeamID int `json:"team_id" jsonschema_description:"The team_id from the league standings. Example: 123"`
}

var TeamDetailsInputSchema = GenerateSchema[TeamDetailsInput]()

// TeamDetailsDefinition builds the get_team_details tool over the league
// snapshot.
func TeamDetailsDefinition(lg *espn.League) Definition {
	return Definition{
		Name:        "get_team_details",
		Description: "Get roster information for a specific team including lineup structure with player IDs. Use team_id from league standings. Use get_player_stats tool with player_id for detailed individual player analysis.",
		Parameters:  TeamDetailsInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			var in TeamDetailsInput
			if err := json.Unmarshal(input, &in); err != nil {
				return map[string]any{"error": fmt.Sprintf("invalid arguments: %v", err)}, nil
			}
			// A missing team_id falls through as 0 and reports not-found.
			return fantasy.TeamDetailsPayload(lg, in.TeamID), nil
		},
	}
}
