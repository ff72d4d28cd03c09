package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jkringel/fantasy-football-agent/internal/espn"
	"github.com/jkringel/fantasy-football-agent/internal/fantasy"
)

// FreeAgentSource lists unowned players; satisfied by *espn.Client.
type FreeAgentSource interface {
	FreeAgents(ctx context.Context, week, size int) ([]espn.Player, error)
}

type WaiverWireInput struct {
	Position string `json:"position,omitempty" jsonschema:"enum=QB,enum=RB,enum=WR,enum=TE,enum=K,enum=D/ST" jsonschema_description:"Position to filter by (optional)"`
	Size     int    `json:"size,omitempty" jsonschema:"default=3,minimum=1,maximum=10" jsonschema_description:"Number of players to return (default: 3, max: 10)"`
}

var WaiverWireInputSchema = GenerateSchema[WaiverWireInput]()

const (
	defaultWaiverSize = 3
	maxWaiverSize     = 10

	// ESPN's free-agent listing is ownership-sorted, so fetch a wide pool
	// before filtering on weekly projection; wider still when a position
	// filter will discard most of it.
	waiverFetchSize         = 50
	waiverFetchSizeFiltered = 75
)

// WaiverWireDefinition builds the get_waiver_wire tool over the given league
// snapshot and free-agent source.
func WaiverWireDefinition(lg *espn.League, src FreeAgentSource) Definition {
	return Definition{
		Name:        "get_waiver_wire",
		Description: "Get top available players from the waiver wire, sorted by projected points (highest first), optionally filtered by position",
		Parameters:  WaiverWireInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			var in WaiverWireInput
			if err := json.Unmarshal(input, &in); err != nil {
				return map[string]any{"error": fmt.Sprintf("invalid arguments: %v", err)}, nil
			}

			position := in.Position
			if position == "DST" {
				position = "D/ST"
			}
			switch position {
			case "", "QB", "RB", "WR", "TE", "K", "D/ST":
			default:
				return map[string]any{
					"error": fmt.Sprintf("Invalid position: %s. Valid positions are QB, RB, WR, TE, K, D/ST", in.Position),
				}, nil
			}

			size := in.Size
			if size <= 0 {
				size = defaultWaiverSize
			}
			if size > maxWaiverSize {
				size = maxWaiverSize
			}

			fetchSize := waiverFetchSize
			if position != "" {
				fetchSize = waiverFetchSizeFiltered
			}
			freeAgents, err := src.FreeAgents(ctx, lg.CurrentWeek, fetchSize)
			if err != nil {
				return nil, fmt.Errorf("fetch free agents: %w", err)
			}
			return fantasy.WaiverWirePayload(lg, freeAgents, position, size), nil
		},
	}
}
