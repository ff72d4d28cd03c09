// Package config builds the advisor's configuration from the environment
// once at process start; nothing inside the core reads env vars afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries everything an analysis run needs: ESPN credentials and
// league coordinates, the model host key and model name, and the turn
// ceiling for the conversation loop.
type Config struct {
	ESPNS2   string
	SWID     string
	LeagueID int
	Year     int

	OpenAIAPIKey string
	Model        string
	MaxTurns     int
}

const defaultMaxTurns = 16

// FromEnv reads and validates the environment. All missing required
// variables are reported together so the user fixes their .env in one pass.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ESPNS2:       os.Getenv("ESPN_S2"),
		SWID:         os.Getenv("SWID"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Model:        os.Getenv("FFA_MODEL"),
		MaxTurns:     defaultMaxTurns,
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{"ESPN_S2", cfg.ESPNS2},
		{"SWID", cfg.SWID},
		{"OPENAI_API_KEY", cfg.OpenAIAPIKey},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}

	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"LEAGUE_ID", &cfg.LeagueID},
		{"YEAR", &cfg.Year},
	} {
		raw := os.Getenv(v.name)
		if raw == "" {
			missing = append(missing, v.name)
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", v.name, raw, err)
		}
		*v.dst = n
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s (add them to your .env file)", strings.Join(missing, ", "))
	}

	if raw := os.Getenv("FFA_MAX_TURNS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid FFA_MAX_TURNS %q: must be a positive integer", raw)
		}
		cfg.MaxTurns = n
	}

	return cfg, nil
}
