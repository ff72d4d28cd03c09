package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const defaultBaseURL = "https://lm-api-reads.fantasy.espn.com"

// Client issues authenticated, read-only requests against one league.
// Private leagues require the espn_s2 and SWID cookies.
type Client struct {
	httpClient *http.Client
	baseURL    string
	leagueID   int
	year       int
	espnS2     string
	swid       string
}

// Option adjusts client construction.
type Option func(*Client)

// WithBaseURL points the client at a different host (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a league client.
func NewClient(leagueID, year int, espnS2, swid string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		leagueID:   leagueID,
		year:       year,
		espnS2:     espnS2,
		swid:       swid,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) leagueURL() string {
	return fmt.Sprintf("%s/apis/v3/games/ffl/seasons/%d/segments/0/leagues/%d", c.baseURL, c.year, c.leagueID)
}

// get fetches the league endpoint with the given query and optional
// X-Fantasy-Filter header, returning the parsed JSON document.
func (c *Client) get(ctx context.Context, query url.Values, filter string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.leagueURL()+"?"+query.Encode(), nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if filter != "" {
		req.Header.Set("X-Fantasy-Filter", filter)
	}
	if c.espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.espnS2})
	}
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("espn request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read espn response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("espn HTTP %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("espn returned invalid JSON")
	}
	return gjson.ParseBytes(body), nil
}

// League fetches the full league snapshot: settings, teams with rosters, and
// the current week's matchup lineups.
func (c *Client) League(ctx context.Context) (*League, error) {
	q := url.Values{}
	q["view"] = []string{"mSettings", "mTeam", "mRoster"}
	root, err := c.get(ctx, q, "")
	if err != nil {
		return nil, err
	}

	lg := &League{
		ID:   c.leagueID,
		Year: c.year,
		Name: root.Get("settings.name").String(),
	}
	lg.CurrentWeek = int(root.Get("scoringPeriodId").Int())
	if lg.CurrentWeek == 0 {
		lg.CurrentWeek = int(root.Get("status.currentMatchupPeriod").Int())
	}

	root.Get("teams").ForEach(func(_, t gjson.Result) bool {
		lg.Teams = append(lg.Teams, parseTeam(t))
		return true
	})

	if lg.CurrentWeek > 0 {
		matchups, err := c.boxScores(ctx, lg.CurrentWeek)
		if err != nil {
			return nil, err
		}
		lg.Matchups = matchups
	}
	return lg, nil
}

// boxScores fetches matchups with per-period lineups for the given week.
func (c *Client) boxScores(ctx context.Context, week int) ([]Matchup, error) {
	q := url.Values{}
	q["view"] = []string{"mMatchup", "mMatchupScore"}
	q.Set("scoringPeriodId", strconv.Itoa(week))
	root, err := c.get(ctx, q, "")
	if err != nil {
		return nil, err
	}

	var matchups []Matchup
	root.Get("schedule").ForEach(func(_, s gjson.Result) bool {
		if int(s.Get("matchupPeriodId").Int()) != week {
			return true
		}
		m := Matchup{
			Week:       week,
			HomeTeamID: int(s.Get("home.teamId").Int()),
			AwayTeamID: int(s.Get("away.teamId").Int()),
			HomeLineup: parseLineup(s.Get("home.rosterForCurrentScoringPeriod.entries"), week),
			AwayLineup: parseLineup(s.Get("away.rosterForCurrentScoringPeriod.entries"), week),
		}
		matchups = append(matchups, m)
		return true
	})
	return matchups, nil
}

// FreeAgents lists unowned players for the given week, ordered by ownership
// percentage server-side. size bounds the result count.
func (c *Client) FreeAgents(ctx context.Context, week, size int) ([]Player, error) {
	q := url.Values{}
	q.Set("view", "kona_player_info")
	if week > 0 {
		q.Set("scoringPeriodId", strconv.Itoa(week))
	}
	filter := fmt.Sprintf(
		`{"players":{"filterStatus":{"value":["FREEAGENT","WAIVERS"]},"limit":%d,"sortPercOwned":{"sortPriority":1,"sortAsc":false}}}`,
		size,
	)
	root, err := c.get(ctx, q, filter)
	if err != nil {
		return nil, err
	}

	var players []Player
	root.Get("players").ForEach(func(_, entry gjson.Result) bool {
		p := parsePlayer(entry.Get("player"), "")
		if p.Name != "" {
			players = append(players, p)
		}
		return true
	})
	return players, nil
}

func parseTeam(t gjson.Result) Team {
	team := Team{
		ID:            int(t.Get("id").Int()),
		Abbrev:        t.Get("abbrev").String(),
		Wins:          int(t.Get("record.overall.wins").Int()),
		Losses:        int(t.Get("record.overall.losses").Int()),
		PointsFor:     t.Get("record.overall.pointsFor").Float(),
		PointsAgainst: t.Get("record.overall.pointsAgainst").Float(),
	}
	team.Name = t.Get("name").String()
	if team.Name == "" {
		// Older payloads split the name into location + nickname.
		team.Name = strings.TrimSpace(t.Get("location").String() + " " + t.Get("nickname").String())
	}

	// Owners appear either as SWID strings or as objects carrying an id.
	t.Get("owners").ForEach(func(_, o gjson.Result) bool {
		switch o.Type {
		case gjson.String:
			team.OwnerIDs = append(team.OwnerIDs, o.String())
		case gjson.JSON:
			if id := o.Get("id").String(); id != "" {
				team.OwnerIDs = append(team.OwnerIDs, id)
			}
		}
		return true
	})

	t.Get("roster.entries").ForEach(func(_, e gjson.Result) bool {
		slot := lineupSlotNames[e.Get("lineupSlotId").Int()]
		p := parsePlayer(e.Get("playerPoolEntry.player"), slot)
		if p.Name != "" {
			team.Roster = append(team.Roster, p)
		}
		return true
	})
	return team
}

func parsePlayer(pl gjson.Result, slot string) Player {
	p := Player{
		ID:           int(pl.Get("id").Int()),
		Name:         pl.Get("fullName").String(),
		Position:     positionNames[pl.Get("defaultPositionId").Int()],
		ProTeam:      proTeamAbbrevs[pl.Get("proTeamId").Int()],
		LineupSlot:   slot,
		InjuryStatus: pl.Get("injuryStatus").String(),
		Stats:        map[int]WeekStats{},
	}
	if p.LineupSlot == "" {
		p.LineupSlot = "BE"
	}
	if p.InjuryStatus == "ACTIVE" {
		p.InjuryStatus = ""
	}

	pl.Get("stats").ForEach(func(_, s gjson.Result) bool {
		week := int(s.Get("scoringPeriodId").Int())
		source := s.Get("statSourceId").Int() // 0 actual, 1 projected
		split := s.Get("statSplitTypeId").Int()

		// Season-level projection: per-game average.
		if split == 0 && source == 1 {
			if avg := s.Get("appliedAverage").Float(); avg > 0 {
				p.ProjectedAvg = avg
			}
			return true
		}
		if split != 1 || week == 0 {
			return true
		}

		ws := p.Stats[week]
		if source == 1 {
			ws.Projected = s.Get("appliedTotal").Float()
			ws.ProjectedBreakdown = parseBreakdown(s.Get("stats"))
		} else {
			ws.Actual = s.Get("appliedTotal").Float()
		}
		p.Stats[week] = ws
		return true
	})
	return p
}

// parseBreakdown keeps only the stat categories we can name.
func parseBreakdown(stats gjson.Result) map[string]float64 {
	var out map[string]float64
	stats.ForEach(func(key, val gjson.Result) bool {
		name, ok := statNames[key.String()]
		if !ok {
			return true
		}
		if out == nil {
			out = map[string]float64{}
		}
		out[name] = val.Float()
		return true
	})
	return out
}

func parseLineup(entries gjson.Result, week int) []LineupPlayer {
	var lineup []LineupPlayer
	entries.ForEach(func(_, e gjson.Result) bool {
		pl := e.Get("playerPoolEntry.player")
		lp := LineupPlayer{
			PlayerID: int(pl.Get("id").Int()),
			Name:     pl.Get("fullName").String(),
			Slot:     lineupSlotNames[e.Get("lineupSlotId").Int()],
		}
		// Weekly projection for this scoring period.
		pl.Get("stats").ForEach(func(_, s gjson.Result) bool {
			if int(s.Get("scoringPeriodId").Int()) == week && s.Get("statSourceId").Int() == 1 {
				lp.ProjectedPoints = s.Get("appliedTotal").Float()
				return false
			}
			return true
		})
		if lp.Name != "" {
			lineup = append(lineup, lp)
		}
		return true
	})
	return lineup
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
