package espn

// ESPN encodes positions, lineup slots, pro teams, and stat categories as
// numeric ids. These tables cover the ids a standard league produces; unknown
// ids resolve to "" and are dropped by callers.

var positionNames = map[int64]string{
	1:  "QB",
	2:  "RB",
	3:  "WR",
	4:  "TE",
	5:  "K",
	16: "D/ST",
}

var lineupSlotNames = map[int64]string{
	0:  "QB",
	2:  "RB",
	4:  "WR",
	6:  "TE",
	7:  "OP",
	16: "D/ST",
	17: "K",
	20: "BE",
	21: "IR",
	23: "RB/WR/TE",
}

var proTeamAbbrevs = map[int64]string{
	1:  "ATL",
	2:  "BUF",
	3:  "CHI",
	4:  "CIN",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GB",
	10: "TEN",
	11: "IND",
	12: "KC",
	13: "LV",
	14: "LAR",
	15: "MIA",
	16: "MIN",
	17: "NE",
	18: "NO",
	19: "NYG",
	20: "NYJ",
	21: "PHI",
	22: "ARI",
	23: "PIT",
	24: "LAC",
	25: "SF",
	26: "SEA",
	27: "TB",
	28: "WSH",
	29: "CAR",
	30: "JAX",
	33: "BAL",
	34: "HOU",
}

// statNames maps the stat category ids surfaced in projected breakdowns to
// the snake_case names exposed through the player-stats tool.
var statNames = map[string]string{
	"0":  "passing_attempts",
	"1":  "passing_completions",
	"3":  "passing_yards",
	"4":  "passing_touchdowns",
	"23": "rushing_attempts",
	"24": "rushing_yards",
	"25": "rushing_touchdowns",
	"42": "receiving_yards",
	"43": "receiving_touchdowns",
	"53": "receiving_receptions",
	"58": "receiving_targets",
}
