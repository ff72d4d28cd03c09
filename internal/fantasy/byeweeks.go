package fantasy

// byeWeeks is the 2025 NFL bye-week schedule keyed by pro-team abbreviation.
var byeWeeks = map[string]int{
	"ARI": 8,
	"ATL": 5,
	"BAL": 7,
	"BUF": 7,
	"CAR": 14,
	"CHI": 5,
	"CIN": 10,
	"CLE": 9,
	"DAL": 10,
	"DEN": 12,
	"DET": 8,
	"GB":  5,
	"HOU": 6,
	"IND": 11,
	"JAX": 8,
	"KC":  10,
	"LV":  8,
	"LAC": 12,
	"LAR": 8,
	"MIA": 12,
	"MIN": 6,
	"NE":  14,
	"NO":  11,
	"NYG": 14,
	"NYJ": 9,
	"PHI": 9,
	"PIT": 5,
	"SF":  14,
	"SEA": 8,
	"TB":  9,
	"TEN": 10,
	"WSH": 12,
}

// ByeWeek returns the bye week for a pro team abbreviation.
// ok is false for unknown teams (e.g. free agents without a pro team).
func ByeWeek(proTeam string) (week int, ok bool) {
	week, ok = byeWeeks[proTeam]
	return week, ok
}
