// Package espn is a read-only client for the ESPN fantasy football v3 API.
//
// It fetches a league snapshot (settings, teams, rosters, current-week
// matchup lineups) and free-agent listings, and resolves ESPN's loose,
// deeply nested JSON into explicit structs at this boundary so downstream
// code never probes for optional attributes.
package espn
