package fantasy

import (
	"fmt"
	"strings"

	"github.com/jkringel/fantasy-football-agent/internal/espn"
)

// normalizeSWID strips the surrounding braces ESPN sometimes includes and
// uppercases the GUID so cookie and owner values compare reliably.
func normalizeSWID(swid string) string {
	return strings.ToUpper(strings.Trim(swid, "{}"))
}

// IdentifyTeam finds the caller's team by matching the SWID cookie against
// team owner ids. The error lists the league's teams so the user can check
// their credentials against what ESPN returned.
func IdentifyTeam(lg *espn.League, swid string) (*espn.Team, error) {
	target := normalizeSWID(swid)
	for i := range lg.Teams {
		for _, owner := range lg.Teams[i].OwnerIDs {
			if normalizeSWID(owner) == target {
				return &lg.Teams[i], nil
			}
		}
	}

	names := make([]string, 0, len(lg.Teams))
	for _, t := range lg.Teams {
		names = append(names, t.Name)
	}
	return nil, fmt.Errorf("no team owned by SWID %s; league teams: %s", swid, strings.Join(names, ", "))
}
