package report

import "fmt"

const (
	baselineFormation  = "4-3-3 Diamond"
	baselineConfidence = 89
)

// baselineReport is the deterministic tactical template parameterized
// only by the opponent name. It is always built first; enrichment only
// ever replaces RecentNews on top of it.
func baselineReport(team string) TacticalReport {
	return TacticalReport{
		Opponent: team,
		Weaknesses: []string{
			fmt.Sprintf("%s shows vulnerability to quick counter-attacks on the left flank", team),
			"Defensive line positioning inconsistent during set pieces",
			"Midfield pressing coordination needs improvement",
			"Vulnerable to pace on the wings during transitions",
		},
		Strategies: []string{
			"Exploit wide areas with overlapping fullback runs",
			"Press high immediately after losing possession",
			"Target set pieces with height advantage",
			"Use quick passing combinations in final third",
		},
		Formation: baselineFormation,
		KeyPlayers: []string{
			"Neutralize their playmaker with dedicated marking",
			"Double-mark main striker in penalty area",
			"Exploit pace advantage against slower defenders",
			"Pressure their goalkeeper on goal kicks",
		},
		ConfidenceScore: baselineConfidence,
	}
}

// substituteInsights stands in for RecentNews when AI enrichment is
// unavailable.
func substituteInsights(team string) []string {
	return []string{
		fmt.Sprintf("%s key midfielder picked up minor injury in training", team),
		"Recent tactical formation adjustments observed",
		"Coach emphasized defensive improvements in latest interview",
		"New signing expected to strengthen midfield options",
	}
}
