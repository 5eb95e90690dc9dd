package report

import "time"

// Data source labels communicate degraded quality to the caller; the
// pipeline itself never surfaces an error.
const (
	DataSourceAIEnriched = "ai-enriched"
	DataSourceBaseline   = "baseline-engine"
)

// TacticalReport is the complete scouting report for one opponent.
// Values are built fresh per request and never mutated afterwards.
type TacticalReport struct {
	AnalysisID      string    `json:"analysisId"`
	Opponent        string    `json:"opponent"`
	Weaknesses      []string  `json:"weaknesses"`
	Strategies      []string  `json:"strategies"`
	Formation       string    `json:"formation"`
	KeyPlayers      []string  `json:"keyPlayers"`
	RecentNews      []string  `json:"recentNews"`
	ConfidenceScore int       `json:"confidenceScore"`
	AIEnhanced      bool      `json:"aiEnhanced"`
	DataSource      string    `json:"dataSource"`
	NewsCount       int       `json:"newsCount"`
	GeneratedAt     time.Time `json:"generatedAt"`
}
