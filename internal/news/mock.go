package news

import (
	"fmt"
	"time"
)

// MockTeamNews produces deterministic templated items so downstream
// analysis always has a non-empty, well-formed list to work with when no
// provider is configured or every query came back empty.
func MockTeamNews(team string, limit int) []Item {
	now := time.Now().UTC()
	items := []Item{
		{
			Headline:       fmt.Sprintf("%s prepares tactical adjustments for upcoming fixtures", team),
			Content:        "Team showing strong form with new strategic approach in recent training.",
			Source:         "Football Analysis",
			PublishedAt:    now,
			RelevanceScore: 90,
		},
		{
			Headline:       fmt.Sprintf("Latest team updates from %s training ground", team),
			Content:        "Key player fitness reports and tactical preparation updates.",
			Source:         "Sports Central",
			PublishedAt:    now.Add(-24 * time.Hour),
			RelevanceScore: 85,
		},
		{
			Headline:       fmt.Sprintf("%s tactical review: recent performance analysis", team),
			Content:        "Comprehensive look at formation changes and player roles.",
			Source:         "Tactical Insights",
			PublishedAt:    now.Add(-48 * time.Hour),
			RelevanceScore: 88,
		},
	}
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
