package news

import (
	"strings"
	"time"
)

// Item is a single normalized news article about a team.
type Item struct {
	Headline       string    `json:"headline"`
	Content        string    `json:"content"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"publishedAt"`
	URL            string    `json:"url,omitempty"`
	RelevanceScore int       `json:"relevanceScore"`
}

// minHeadlineRunes is the shortest normalized headline considered usable.
// Anything below it is too generic to feed into analysis.
const minHeadlineRunes = 10

func normalizeHeadline(headline string) string {
	return strings.ToLower(strings.TrimSpace(headline))
}

// sanitizeTeamName strips quote characters so the name can be embedded in
// provider query strings safely.
func sanitizeTeamName(team string) string {
	replacer := strings.NewReplacer(`"`, "", "'", "", "`", "")
	return strings.TrimSpace(replacer.Replace(team))
}
