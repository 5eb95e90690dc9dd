package news

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tahleel-ai/scout/internal/metrics"
)

const (
	baseScore            = 50
	headlineKeywordBoost = 15
	contentKeywordBoost  = 10
	maxQueryVariants     = 4
)

// Aggregator fans queries out to the configured providers, then
// normalizes, deduplicates, scores, and ranks the merged result.
type Aggregator struct {
	providers    []Provider
	lists        *Lists
	language     string
	queryTimeout time.Duration
	log          *slog.Logger
}

func NewAggregator(providers []Provider, lists *Lists, language string, queryTimeout time.Duration, log *slog.Logger) *Aggregator {
	if lists == nil {
		lists = DefaultLists()
	}
	if queryTimeout <= 0 {
		queryTimeout = 4 * time.Second
	}
	return &Aggregator{
		providers:    providers,
		lists:        lists,
		language:     language,
		queryTimeout: queryTimeout,
		log:          log,
	}
}

// FetchTeamNews returns a ranked news list for the team. It never fails
// outward: provider errors degrade to partial or mock results.
func (a *Aggregator) FetchTeamNews(ctx context.Context, team string, limit int) []Item {
	if limit <= 0 {
		return []Item{}
	}

	team = sanitizeTeamName(team)
	if team == "" {
		return MockTeamNews("Unknown", limit)
	}

	raw := a.collect(ctx, team, limit)
	items := a.rank(raw, limit)
	if len(items) == 0 {
		a.log.Debug("no usable provider items, using templated news", "team", team)
		return MockTeamNews(team, limit)
	}
	return items
}

// collect runs every provider × query variant concurrently. Each call
// gets its own timeout; a failing call contributes nothing.
func (a *Aggregator) collect(ctx context.Context, team string, limit int) []Item {
	if len(a.providers) == 0 {
		return nil
	}

	queries := buildQueryVariants(team, a.lists.QueryKeywords)

	var (
		mu     sync.Mutex
		merged []Item
		wg     sync.WaitGroup
	)

	for _, provider := range a.providers {
		for _, variant := range queries {
			wg.Add(1)
			go func(p Provider, text string) {
				defer wg.Done()

				queryCtx, cancel := context.WithTimeout(ctx, a.queryTimeout)
				defer cancel()

				items, err := p.Search(queryCtx, Query{
					Text:     text,
					Team:     team,
					Limit:    limit,
					Language: a.language,
				})
				if err != nil {
					metrics.Global.IncrementProviderErrors()
					if errors.Is(err, ErrRateLimited) {
						a.log.Debug("provider rate limited", "provider", p.Name(), "query", text)
					} else {
						a.log.Warn("provider query failed", "provider", p.Name(), "query", text, "err", err)
					}
					return
				}

				mu.Lock()
				merged = append(merged, items...)
				mu.Unlock()
			}(provider, variant)
		}
	}
	wg.Wait()

	return merged
}

// rank applies the dedupe, scoring, and ordering contract.
func (a *Aggregator) rank(raw []Item, limit int) []Item {
	seen := make(map[string]struct{}, len(raw))
	items := make([]Item, 0, len(raw))

	for _, item := range raw {
		metrics.Global.IncrementNewsProcessed()

		normalized := normalizeHeadline(item.Headline)
		if len([]rune(normalized)) < minHeadlineRunes {
			continue
		}
		if _, dup := seen[normalized]; dup {
			metrics.Global.IncrementDuplicatesFiltered()
			continue
		}
		seen[normalized] = struct{}{}

		item.RelevanceScore = scoreItem(item, a.lists.ScoringKeywords)
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].PublishedAt.After(items[j].PublishedAt)
		}
		return items[i].RelevanceScore > items[j].RelevanceScore
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// buildQueryVariants combines the team name with tactical keywords.
// Separate narrow queries recall more than one broad query against
// keyword-indexed providers.
func buildQueryVariants(team string, keywords []string) []string {
	if len(keywords) == 0 {
		return []string{team}
	}
	if len(keywords) > maxQueryVariants {
		keywords = keywords[:maxQueryVariants]
	}
	variants := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		variants = append(variants, team+" "+kw)
	}
	return variants
}

func scoreItem(item Item, keywords []string) int {
	score := baseScore
	headline := strings.ToLower(item.Headline)
	content := strings.ToLower(item.Content)

	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(headline, kw) {
			score += headlineKeywordBoost
		}
		if strings.Contains(content, kw) {
			score += contentKeywordBoost
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
