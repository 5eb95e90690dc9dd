package news

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// RSSProvider fetches football feeds and filters items mentioning the
// queried team. Feeds are not keyword-indexed, so the query text is
// matched against title and description after HTML stripping.
type RSSProvider struct {
	feeds  []string
	parser *gofeed.Parser
}

func NewRSSProvider(feeds []string) *RSSProvider {
	return &RSSProvider{
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

func (p *RSSProvider) Name() string {
	return "rss"
}

func (p *RSSProvider) Search(ctx context.Context, q Query) ([]Item, error) {
	needle := strings.ToLower(strings.TrimSpace(q.Team))
	if needle == "" {
		return nil, nil
	}

	var items []Item
	for _, feedURL := range p.feeds {
		feed, err := p.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			// One broken feed must not abort the rest.
			continue
		}
		for _, entry := range feed.Items {
			desc := stripHTML(entry.Description)
			haystack := strings.ToLower(entry.Title + " " + desc)
			if !strings.Contains(haystack, needle) {
				continue
			}
			item := Item{
				Headline: entry.Title,
				Content:  desc,
				Source:   feed.Title,
				URL:      entry.Link,
			}
			if entry.PublishedParsed != nil {
				item.PublishedAt = *entry.PublishedParsed
			}
			items = append(items, item)
			if q.Limit > 0 && len(items) >= q.Limit {
				return items, nil
			}
		}
	}
	return items, nil
}

// stripHTML flattens feed descriptions, which frequently carry markup.
func stripHTML(raw string) string {
	if raw == "" || !strings.ContainsRune(raw, '<') {
		return strings.TrimSpace(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}
