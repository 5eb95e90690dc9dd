package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// NewsAPIProvider queries the NewsAPI "everything" endpoint.
type NewsAPIProvider struct {
	apiKey  string
	baseURL string
	domains string
	client  *http.Client
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func NewNewsAPIProvider(apiKey, baseURL, domains string, timeout time.Duration) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		domains: domains,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *NewsAPIProvider) Name() string {
	return "newsapi"
}

func (p *NewsAPIProvider) Search(ctx context.Context, q Query) ([]Item, error) {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(q.Limit))
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if p.domains != "" {
		params.Set("domains", p.domains)
	}

	fullURL := p.baseURL + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var decoded newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}

	items := make([]Item, 0, len(decoded.Articles))
	for _, a := range decoded.Articles {
		if a.Title == "" {
			continue
		}
		published := time.Time{}
		if a.PublishedAt != "" {
			if ts, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
				published = ts
			}
		}
		items = append(items, Item{
			Headline:    a.Title,
			Content:     a.Description, // missing description decodes to ""
			Source:      a.Source.Name,
			PublishedAt: published,
			URL:         a.URL,
		})
	}
	return items, nil
}
