package news_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tahleel-ai/scout/internal/news"
)

func TestNewsAPISearchMapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Al-Hilal injury", r.URL.Query().Get("q"))
		require.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		require.Equal(t, "en", r.URL.Query().Get("language"))
		require.Equal(t, "secret", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"source": {"name": "Goal"},
					"title": "Al-Hilal striker doubtful for weekend clash",
					"description": "Fitness concerns ahead of the derby.",
					"url": "https://example.com/a1",
					"publishedAt": "2025-03-01T10:00:00Z"
				},
				{
					"source": {"name": "Goal"},
					"title": "Al-Hilal confirm coaching staff reshuffle",
					"url": "https://example.com/a2",
					"publishedAt": "2025-02-28T09:30:00Z"
				},
				{
					"source": {"name": "Goal"},
					"title": "",
					"description": "headline missing, must be skipped"
				}
			]
		}`))
	}))
	defer srv.Close()

	provider := news.NewNewsAPIProvider("secret", srv.URL, "", 2*time.Second)
	items, err := provider.Search(context.Background(), news.Query{
		Text:     "Al-Hilal injury",
		Team:     "Al-Hilal",
		Limit:    10,
		Language: "en",
	})

	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "Al-Hilal striker doubtful for weekend clash", items[0].Headline)
	require.Equal(t, "Fitness concerns ahead of the derby.", items[0].Content)
	require.Equal(t, "Goal", items[0].Source)
	require.Equal(t, "https://example.com/a1", items[0].URL)
	require.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), items[0].PublishedAt)

	// Missing description normalizes to empty content.
	require.Equal(t, "", items[1].Content)
}

func TestNewsAPISearchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := news.NewNewsAPIProvider("secret", srv.URL, "", 2*time.Second)
	items, err := provider.Search(context.Background(), news.Query{Text: "Al-Hilal", Limit: 5})

	require.ErrorIs(t, err, news.ErrRateLimited)
	require.Nil(t, items)
}

func TestNewsAPISearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := news.NewNewsAPIProvider("secret", srv.URL, "", 2*time.Second)
	_, err := provider.Search(context.Background(), news.Query{Text: "Al-Hilal", Limit: 5})

	require.ErrorIs(t, err, news.ErrUnavailable)
}
