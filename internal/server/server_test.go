package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tahleel-ai/scout/internal/metrics"
	"github.com/tahleel-ai/scout/internal/news"
	"github.com/tahleel-ai/scout/internal/report"
	"github.com/tahleel-ai/scout/internal/server"
)

type stubComposer struct {
	lastTeam string
}

func (s *stubComposer) Compose(_ context.Context, team string) report.TacticalReport {
	s.lastTeam = team
	return report.TacticalReport{
		AnalysisID:      "test-id",
		Opponent:        team,
		Formation:       "4-3-3 Diamond",
		ConfidenceScore: 89,
		DataSource:      report.DataSourceBaseline,
		GeneratedAt:     time.Now().UTC(),
	}
}

type stubFetcher struct {
	lastTeam  string
	lastLimit int
	items     []news.Item
}

func (s *stubFetcher) FetchTeamNews(_ context.Context, team string, limit int) []news.Item {
	s.lastTeam = team
	s.lastLimit = limit
	return s.items
}

func newTestServer(composer server.Composer, fetcher server.NewsFetcher) *httptest.Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.New(composer, fetcher, server.Status{GeminiConfigured: true, FeedCount: 2}, log)
	return httptest.NewServer(srv.Routes())
}

func TestAnalysisEndpoint(t *testing.T) {
	composer := &stubComposer{}
	ts := newTestServer(composer, &stubFetcher{})
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/analysis", "application/json", strings.NewReader(`{"opponent":"Al-Hilal"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Al-Hilal", composer.lastTeam)

	var rep report.TacticalReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	require.Equal(t, "Al-Hilal", rep.Opponent)
	require.Equal(t, "4-3-3 Diamond", rep.Formation)
}

func TestAnalysisRejectsEmptyOpponent(t *testing.T) {
	ts := newTestServer(&stubComposer{}, &stubFetcher{})
	defer ts.Close()

	for _, body := range []string{`{"opponent":"  "}`, `{}`, `not json`} {
		resp, err := http.Post(ts.URL+"/api/analysis", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
}

func TestTeamNewsEndpoint(t *testing.T) {
	fetcher := &stubFetcher{items: news.MockTeamNews("Al-Hilal", 3)}
	ts := newTestServer(&stubComposer{}, fetcher)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/news/Al-Hilal?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Al-Hilal", fetcher.lastTeam)
	require.Equal(t, 5, fetcher.lastLimit)

	var payload struct {
		Team  string      `json:"team"`
		Count int         `json:"count"`
		News  []news.Item `json:"news"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "Al-Hilal", payload.Team)
	require.Equal(t, 3, payload.Count)
	require.Len(t, payload.News, 3)
}

func TestTeamNewsLimitClamped(t *testing.T) {
	fetcher := &stubFetcher{}
	ts := newTestServer(&stubComposer{}, fetcher)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/news/Al-Hilal?limit=500")
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 50, fetcher.lastLimit)
}

func TestStatusEndpoint(t *testing.T) {
	ts := newTestServer(&stubComposer{}, &stubFetcher{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Services server.Status `json:"services"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Services.GeminiConfigured)
	require.False(t, payload.Services.NewsAPIConfigured)
	require.Equal(t, 2, payload.Services.FeedCount)
}

func TestHealthEndpoint(t *testing.T) {
	metrics.Global.SetLastRun()
	ts := newTestServer(&stubComposer{}, &stubFetcher{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload.Status)
}
