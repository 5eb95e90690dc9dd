package news_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tahleel-ai/scout/internal/news"
)

func TestLoadListsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := `query_keywords:
  - injury
  - transfer
scoring_keywords:
  - injury
feeds:
  - https://example.com/feed.xml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lists, err := news.LoadLists(path)
	require.NoError(t, err)
	require.Equal(t, []string{"injury", "transfer"}, lists.QueryKeywords)
	require.Equal(t, []string{"injury"}, lists.ScoringKeywords)
	require.Equal(t, []string{"https://example.com/feed.xml"}, lists.Feeds)
}

func TestLoadListsMissingSectionsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feeds:\n  - https://example.com/feed.xml\n"), 0o644))

	lists, err := news.LoadLists(path)
	require.NoError(t, err)
	require.Equal(t, news.DefaultLists().QueryKeywords, lists.QueryKeywords)
	require.Equal(t, news.DefaultLists().ScoringKeywords, lists.ScoringKeywords)
}

func TestLoadListsMissingFile(t *testing.T) {
	_, err := news.LoadLists(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
