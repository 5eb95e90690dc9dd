package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tahleel-ai/scout/internal/metrics"
	"github.com/tahleel-ai/scout/internal/news"
)

// NewsSource is the aggregation stage of the pipeline.
type NewsSource interface {
	FetchTeamNews(ctx context.Context, team string, limit int) []news.Item
}

// InsightSource is the AI enrichment stage. An error means the stage
// degrades; it never fails the request.
type InsightSource interface {
	ExtractInsights(ctx context.Context, team string, items []news.Item) ([]string, error)
}

// Composer assembles the final tactical report. Compose is the single
// outward-facing guarantee of the pipeline: it always returns a
// complete, well-formed report.
type Composer struct {
	news      NewsSource
	insights  InsightSource
	newsLimit int
	log       *slog.Logger
}

func NewComposer(newsSource NewsSource, insightSource InsightSource, newsLimit int, log *slog.Logger) *Composer {
	if newsLimit <= 0 {
		newsLimit = 10
	}
	return &Composer{
		news:      newsSource,
		insights:  insightSource,
		newsLimit: newsLimit,
		log:       log,
	}
}

// Compose runs news aggregation and AI enrichment for one opponent.
// Each stage is attempted exactly once; any failure, including a panic
// in a stage, degrades to the baseline report instead of propagating.
func (c *Composer) Compose(ctx context.Context, team string) (rep TacticalReport) {
	started := time.Now()

	rep = baselineReport(team)
	rep.AnalysisID = uuid.NewString()
	rep.GeneratedAt = time.Now().UTC()
	rep.RecentNews = substituteInsights(team)
	rep.AIEnhanced = false
	rep.DataSource = DataSourceBaseline

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("report composition panicked, serving baseline", "team", team, "panic", r)
			metrics.Global.SetError("compose panic")
		}
		metrics.Global.IncrementAnalysesCompleted()
		metrics.Global.RecordProcessingTime(time.Since(started))
		metrics.Global.SetLastRun()
	}()

	items := c.news.FetchTeamNews(ctx, team, c.newsLimit)
	rep.NewsCount = len(items)

	if c.insights == nil {
		metrics.Global.IncrementBaselineFallbacks()
		return rep
	}

	insights, err := c.insights.ExtractInsights(ctx, team, items)
	if err != nil {
		c.log.Warn("ai enrichment unavailable, serving baseline insights", "team", team, "err", err)
		metrics.Global.IncrementBaselineFallbacks()
		return rep
	}

	rep.RecentNews = insights
	rep.AIEnhanced = true
	rep.DataSource = DataSourceAIEnriched
	metrics.Global.IncrementAIEnriched()

	c.log.Info("analysis completed", "team", team, "news_count", rep.NewsCount, "ai_enhanced", rep.AIEnhanced)
	return rep
}
