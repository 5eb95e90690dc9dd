package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tahleel-ai/scout/internal/news"
)

// noNewsMarker keeps the completion valid when aggregation came back
// empty; the model is still asked for general tactical insights.
const noNewsMarker = "No recent news available"

const promptTemplate = `You are an expert football tactical analyst. Based on the recent news below, extract the key tactical insights about the opponent team "%s".

Recent News Context:
%s

Respond with ONLY a JSON array of 3-4 short tactical insight strings, nothing else. Example:
["Key midfielder doubtful after training injury", "Back line struggles against pace on the left"]

Focus on injuries, suspensions, formation changes, and tactical adjustments that impact the next match.`

// CompletionFunc issues one prompt and returns the raw model text.
type CompletionFunc func(ctx context.Context, prompt string) (string, error)

// Extractor turns aggregated news into a bounded list of tactical
// insights via the AI completion service.
type Extractor struct {
	complete CompletionFunc
	budget   *Budget
	log      *slog.Logger
}

// NewExtractor builds an extractor around a completion function. A nil
// complete means the AI service is not configured; every extraction then
// fails with ExtractionError and the pipeline degrades to baseline.
func NewExtractor(complete CompletionFunc, budget *Budget, log *slog.Logger) *Extractor {
	return &Extractor{complete: complete, budget: budget, log: log}
}

// ExtractInsights returns two to four short tactical insight strings or an
// *ExtractionError. Network, auth, and rate-limit failures all land in
// the same error type with the cause preserved.
func (e *Extractor) ExtractInsights(ctx context.Context, team string, items []news.Item) ([]string, error) {
	if e.complete == nil {
		return nil, extractionErr("ai service not configured", nil)
	}
	if e.budget != nil && !e.budget.Allow() {
		return nil, extractionErr("daily ai request budget exhausted", nil)
	}

	prompt := fmt.Sprintf(promptTemplate, team, renderNewsBlock(items))

	raw, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, extractionErr("completion request failed", err)
	}

	insights, err := parseInsights(raw, team)
	if err != nil {
		e.log.Debug("insight parsing exhausted all strategies", "team", team, "response_len", len(raw))
		return nil, err
	}
	return insights, nil
}

func renderNewsBlock(items []news.Item) string {
	if len(items) == 0 {
		return noNewsMarker
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(item.Headline)
		b.WriteString(": ")
		b.WriteString(item.Content)
	}
	return b.String()
}
