package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountersAndStats(t *testing.T) {
	m := &Metrics{IsHealthy: true}

	m.IncrementAnalysesCompleted()
	m.IncrementAnalysesCompleted()
	m.IncrementAIEnriched()
	m.IncrementBaselineFallbacks()
	m.IncrementDuplicatesFiltered()
	m.IncrementProviderErrors()

	stats := m.GetStats()
	require.Equal(t, int64(2), stats["analyses_completed"])
	require.Equal(t, int64(1), stats["ai_enriched"])
	require.Equal(t, int64(1), stats["baseline_fallbacks"])
	require.Equal(t, int64(1), stats["duplicates_filtered"])
	require.Equal(t, int64(1), stats["provider_errors"])
	require.Equal(t, true, stats["is_healthy"])
}

func TestProcessingTimeAverage(t *testing.T) {
	m := &Metrics{}

	m.RecordProcessingTime(100 * time.Millisecond)
	m.RecordProcessingTime(300 * time.Millisecond)

	require.Equal(t, 300*time.Millisecond, m.LastProcessingTime)
	require.Equal(t, 200*time.Millisecond, m.AverageProcessingTime)
}

func TestErrorTogglesHealth(t *testing.T) {
	m := &Metrics{IsHealthy: true}

	m.SetError("provider timeout")
	require.False(t, m.IsHealthy)
	require.Equal(t, "provider timeout", m.LastError)

	m.SetLastRun()
	require.True(t, m.IsHealthy)
	require.False(t, m.LastRunTime.IsZero())
}
