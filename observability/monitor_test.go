package observability

import (
	"fmt"
	"log/slog"
	"prompt-lab/domain"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type staticUsage struct {
	stats domain.UsageStats
	err   error
}

func (s staticUsage) UsageStats() (domain.UsageStats, error) {
	return s.stats, s.err
}

func TestMonitor_Snapshot(t *testing.T) {
	req := require.New(t)
	stats := domain.NewUsageStats()
	stats.TotalRequests = 3
	stats.ModelUsage = map[string]int{"gpt-4o": 2, "suno": 1}
	monitor, err := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug), staticUsage{stats: stats})
	req.NoError(err)

	snapshot, err := monitor.Snapshot()

	req.NoError(err)
	req.Positive(snapshot.PID)
	req.Positive(snapshot.RSSBytes)
	req.Equal(3, snapshot.Usage.TotalRequests)
	req.Equal([]ModelCount{{"gpt-4o", 2}, {"suno", 1}}, snapshot.TopModels)
}

func TestMonitor_Snapshot_Usage_Error(t *testing.T) {
	req := require.New(t)
	monitor, err := NewMonitor(logs.GetLoggerFromLevel(slog.LevelDebug), staticUsage{err: fmt.Errorf("store closed")})
	req.NoError(err)

	_, err = monitor.Snapshot()

	req.Error(err)
}

func TestTopModels(t *testing.T) {
	req := require.New(t)

	usage := map[string]int{"a": 1, "b": 5, "c": 5, "d": 2, "e": 3, "f": 4}

	req.Equal([]ModelCount{{"b", 5}, {"c", 5}, {"f", 4}, {"e", 3}, {"d", 2}}, TopModels(usage, 5))
	req.Empty(TopModels(nil, 5))
}
