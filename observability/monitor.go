package observability

import (
	"cmp"
	"log/slog"
	"os"
	"prompt-lab/domain"
	"runtime"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

const topModelsLimit = 5

// UsageSource is the part of the optimizer the monitor reads.
type UsageSource interface {
	UsageStats() (domain.UsageStats, error)
}

type ModelCount struct {
	ModelID string `json:"model_id"`
	Count   int    `json:"count"`
}

// Snapshot merges process metrics with usage counters.
type Snapshot struct {
	PID        int32             `json:"pid"`
	RSSBytes   uint64            `json:"rss_bytes"`
	CPUPercent float64           `json:"cpu_percent"`
	AllocMemMb uint64            `json:"alloc_mem_mb"`
	NumGC      uint32            `json:"num_gc"`
	Usage      domain.UsageStats `json:"usage"`
	TopModels  []ModelCount      `json:"top_models"`
	At         time.Time         `json:"at"`
}

type Monitor struct {
	log   *slog.Logger
	usage UsageSource
	proc  *process.Process
}

func NewMonitor(log *slog.Logger, usage UsageSource) (*Monitor, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Monitor{log: log, usage: usage, proc: p}, nil
}

// Snapshot samples the current process. A failed process probe leaves its fields at zero.
func (m *Monitor) Snapshot() (Snapshot, error) {
	s := Snapshot{PID: m.proc.Pid, At: time.Now().UTC()}
	if memInfo, err := m.proc.MemoryInfo(); err == nil {
		s.RSSBytes = memInfo.RSS
	} else {
		m.log.Warn("Failed to read process memory", "err", err)
	}
	if cpu, err := m.proc.CPUPercent(); err == nil {
		s.CPUPercent = cpu
	} else {
		m.log.Warn("Failed to read process cpu", "err", err)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	s.AllocMemMb = mem.Alloc / 1024 / 1024
	s.NumGC = mem.NumGC

	usage, err := m.usage.UsageStats()
	if err != nil {
		return s, err
	}
	s.Usage = usage
	s.TopModels = TopModels(usage.ModelUsage, topModelsLimit)
	m.log.Debug("Snapshot taken", "rss", s.RSSBytes, "cpu", s.CPUPercent, "requests", usage.TotalRequests)
	return s, nil
}

// TopModels ranks models by usage, ties broken by id.
func TopModels(usage map[string]int, limit int) []ModelCount {
	counts := lo.MapToSlice(usage, func(id string, n int) ModelCount { return ModelCount{ModelID: id, Count: n} })
	slices.SortFunc(counts, func(a, b ModelCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.ModelID, b.ModelID)
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
