package repositories

import (
	"log/slog"
	"maps"
	"prompt-lab/domain"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryUsageRepository keeps counters and a bounded list of recent events in memory.
type MemoryUsageRepository struct {
	mu       sync.Mutex
	log      *slog.Logger
	capacity int
	total    int
	models   map[string]int
	category map[string]int
	recent   []domain.UsageEvent
}

// NewMemoryUsageRepository keeps at most capacity recent events. A capacity <= 0 keeps them all.
func NewMemoryUsageRepository(log *slog.Logger, capacity int) *MemoryUsageRepository {
	return &MemoryUsageRepository{
		log:      log,
		capacity: capacity,
		models:   make(map[string]int),
		category: make(map[string]int),
	}
}

func (m *MemoryUsageRepository) Record(event domain.UsageEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	m.models[event.ModelID]++
	m.category[event.Category]++
	m.recent = append(m.recent, event)
	if m.capacity > 0 && len(m.recent) > m.capacity {
		m.recent = slices.Clone(m.recent[len(m.recent)-m.capacity:])
	}
	m.log.Debug("Usage recorded", "model_id", event.ModelID, "total", m.total)
	return nil
}

func (m *MemoryUsageRepository) Recent(limit int) ([]domain.UsageEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return tail(m.recent, limit), nil
}

func (m *MemoryUsageRepository) Stats(recentLimit int) (domain.UsageStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return domain.UsageStats{
		TotalRequests: m.total,
		ModelUsage:    maps.Clone(m.models),
		CategoryUsage: maps.Clone(m.category),
		Recent:        tail(m.recent, recentLimit),
	}, nil
}

// tail copies the last limit events.
func tail(events []domain.UsageEvent, limit int) []domain.UsageEvent {
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return append(make([]domain.UsageEvent, 0, len(events)), events...)
}
