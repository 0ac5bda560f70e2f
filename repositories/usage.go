//go:generate go run go.uber.org/mock/mockgen -source=usage.go -destination=../mocks/mock_usage_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"prompt-lab/domain"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const usagePrefix = "usage:"

type IUsageRepository interface {
	Record(event domain.UsageEvent) error
	// Recent returns at most limit events, oldest first. A limit <= 0 returns everything.
	Recent(limit int) ([]domain.UsageEvent, error)
	Stats(recentLimit int) (domain.UsageStats, error)
}

type UsageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUsageRepository(db *badger.DB, log *slog.Logger) UsageRepository {
	return UsageRepository{db: db, log: log}
}

// Record persists an event under "usage:{timestamp_padded}:{uuid}".
// The padded timestamp keeps keys in chronological order and the uuid breaks ties.
func (u UsageRepository) Record(event domain.UsageEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	key := fmt.Sprintf("%s%019d:%s", usagePrefix, event.At.UnixNano(), event.ID)
	value, err := fromUsageEvent(event)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Recent walks the keys backwards from the newest one.
func (u UsageRepository) Recent(limit int) ([]domain.UsageEvent, error) {
	var events []domain.UsageEvent
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(usagePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(events) == limit {
				break
			}
			event, err := u.decode(it.Item())
			if err != nil {
				return err
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(events)
	return events, nil
}

// Stats aggregates every stored event in one prefix scan.
func (u UsageRepository) Stats(recentLimit int) (domain.UsageStats, error) {
	stats := domain.NewUsageStats()
	all, err := u.Recent(0)
	if err != nil {
		return stats, err
	}
	for _, e := range all {
		stats.TotalRequests++
		stats.ModelUsage[e.ModelID]++
		stats.CategoryUsage[e.Category]++
	}
	if recentLimit > 0 && len(all) > recentLimit {
		all = all[len(all)-recentLimit:]
	}
	stats.Recent = append(stats.Recent, all...)
	u.log.Debug("Usage stats aggregated", "total", stats.TotalRequests)
	return stats, nil
}

func (u UsageRepository) decode(item *badger.Item) (domain.UsageEvent, error) {
	var event domain.UsageEvent
	err := item.Value(func(value []byte) error {
		var s structpb.Struct
		if err := proto.Unmarshal(value, &s); err != nil {
			return err
		}
		decoded, err := toUsageEvent(&s)
		event = decoded
		return err
	})
	return event, err
}

func fromUsageEvent(event domain.UsageEvent) (*structpb.Struct, error) {
	at := timestamppb.New(event.At)
	return structpb.NewStruct(map[string]any{
		"id":           event.ID.String(),
		"model_id":     event.ModelID,
		"category":     event.Category,
		"task_preview": event.TaskPreview,
		"success":      event.Success,
		"at_seconds":   float64(at.GetSeconds()),
		"at_nanos":     float64(at.GetNanos()),
	})
}

func toUsageEvent(s *structpb.Struct) (domain.UsageEvent, error) {
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.UsageEvent{}, err
	}
	at := &timestamppb.Timestamp{
		Seconds: int64(fields["at_seconds"].GetNumberValue()),
		Nanos:   int32(fields["at_nanos"].GetNumberValue()),
	}
	return domain.UsageEvent{
		ID:          id,
		ModelID:     fields["model_id"].GetStringValue(),
		Category:    fields["category"].GetStringValue(),
		TaskPreview: fields["task_preview"].GetStringValue(),
		Success:     fields["success"].GetBoolValue(),
		At:          at.AsTime().In(time.UTC),
	}, nil
}
