package main

import (
	"bytes"
	"log/slog"
	"prompt-lab/domain"
	"prompt-lab/repositories"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	defer db.Close()
	repository := repositories.NewUsageRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	now := time.Now().UTC()

	// Given two stored events
	req.NoError(repository.Record(domain.UsageEvent{ModelID: "sora", Category: "video", TaskPreview: "도시 야경", Success: true, At: now}))
	req.NoError(repository.Record(domain.UsageEvent{ModelID: "suno", Category: "music", TaskPreview: "재즈", At: now.Add(time.Second)}))

	// When the store is inspected
	var out bytes.Buffer
	req.NoError(inspect(db, &out, 0))

	// Then every event and the totals are printed
	req.Contains(out.String(), "도시 야경")
	req.Contains(out.String(), "재즈")
	req.Contains(out.String(), "2 events (sora:1 suno:1)")
}

func TestInspect_Empty(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	defer db.Close()

	var out bytes.Buffer
	req.NoError(inspect(db, &out, 5))

	req.Contains(out.String(), "0 events")
}
