package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"prompt-lab/repositories"
	"slices"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	limit := flag.Int("limit", 0, "Most recent events to print, 0 prints all")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if err = inspect(db, os.Stdout, *limit); err != nil {
		log.Fatal(err)
	}
}

// inspect prints the stored usage events, oldest first, followed by per-model totals.
func inspect(db *badger.DB, w io.Writer, limit int) error {
	repository := repositories.NewUsageRepository(db, logs.GetLoggerFromLevel(slog.LevelWarn))
	events, err := repository.Recent(limit)
	if err != nil {
		return err
	}
	stats, err := repository.Stats(0)
	if err != nil {
		return err
	}

	table := newTable(w)
	table.SetHeader([]string{"ID", "Timestamp", "Model", "Category", "Success", "Task"})
	for _, e := range events {
		// First 8 characters of the id are enough to tell events apart
		table.Append([]string{
			e.ID.String()[:8],
			e.At.Format("2006-01-02 15:04:05"),
			e.ModelID,
			e.Category,
			strconv.FormatBool(e.Success),
			e.TaskPreview,
		})
	}
	table.Render()

	fmt.Fprintf(w, "\n%d events", stats.TotalRequests)
	models := make([]string, 0, len(stats.ModelUsage))
	for id, n := range stats.ModelUsage {
		models = append(models, fmt.Sprintf("%s:%d", id, n))
	}
	if len(models) > 0 {
		slices.Sort(models)
		fmt.Fprintf(w, " (%s)", strings.Join(models, " "))
	}
	fmt.Fprintln(w)
	return nil
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A read-write open truncates the log, then the read-only open is retried
		repair, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repair.Close()
		return badger.Open(opts)
	}
	return db, err
}
