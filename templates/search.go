package templates

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
)

const (
	fieldText     = "text"
	fieldCategory = "category"
	fieldModel    = "model"
	defaultLimit  = 10
)

// Hit is one search result.
type Hit struct {
	Category string
	Model    string
	Score    float64
}

// Index is an in-memory full-text index over the template library.
type Index struct {
	log    *slog.Logger
	writer *bluge.Writer
	reader *bluge.Reader
}

// NewIndex indexes every template of the library. Category and model are searchable as text too.
func NewIndex(log *slog.Logger, library *Library) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	batch := bluge.NewBatch()
	for _, t := range library.All() {
		doc := bluge.NewDocument(string(t.Category) + "/" + t.Model).
			AddField(bluge.NewTextField(fieldText, t.Text)).
			AddField(bluge.NewTextField(fieldCategory, strings.ReplaceAll(string(t.Category), "_", " "))).
			AddField(bluge.NewTextField(fieldModel, t.Model))
		batch.Update(doc.ID(), doc)
	}
	if err = writer.Batch(batch); err != nil {
		_ = writer.Close()
		return nil, err
	}
	reader, err := writer.Reader()
	if err != nil {
		_ = writer.Close()
		return nil, err
	}
	log.Debug("Template index built", "templates", len(library.All()))
	return &Index{log: log, writer: writer, reader: reader}, nil
}

// Search matches the query against text, category and model, best score first.
func (i *Index) Search(query string, limit int) ([]Hit, error) {
	if strings.TrimSpace(query) == "" {
		return []Hit{}, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	q := bluge.NewBooleanQuery().AddShould(
		bluge.NewMatchQuery(query).SetField(fieldText),
		bluge.NewMatchQuery(query).SetField(fieldCategory),
		bluge.NewMatchQuery(query).SetField(fieldModel),
	)
	request := bluge.NewTopNSearch(limit, q).SortBy([]string{"-_score", "_id"})
	iterator, err := i.reader.Search(context.Background(), request)
	if err != nil {
		return nil, fmt.Errorf("template search failed: %w", err)
	}

	hits := []Hit{}
	match, err := iterator.Next()
	for err == nil && match != nil {
		hit, visitErr := toHit(match)
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	i.log.Debug("Template search", "query", query, "hits", len(hits))
	return hits, nil
}

func toHit(match *search.DocumentMatch) (Hit, error) {
	hit := Hit{Score: match.Score}
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		if field == "_id" {
			hit.Category, hit.Model, _ = strings.Cut(string(value), "/")
		}
		return true
	})
	return hit, err
}

func (i *Index) Close() error {
	if err := i.reader.Close(); err != nil {
		return err
	}
	return i.writer.Close()
}
