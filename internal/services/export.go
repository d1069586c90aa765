package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/studyspot/dataport/internal/platform/logger"
)

// Filter is one conjunctive clause of a filtered export, passed straight to
// the document store's query API ("capacity", ">=", 20).
type Filter struct {
	Field string
	Op    string
	Value any
}

// ExportService dumps the legacy document store to local JSON files, one
// pretty-printed array per collection, with each document's id merged into
// its field set.
type ExportService interface {
	ExportAll(ctx context.Context) error
	ExportCollection(ctx context.Context, name string, filters []Filter) error
}

type exportService struct {
	log                *logger.Logger
	client             *firestore.Client
	dataDir            string
	withSubcollections bool
}

func NewExportService(log *logger.Logger, client *firestore.Client, dataDir string, withSubcollections bool) ExportService {
	return &exportService{
		log:                log.With("service", "ExportService"),
		client:             client,
		dataDir:            dataDir,
		withSubcollections: withSubcollections,
	}
}

// ExportAll enumerates every top-level collection and writes
// <dataDir>/<collection>.json for each. Any failure aborts the export.
func (es *exportService) ExportAll(ctx context.Context) error {
	start := time.Now()
	exported := 0

	it := es.client.Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("list collections: %w", err)
		}
		if _, err := es.exportQuery(ctx, col.ID, col.Query); err != nil {
			return err
		}
		exported++
	}

	es.log.Info("Export finished",
		"collections", exported,
		"dir", es.dataDir,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// ExportCollection dumps a single collection, optionally narrowed by
// conjunctive filters.
func (es *exportService) ExportCollection(ctx context.Context, name string, filters []Filter) error {
	q := applyFilters(es.client.Collection(name).Query, filters)
	_, err := es.exportQuery(ctx, name, q)
	return err
}

func (es *exportService) exportQuery(ctx context.Context, name string, q firestore.Query) (int, error) {
	docs := q.Documents(ctx)
	defer docs.Stop()

	out := make([]map[string]any, 0)
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("fetch collection %s: %w", name, err)
		}
		flat, err := es.flattenDocument(ctx, doc)
		if err != nil {
			return 0, err
		}
		out = append(out, flat)
	}

	path, err := writeCollectionJSON(es.dataDir, name, out)
	if err != nil {
		return 0, err
	}
	es.log.Info("Collection exported", "collection", name, "documents", len(out), "file", path)
	return len(out), nil
}

// flattenDocument merges the document id into its field set and, when
// enabled, embeds one level of subcollections under __collections__.
func (es *exportService) flattenDocument(ctx context.Context, doc *firestore.DocumentSnapshot) (map[string]any, error) {
	fields := flattenFields(doc.Data(), doc.Ref.ID)
	if !es.withSubcollections {
		return fields, nil
	}

	subs := make(map[string][]map[string]any)
	it := doc.Ref.Collections(ctx)
	for {
		sub, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list subcollections of %s: %w", doc.Ref.Path, err)
		}
		rows, err := es.fetchSubcollection(ctx, sub)
		if err != nil {
			return nil, err
		}
		subs[sub.ID] = rows
	}
	fields["__collections__"] = subs
	return fields, nil
}

func (es *exportService) fetchSubcollection(ctx context.Context, col *firestore.CollectionRef) ([]map[string]any, error) {
	docs := col.Documents(ctx)
	defer docs.Stop()

	rows := make([]map[string]any, 0)
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch subcollection %s: %w", col.Path, err)
		}
		rows = append(rows, flattenFields(doc.Data(), doc.Ref.ID))
	}
	return rows, nil
}

func applyFilters(q firestore.Query, filters []Filter) firestore.Query {
	for _, f := range filters {
		q = q.Where(f.Field, f.Op, f.Value)
	}
	return q
}

// flattenFields merges a document id into its field map. The id wins over
// any same-named stored field.
func flattenFields(fields map[string]any, id string) map[string]any {
	if fields == nil {
		fields = make(map[string]any)
	}
	fields["id"] = id
	return fields
}

// writeCollectionJSON creates the export directory if needed and fully
// overwrites <dir>/<collection>.json. An empty document set still writes a
// file holding an empty array.
func writeCollectionJSON(dir, collection string, docs []map[string]any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	path := filepath.Join(dir, collection+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
