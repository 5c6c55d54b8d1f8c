package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/amanhimself/blog/articles"
)

// Index is a full-text index over the article registry. It lives in memory
// and is rebuilt from the registry on startup; after Build it is safe for
// concurrent readers.
type Index struct {
	index bleve.Index
}

type indexedDocument struct {
	Title string
	Body  string
	Tags  []string
}

func buildIndexMapping() mapping.IndexMapping {
	bodyFieldMapping := bleve.NewTextFieldMapping()

	// English analyzer on titles for better stemming, plus a boost so a
	// title hit outranks a body hit.
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "en"

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("Title", titleFieldMapping)
	docMapping.AddFieldMappingsAt("Body", bodyFieldMapping)
	docMapping.AddFieldMappingsAt("Tags", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Build indexes every published document, keyed by slug.
func Build(docs []*articles.Document) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	for _, doc := range docs {
		err := batch.Index(doc.Slug, indexedDocument{
			Title: doc.Title,
			Body:  doc.Body,
			Tags:  doc.Tags,
		})
		if err != nil {
			return nil, fmt.Errorf("index %s: %w", doc.Slug, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return &Index{index: idx}, nil
}

type Result struct {
	Slug      string              `json:"slug"`
	Score     float64             `json:"score"`
	Fragments map[string][]string `json:"fragments,omitempty"`
}

// Search runs a match query over titles, bodies and tags and returns at most
// limit results, best first, with highlighted fragments.
func (i *Index) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Highlight = bleve.NewHighlight()

	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	out := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		out = append(out, Result{
			Slug:      hit.ID,
			Score:     hit.Score,
			Fragments: hit.Fragments,
		})
	}
	return out, nil
}

func (i *Index) Close() error {
	return i.index.Close()
}
