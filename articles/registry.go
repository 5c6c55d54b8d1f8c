package articles

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Registry holds every parsed document. It is built once by Load and never
// mutated afterwards, so concurrent readers need no locking.
type Registry struct {
	docs   []*Document
	bySlug map[string]*Document
}

// Load parses every *.md file under fsys. It fails on the first document with
// broken front matter, on a duplicate slug, and on an empty tree: a blog with
// no posts is a broken deploy, not a valid state.
func Load(fsys fs.FS) (*Registry, error) {
	reg := &Registry{
		bySlug: make(map[string]*Document),
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".md" {
			return nil
		}

		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		doc, err := ParseDocument(path, raw)
		if err != nil {
			return err
		}

		if prev, ok := reg.bySlug[doc.Slug]; ok {
			return fmt.Errorf("%s: slug %q already used by %q", path, doc.Slug, prev.Title)
		}

		reg.bySlug[doc.Slug] = doc
		reg.docs = append(reg.docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(reg.docs) == 0 {
		return nil, fmt.Errorf("no markdown documents found")
	}

	sort.Slice(reg.docs, func(i, j int) bool {
		return reg.docs[i].Date.After(reg.docs[j].Date)
	})

	return reg, nil
}

// All returns the published documents, newest first. Documents dated in the
// future are held back; they are reachable through BySlug for previewing.
func (r *Registry) All() []*Document {
	now := time.Now()

	out := make([]*Document, 0, len(r.docs))
	for _, doc := range r.docs {
		if doc.Date.After(now) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

func (r *Registry) BySlug(slug string) *Document {
	return r.bySlug[slug]
}

func (r *Registry) ByTag(tag string) []*Document {
	var out []*Document
	for _, doc := range r.All() {
		for _, t := range doc.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, doc)
				break
			}
		}
	}
	return out
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Tags lists every tag used by a published document, sorted by name.
func (r *Registry) Tags() []TagCount {
	counts := make(map[string]int)
	for _, doc := range r.All() {
		for _, t := range doc.Tags {
			counts[strings.ToLower(t)]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Tag < out[j].Tag
	})
	return out
}
