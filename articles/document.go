package articles

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// Document is one markdown article: its front matter plus the raw body.
// The body stays markdown; rendering belongs to the site generator, not here.
type Document struct {
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Slug      string    `json:"slug"`
	Thumbnail string    `json:"thumbnail"`
	Template  string    `json:"template"`
	Tags      []string  `json:"tags"`

	Body string `json:"body,omitempty"`
}

type matter struct {
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date"`
	Slug      string   `yaml:"slug"`
	Thumbnail string   `yaml:"thumbnail"`
	Template  string   `yaml:"template"`
	Tags      []string `yaml:"tags"`
}

const dateLayout = "2006-01-02"

// ParseDocument reads one markdown file with a front matter header. Every
// front matter key is required; a missing key fails with the key named so a
// broken article is easy to find.
func ParseDocument(name string, raw []byte) (*Document, error) {
	var fm matter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("%s: parse front matter: %w", name, err)
	}

	for key, value := range map[string]string{
		"title":     fm.Title,
		"date":      fm.Date,
		"slug":      fm.Slug,
		"thumbnail": fm.Thumbnail,
		"template":  fm.Template,
	} {
		if value == "" {
			return nil, fmt.Errorf("%s: missing front matter key %q", name, key)
		}
	}
	if len(fm.Tags) == 0 {
		return nil, fmt.Errorf("%s: missing front matter key %q", name, "tags")
	}

	date, err := time.Parse(dateLayout, fm.Date)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, fm.Date); err != nil {
			return nil, fmt.Errorf("%s: front matter date %q is not an ISO date", name, fm.Date)
		}
	}

	return &Document{
		Title:     fm.Title,
		Date:      date,
		Slug:      fm.Slug,
		Thumbnail: fm.Thumbnail,
		Template:  fm.Template,
		Tags:      fm.Tags,
		Body:      string(body),
	}, nil
}
