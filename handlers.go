package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/godruoyi/go-snowflake"

	"github.com/amanhimself/blog/articles"
	"github.com/amanhimself/blog/config"
	"github.com/amanhimself/blog/database"
	"github.com/amanhimself/blog/status"
	"github.com/amanhimself/blog/utils"
)

// GetSiteConfig serves the whole site configuration object. There is no
// per-key lookup; consumers take the full mapping.
func (hnd *Handler) GetSiteConfig(w http.ResponseWriter, r *http.Request) error {
	utils.RenderJSON(w, http.StatusOK, config.Site())
	return nil
}

func (hnd *Handler) GetSavedTweets(w http.ResponseWriter, r *http.Request) error {
	utils.RenderJSON(w, http.StatusOK, config.SavedTweets)
	return nil
}

// GetAllArticles lists the front matter of every published document, newest
// first. Bodies are left out; they come one at a time from GetArticleBySlug.
func (hnd *Handler) GetAllArticles(w http.ResponseWriter, r *http.Request) error {
	docs := hnd.registry.All()

	out := make([]articles.Document, 0, len(docs))
	for _, doc := range docs {
		meta := *doc
		meta.Body = ""
		out = append(out, meta)
	}

	utils.RenderJSON(w, http.StatusOK, out)
	return nil
}

func (hnd *Handler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")

	doc := hnd.registry.BySlug(slug)
	if doc == nil {
		return status.ErrorNotFound(status.ErrArticleNotFound)
	}

	utils.RenderJSON(w, http.StatusOK, doc)
	return nil
}

func (hnd *Handler) GetAllTags(w http.ResponseWriter, r *http.Request) error {
	utils.RenderJSON(w, http.StatusOK, hnd.registry.Tags())
	return nil
}

func (hnd *Handler) GetArticlesByTag(w http.ResponseWriter, r *http.Request) error {
	tag := chi.URLParam(r, "tag")

	docs := hnd.registry.ByTag(tag)
	out := make([]articles.Document, 0, len(docs))
	for _, doc := range docs {
		meta := *doc
		meta.Body = ""
		out = append(out, meta)
	}

	utils.RenderJSON(w, http.StatusOK, out)
	return nil
}

type searchHit struct {
	Slug      string              `json:"slug"`
	Title     string              `json:"title"`
	Score     float64             `json:"score"`
	Fragments map[string][]string `json:"fragments,omitempty"`
}

func (hnd *Handler) SearchArticles(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query().Get("q")
	if query == "" {
		return status.WarningStatusBadRequest(status.WarnEmptySearchQuery)
	}

	results, err := hnd.searchIndex.Search(r.Context(), query, 10)
	if err != nil {
		hnd.log.Error("search %q failed: %s", query, err.Error())
		return status.ErrorInternalServerError(status.ErrSearch)
	}

	hits := make([]searchHit, 0, len(results))
	for _, res := range results {
		doc := hnd.registry.BySlug(res.Slug)
		if doc == nil {
			continue
		}
		hits = append(hits, searchHit{
			Slug:      res.Slug,
			Title:     doc.Title,
			Score:     res.Score,
			Fragments: res.Fragments,
		})
	}

	utils.RenderJSON(w, http.StatusOK, hits)
	return nil
}

type CreateCommentForm struct {
	Body string `form:"body" validate:"required,max=2000"`
}

func (hnd *Handler) CreateComment(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	if hnd.registry.BySlug(slug) == nil {
		return status.ErrorNotFound(status.ErrArticleNotFound)
	}

	if err := r.ParseForm(); err != nil {
		return status.WarningStatusBadRequest(status.ErrParsingForm)
	}

	var input CreateCommentForm
	if err := hnd.formDecoder.Decode(&input, r.PostForm); err != nil {
		return status.WarningStatusBadRequest(status.ErrDecodingForm)
	}

	if err := hnd.formValidator.Struct(input); err != nil {
		return status.WarningStatusBadRequest(status.ErrFailedtoValidateRequest)
	}

	db, err := hnd.db.DB()
	if err != nil {
		return status.ErrorInternalServerError(err)
	}

	username := usernameFromRequest(w, r)
	comment := database.Comment{
		ID:          snowflake.ID(),
		ArticleSlug: slug,
		Username:    username,
		AvatarURL:   getAvatarURL(username),
		Body:        input.Body,
	}

	comment, err = database.New(db).CreateComment(r.Context(), comment)
	if err != nil {
		hnd.log.Error("failed to create comment on %s: %s", slug, err.Error())
		return status.ErrorInternalServerError(status.ErrCreateArticleComment)
	}

	if hnd.config.Slack.CommentsChannelID != "" {
		msg := fmt.Sprintf("New comment by %s on %q: %s", username, slug, input.Body)
		_ = hnd.slacknotifier.SendMsg(hnd.config.Slack.CommentsChannelID, msg)
	}

	utils.RenderJSON(w, http.StatusCreated, comment)
	return nil
}

func (hnd *Handler) GetAllCommentsByArticleSlug(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")
	if hnd.registry.BySlug(slug) == nil {
		return status.ErrorNotFound(status.ErrArticleNotFound)
	}

	db, err := hnd.db.DB()
	if err != nil {
		return status.ErrorInternalServerError(err)
	}

	comments, err := database.New(db).GetCommentsByArticleSlug(r.Context(), slug)
	if err != nil {
		hnd.log.Error("failed to list comments on %s: %s", slug, err.Error())
		return status.ErrorInternalServerError(status.ErrGetAllArticleComments)
	}

	if comments == nil {
		comments = []database.Comment{}
	}

	utils.RenderJSON(w, http.StatusOK, comments)
	return nil
}
