package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanhimself/blog/articles"
	"github.com/amanhimself/blog/config"
	"github.com/amanhimself/blog/logger"
	"github.com/amanhimself/blog/middleware"
	"github.com/amanhimself/blog/notifier"
	"github.com/amanhimself/blog/search"
)

func testPost(title, date, slug, tags string) []byte {
	return []byte(`---
title: ` + title + `
date: '` + date + `'
slug: ` + slug + `
thumbnail: thumbnails/post.svg
template: post
tags: [` + tags + `]
---

Some markdown body for ` + title + `.
`)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	reg, err := articles.Load(fstest.MapFS{
		"redux.md": {Data: testPost(
			"How to integrate Redux into a React Native app",
			"2024-03-18",
			"how-to-integrate-redux-into-react-native-app",
			"react-native, redux",
		)},
		"navigation.md": {Data: testPost(
			"Getting started with React Navigation",
			"2023-11-06",
			"getting-started-with-react-navigation",
			"react-native, expo",
		)},
	})
	require.NoError(t, err)

	idx, err := search.Build(reg.All())
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	cfg := config.New()
	log := logger.New(cfg)

	handler := Handler{
		config:        cfg,
		formDecoder:   form.NewDecoder(),
		formValidator: validator.New(validator.WithRequiredStructEnabled()),
		registry:      reg,
		searchIndex:   idx,
		slacknotifier: notifier.NewSlack("", log),
		db:            NewSwappableDB(),
		log:           log,
	}

	return newRouter(&handler)
}

func doRequest(t *testing.T, router http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetSiteConfig(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/site", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))

	assert.Equal(t, "Aman Mittal", payload["siteTitle"])
	for _, key := range []string{
		"siteTitle", "siteUrl", "description", "username", "shortname",
		"github", "twitter", "medium", "devto", "hashnode", "instagram",
		"goodreads", "mailAddress", "newsletter", "kofi", "twitterBotRepo",
		"hundredDaysOfCodeBot", "subscribersCount",
	} {
		assert.NotEmpty(t, payload[key], "key %s", key)
	}
}

func TestGetSavedTweets(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/site/saved-tweets", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Len(t, payload, 2)
}

func TestGetAllArticlesOmitsBodies(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/articles", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var payload []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	require.Len(t, payload, 2)

	assert.Equal(t, "how-to-integrate-redux-into-react-native-app", payload[0]["slug"])
	for _, item := range payload {
		assert.NotContains(t, item, "body")
	}
}

func TestGetArticleBySlug(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/articles/getting-started-with-react-navigation", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "Getting started with React Navigation", payload["title"])
	assert.Contains(t, payload["body"], "markdown body")
}

func TestGetArticleBySlugNotFound(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/articles/nope", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "article not found")
}

func TestSearchRequiresQuery(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/search", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSearchReturnsTitledHits(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/search?q=redux", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var hits []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hits))
	require.NotEmpty(t, hits)
	assert.Equal(t, "how-to-integrate-redux-into-react-native-app", hits[0]["slug"])
	assert.Equal(t, "How to integrate Redux into a React Native app", hits[0]["title"])
}

func TestCreateCommentValidation(t *testing.T) {
	router := newTestRouter(t)

	body := url.Values{"body": {""}}.Encode()
	rr := doRequest(t, router, http.MethodPost,
		"/api/public/v0/articles/getting-started-with-react-navigation/comments", body)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateCommentBeforeDatabaseIsReady(t *testing.T) {
	router := newTestRouter(t)

	body := url.Values{"body": {"Great walkthrough, thanks!"}}.Encode()
	rr := doRequest(t, router, http.MethodPost,
		"/api/public/v0/articles/getting-started-with-react-navigation/comments", body)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "database not initialized")
}

func TestGetTags(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/public/v0/tags", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var tags []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tags))
	assert.Len(t, tags, 3)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, rr.Header().Get(middleware.TraceIDHeader))
}
