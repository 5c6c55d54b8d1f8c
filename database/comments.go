package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Comment struct {
	ID          uint64    `json:"id,string"`
	ArticleSlug string    `json:"articleSlug"`
	Username    string    `json:"username"`
	AvatarURL   string    `json:"avatarUrl"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

func (q *Queries) CreateComment(ctx context.Context, c Comment) (Comment, error) {
	row := q.db.QueryRowContext(
		ctx,
		`INSERT INTO comments (id, article_slug, username, avatar_url, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		int64(c.ID), c.ArticleSlug, c.Username, c.AvatarURL, c.Body,
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		return Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return c, nil
}

func (q *Queries) GetCommentsByArticleSlug(ctx context.Context, slug string) ([]Comment, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT id, article_slug, username, avatar_url, body, created_at
		 FROM comments
		 WHERE article_slug = $1
		 ORDER BY created_at DESC`,
		slug,
	)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		var id int64
		if err := rows.Scan(&id, &c.ArticleSlug, &c.Username, &c.AvatarURL, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.ID = uint64(id)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}
