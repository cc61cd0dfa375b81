package blogRepository

import (
	"BlogSpace/internal/api/blog"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID             sql.NullString `db:"id"`
	Title          sql.NullString `db:"title"`
	Content        sql.NullString `db:"content"`
	Excerpt        sql.NullString `db:"excerpt"`
	Category       sql.NullString `db:"category"`
	Tags           pq.StringArray `db:"tags"`
	Status         sql.NullString `db:"status"`
	MediaType      sql.NullString `db:"media_type"`
	MediaURL       sql.NullString `db:"media_url"`
	AuthorID       sql.NullString `db:"author_id"`
	Views          int            `db:"views"`
	ReadTime       int            `db:"read_time"`
	PublishedAt    sql.NullTime   `db:"published_at"`
	CreatedAt      sql.NullTime   `db:"created_at"`
	UpdatedAt      sql.NullTime   `db:"updated_at"`
	AuthorUsername sql.NullString `db:"author_username"`
	AuthorFullName sql.NullString `db:"author_full_name"`
	AuthorAvatar   sql.NullString `db:"author_avatar"`
	LikeCount      int            `db:"like_count"`
	IsLiked        bool           `db:"is_liked"`
}

func (r *blogRepositoryClient) Insert(c context.Context, b entity.Blog) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           b.ID,
		"title":        b.Title,
		"content":      b.Content,
		"excerpt":      b.Excerpt,
		"category":     b.Category,
		"tags":         pq.StringArray(b.Tags),
		"status":       b.Status,
		"media_type":   b.MediaType,
		"media_url":    b.MediaURL,
		"author_id":    b.AuthorID,
		"views":        b.Views,
		"read_time":    b.ReadTime,
		"published_at": b.PublishedAt,
		"created_at":   b.CreatedAt,
		"updated_at":   b.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryInsertBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Insert blog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Insert blog execution err")
		return err
	}

	return nil
}

func (r *blogRepositoryClient) GetByID(c context.Context, id string, viewerID string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":        id,
		"viewer_id": viewerID,
	}

	query, args, err := sqlx.Named(querySelectBlogsBase+"\nWHERE b.id = :id", argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get blog named query preparation err")
		return entity.Blog{}, err
	}
	query = r.q.Rebind(query)

	var row BlogDB
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Blog{}, blog.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get blog query execution err")
		return entity.Blog{}, err
	}

	return makeBlog(row), nil
}

func (r *blogRepositoryClient) List(c context.Context, filter ListFilter) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(c)

	conditions, argsKV := listConditions(filter)
	argsKV["viewer_id"] = filter.ViewerID
	argsKV["limit"] = filter.Limit
	argsKV["offset"] = filter.Offset

	namedQuery := querySelectBlogsBase
	if len(conditions) > 0 {
		namedQuery += "\nWHERE " + strings.Join(conditions, "\n  AND ")
	}
	namedQuery += "\nORDER BY " + orderClause(filter.Sort)
	namedQuery += "\nLIMIT :limit OFFSET :offset"

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List blogs named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []BlogDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List blogs query execution err")
		return nil, err
	}

	blogs := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		blogs = append(blogs, makeBlog(row))
	}

	return blogs, nil
}

func (r *blogRepositoryClient) Count(c context.Context, filter ListFilter) (int, error) {
	requestID := contextPkg.GetRequestID(c)

	conditions, argsKV := listConditions(filter)

	namedQuery := queryCountBlogsBase
	if len(conditions) > 0 {
		namedQuery += "\nWHERE " + strings.Join(conditions, "\n  AND ")
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blogs named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var total int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blogs query execution err")
		return 0, err
	}

	return total, nil
}

func (r *blogRepositoryClient) Update(c context.Context, b entity.Blog) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           b.ID,
		"title":        b.Title,
		"content":      b.Content,
		"excerpt":      b.Excerpt,
		"category":     b.Category,
		"tags":         pq.StringArray(b.Tags),
		"status":       b.Status,
		"media_type":   b.MediaType,
		"media_url":    b.MediaURL,
		"read_time":    b.ReadTime,
		"published_at": b.PublishedAt,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update blog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update blog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blog.ErrBlogNotFound
	}

	return nil
}

func (r *blogRepositoryClient) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"id": id}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete blog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete blog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blog.ErrBlogNotFound
	}

	return nil
}

func (r *blogRepositoryClient) IncrementViews(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"id": id}

	query, args, err := sqlx.Named(queryIncrementViews, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Increment views named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Increment views execution err")
		return err
	}

	return nil
}

func listConditions(filter ListFilter) ([]string, map[string]interface{}) {
	conditions := make([]string, 0, 4)
	argsKV := map[string]interface{}{}

	if filter.PublishedOnly {
		conditions = append(conditions, "b.status = :status")
		argsKV["status"] = entity.BlogStatusPublished
	}

	if filter.AuthorID != "" {
		conditions = append(conditions, "b.author_id = :author_filter")
		argsKV["author_filter"] = filter.AuthorID
	}

	if filter.Category != "" && filter.Category != "all" {
		conditions = append(conditions, "b.category = :category")
		argsKV["category"] = filter.Category
	}

	if filter.Search != "" {
		conditions = append(conditions,
			"(b.title ILIKE :search OR b.excerpt ILIKE :search OR b.content ILIKE :search OR array_to_string(b.tags, ' ') ILIKE :search)")
		argsKV["search"] = "%" + filter.Search + "%"
	}

	return conditions, argsKV
}

// orderClause whitelists sort keys; anything unrecognized falls back to
// newest-first so user input never reaches the ORDER BY verbatim.
func orderClause(sort string) string {
	switch sort {
	case "oldest":
		return "COALESCE(b.published_at, b.created_at) ASC"
	case "popular", "trending":
		return "b.views DESC, COALESCE(b.published_at, b.created_at) DESC"
	default:
		return "COALESCE(b.published_at, b.created_at) DESC"
	}
}

func makeBlog(row BlogDB) entity.Blog {
	var publishedAt *time.Time
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		publishedAt = &t
	}

	return entity.Blog{
		ID:          row.ID.String,
		Title:       row.Title.String,
		Content:     row.Content.String,
		Excerpt:     row.Excerpt.String,
		Category:    row.Category.String,
		Tags:        []string(row.Tags),
		Status:      row.Status.String,
		MediaType:   row.MediaType.String,
		MediaURL:    row.MediaURL.String,
		AuthorID:    row.AuthorID.String,
		Views:       row.Views,
		ReadTime:    row.ReadTime,
		PublishedAt: publishedAt,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
		Author: entity.User{
			ID:       row.AuthorID.String,
			Username: row.AuthorUsername.String,
			FullName: row.AuthorFullName.String,
			Avatar:   row.AuthorAvatar.String,
		},
		IsLiked:   row.IsLiked,
		LikeCount: row.LikeCount,
	}
}
