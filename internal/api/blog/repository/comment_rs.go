package blogRepository

import (
	"BlogSpace/internal/api/blog"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID             sql.NullString `db:"id"`
	BlogID         sql.NullString `db:"blog_id"`
	UserID         sql.NullString `db:"user_id"`
	Content        sql.NullString `db:"content"`
	CreatedAt      sql.NullTime   `db:"created_at"`
	AuthorUsername sql.NullString `db:"author_username"`
	AuthorFullName sql.NullString `db:"author_full_name"`
	AuthorAvatar   sql.NullString `db:"author_avatar"`
}

func (r *commentRepository) Insert(c context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"blog_id":    comment.BlogID,
		"user_id":    comment.UserID,
		"content":    comment.Content,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryInsertComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Insert comment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Insert comment execution err")
		return err
	}

	return nil
}

func (r *commentRepository) GetByID(c context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"id": id}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get comment named query preparation err")
		return entity.Comment{}, err
	}
	query = r.q.Rebind(query)

	var row CommentDB
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Comment{}, blog.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Get comment query execution err")
		return entity.Comment{}, err
	}

	return makeComment(row), nil
}

func (r *commentRepository) ListByBlog(c context.Context, blogID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"blog_id": blogID}

	query, args, err := sqlx.Named(queryListCommentsByBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List comments named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []CommentDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List comments query execution err")
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, makeComment(row))
	}

	return comments, nil
}

func (r *commentRepository) Delete(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"id": id}

	query, args, err := sqlx.Named(queryDeleteComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete comment named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete comment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blog.ErrCommentNotFound
	}

	return nil
}

func makeComment(row CommentDB) entity.Comment {
	return entity.Comment{
		ID:        row.ID.String,
		BlogID:    row.BlogID.String,
		UserID:    row.UserID.String,
		Content:   row.Content.String,
		CreatedAt: row.CreatedAt.Time,
		Author: entity.User{
			ID:       row.UserID.String,
			Username: row.AuthorUsername.String,
			FullName: row.AuthorFullName.String,
			Avatar:   row.AuthorAvatar.String,
		},
	}
}
