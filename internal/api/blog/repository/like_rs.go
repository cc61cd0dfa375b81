package blogRepository

import (
	contextPkg "BlogSpace/pkg/context"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *likeRepository) Insert(c context.Context, blogID, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"blog_id":    blogID,
		"user_id":    userID,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryInsertLike, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Insert like named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Insert like execution err")
		return err
	}

	return nil
}

// Delete reports whether a like row was actually removed, which is how the
// toggle decides between the unlike and like branches.
func (r *likeRepository) Delete(c context.Context, blogID, userID string) (bool, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteLike, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete like named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete like execution err")
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *likeRepository) Count(c context.Context, blogID string) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"blog_id": blogID}

	query, args, err := sqlx.Named(queryCountLikes, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count likes named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var count int
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count likes query execution err")
		return 0, err
	}

	return count, nil
}
