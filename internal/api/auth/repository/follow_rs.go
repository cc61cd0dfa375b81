package authRepository

import (
	contextPkg "BlogSpace/pkg/context"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Follow is idempotent: following an already-followed user is a no-op via the
// primary-key conflict clause.
func (r *followRepository) Follow(c context.Context, followerID, followeeID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"follower_id": followerID,
		"followee_id": followeeID,
		"created_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryFollow, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Follow named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Follow execution err")
		return err
	}

	return nil
}

func (r *followRepository) Unfollow(c context.Context, followerID, followeeID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"follower_id": followerID,
		"followee_id": followeeID,
	}

	query, args, err := sqlx.Named(queryUnfollow, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Unfollow named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Unfollow execution err")
		return err
	}

	return nil
}
