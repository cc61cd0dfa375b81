package blogRepository

import (
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// Replace rewrites a blog's gallery wholesale; it is always called inside the
// same transaction as the blog row change.
func (r *galleryRepository) Replace(c context.Context, blogID string, items []entity.MediaItem) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteGalleryByBlog, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete gallery named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete gallery execution err")
		return err
	}

	for _, item := range items {
		argsKV := map[string]interface{}{
			"id":        item.ID,
			"blog_id":   blogID,
			"type":      item.Type,
			"url":       item.URL,
			"placement": item.Placement,
			"position":  item.Position,
		}

		query, args, err := sqlx.Named(queryInsertGalleryItem, argsKV)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Insert gallery item named query preparation err")
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(c, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Insert gallery item execution err")
			return err
		}
	}

	return nil
}

func (r *galleryRepository) ListByBlog(c context.Context, blogID string) ([]entity.MediaItem, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{"blog_id": blogID}

	query, args, err := sqlx.Named(queryListGalleryByBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List gallery named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var items []entity.MediaItem
	if err := r.q.SelectContext(c, &items, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List gallery query execution err")
		return nil, err
	}

	return items, nil
}
