package blogService

import (
	"BlogSpace/internal/api/blog"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Toggle flips the caller's like on a published post inside one transaction:
// a removed row means the caller had liked before, otherwise a row is added.
// Two toggles always restore the original state.
func (s *likeDomainImpl) Toggle(c context.Context, blogID, userID string) (blog.LikeResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepository.NewClient(true)
	if err != nil {
		return blog.LikeResponse{}, err
	}
	defer repo.Rollback()

	b, err := repo.Blogs.GetByID(c, blogID, userID)
	if err != nil {
		return blog.LikeResponse{}, err
	}
	if b.Status != entity.BlogStatusPublished {
		return blog.LikeResponse{}, blog.ErrBlogNotFound
	}

	removed, err := repo.Likes.Delete(c, blogID, userID)
	if err != nil {
		return blog.LikeResponse{}, err
	}

	if !removed {
		if err := repo.Likes.Insert(c, blogID, userID); err != nil {
			return blog.LikeResponse{}, err
		}
	}

	count, err := repo.Likes.Count(c, blogID)
	if err != nil {
		return blog.LikeResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		return blog.LikeResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"liked":      !removed,
	}).Debug("Like toggled")

	return blog.LikeResponse{
		IsLiked:   !removed,
		LikeCount: count,
	}, nil
}
