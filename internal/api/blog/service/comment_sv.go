package blogService

import (
	"BlogSpace/internal/api/blog"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentDomainImpl) Create(c context.Context, blogID, userID string, req blog.CreateCommentRequest) (blog.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepository.NewClient(false)
	if err != nil {
		return blog.CommentResponse{}, err
	}

	b, err := repo.Blogs.GetByID(c, blogID, userID)
	if err != nil {
		return blog.CommentResponse{}, err
	}
	if b.Status != entity.BlogStatusPublished {
		return blog.CommentResponse{}, blog.ErrBlogNotFound
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return blog.CommentResponse{}, err
	}

	comment := entity.Comment{
		ID:        id,
		BlogID:    blogID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.Insert(c, comment); err != nil {
		return blog.CommentResponse{}, err
	}

	created, err := repo.Comments.GetByID(c, id)
	if err != nil {
		return blog.CommentResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"comment_id": id,
	}).Info("Comment created")

	return s.makeCommentResponse(created), nil
}

func (s *commentDomainImpl) Delete(c context.Context, blogID, commentID, userID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepository.NewClient(false)
	if err != nil {
		return err
	}

	comment, err := repo.Comments.GetByID(c, commentID)
	if err != nil {
		return err
	}

	// A comment addressed through the wrong post is treated as absent.
	if comment.BlogID != blogID {
		return blog.ErrCommentNotFound
	}

	if comment.UserID != userID {
		return blog.ErrCommentNotOwned
	}

	if err := repo.Comments.Delete(c, commentID); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"comment_id": commentID,
	}).Info("Comment deleted")

	return nil
}
