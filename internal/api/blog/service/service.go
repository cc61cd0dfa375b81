package blogService

import (
	"BlogSpace/internal/api/blog"
	blogRepository "BlogSpace/internal/api/blog/repository"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type BlogService interface {
	Blog() BlogDomain
	Like() LikeDomain
	Comment() CommentDomain
}

type BlogDomain interface {
	Create(c context.Context, authorID string, req blog.CreateBlogRequest) (blog.BlogResponse, error)
	GetByID(c context.Context, id string, viewerID string) (blog.BlogResponse, error)
	List(c context.Context, viewerID string, q blog.ListQuery) (blog.BlogListResponse, error)
	Update(c context.Context, id string, viewerID string, req blog.UpdateBlogRequest) (blog.BlogResponse, error)
	Delete(c context.Context, id string, viewerID string) error
}

type LikeDomain interface {
	Toggle(c context.Context, blogID, userID string) (blog.LikeResponse, error)
}

type CommentDomain interface {
	Create(c context.Context, blogID, userID string, req blog.CreateCommentRequest) (blog.CommentResponse, error)
	Delete(c context.Context, blogID, commentID, userID string) error
}

type blogService struct {
	log            *logrus.Logger
	blogRepository blogRepository.Repository
	s3Client       s3.ItfS3
	utils          utils.IUtils

	blogDomain    BlogDomain
	likeDomain    LikeDomain
	commentDomain CommentDomain
}

func New(
	log *logrus.Logger,
	repo blogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) BlogService {
	svc := &blogService{
		log:            log,
		blogRepository: repo,
		s3Client:       s3Client,
		utils:          utils,
	}

	svc.blogDomain = &blogDomainImpl{svc}
	svc.likeDomain = &likeDomainImpl{svc}
	svc.commentDomain = &commentDomainImpl{svc}

	return svc
}

func (s *blogService) Blog() BlogDomain {
	return s.blogDomain
}

func (s *blogService) Like() LikeDomain {
	return s.likeDomain
}

func (s *blogService) Comment() CommentDomain {
	return s.commentDomain
}

type blogDomainImpl struct {
	*blogService
}

type likeDomainImpl struct {
	*blogService
}

type commentDomainImpl struct {
	*blogService
}
