package blogService

import (
	"BlogSpace/internal/api/blog"
	blogRepository "BlogSpace/internal/api/blog/repository"
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

func (s *blogDomainImpl) Create(c context.Context, authorID string, req blog.CreateBlogRequest) (blog.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate blog ID")
		return blog.BlogResponse{}, err
	}

	now := time.Now()
	newBlog := entity.Blog{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		Tags:      req.Tags,
		Status:    req.Status,
		MediaType: req.MediaType,
		MediaURL:  req.MediaURL,
		AuthorID:  authorID,
		Views:     0,
		ReadTime:  s.utils.ReadTime(req.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Status == entity.BlogStatusPublished {
		newBlog.PublishedAt = &now
	}

	gallery, err := s.makeGalleryItems(id, req.Gallery)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	repo, err := s.blogRepository.NewClient(true)
	if err != nil {
		return blog.BlogResponse{}, err
	}
	defer repo.Rollback()

	if err := repo.Blogs.Insert(c, newBlog); err != nil {
		return blog.BlogResponse{}, err
	}

	if len(gallery) > 0 {
		if err := repo.Gallery.Replace(c, id, gallery); err != nil {
			return blog.BlogResponse{}, err
		}
	}

	if err := repo.Commit(); err != nil {
		return blog.BlogResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
		"status":     req.Status,
	}).Info("Blog created")

	return s.reload(c, id, authorID, true)
}

func (s *blogDomainImpl) GetByID(c context.Context, id string, viewerID string) (blog.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepository.NewClient(false)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	b, err := repo.Blogs.GetByID(c, id, viewerID)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	if b.Status == entity.BlogStatusDraft && b.AuthorID != viewerID {
		return blog.BlogResponse{}, blog.ErrBlogNotFound
	}

	// Every non-owner read of a published post counts, with no deduplication.
	if b.Status == entity.BlogStatusPublished && b.AuthorID != viewerID {
		if err := repo.Blogs.IncrementViews(c, id); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
				"error":      err.Error(),
			}).Warn("Failed to increment view count")
		} else {
			b.Views++
		}
	}

	b.Gallery, err = repo.Gallery.ListByBlog(c, id)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	comments, err := repo.Comments.ListByBlog(c, id)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	res := s.makeBlogResponse(b, true)
	res.Comments = make([]blog.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		res.Comments = append(res.Comments, s.makeCommentResponse(comment))
	}

	return res, nil
}

func (s *blogDomainImpl) List(c context.Context, viewerID string, q blog.ListQuery) (blog.BlogListResponse, error) {
	if q.Category != "" && q.Category != "all" && !entity.IsValidCategory(q.Category) {
		return blog.BlogListResponse{}, blog.ErrInvalidCategory
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	limit := q.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := blogRepository.ListFilter{
		ViewerID:      viewerID,
		PublishedOnly: true,
		Category:      q.Category,
		Search:        q.Search,
		Sort:          q.Sort,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}

	// myPosts scopes the listing to the caller's own posts, drafts included.
	// The flag is meaningless without an authenticated caller.
	if q.MyPosts && viewerID != "" {
		filter.AuthorID = viewerID
		filter.PublishedOnly = false
	}

	repo, err := s.blogRepository.NewClient(false)
	if err != nil {
		return blog.BlogListResponse{}, err
	}

	blogs, err := repo.Blogs.List(c, filter)
	if err != nil {
		return blog.BlogListResponse{}, err
	}

	total, err := repo.Blogs.Count(c, filter)
	if err != nil {
		return blog.BlogListResponse{}, err
	}

	items := make([]blog.BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, s.makeBlogResponse(b, false))
	}

	totalPages := (total + limit - 1) / limit

	return blog.BlogListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *blogDomainImpl) Update(c context.Context, id string, viewerID string, req blog.UpdateBlogRequest) (blog.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepository.NewClient(true)
	if err != nil {
		return blog.BlogResponse{}, err
	}
	defer repo.Rollback()

	b, err := repo.Blogs.GetByID(c, id, viewerID)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	if err := s.authorize(b, viewerID); err != nil {
		return blog.BlogResponse{}, err
	}

	previousMediaURL := b.MediaURL

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Content != nil {
		b.Content = *req.Content
		b.ReadTime = s.utils.ReadTime(b.Content)
	}
	if req.Excerpt != nil {
		b.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.Tags != nil {
		b.Tags = *req.Tags
	}
	if req.MediaType != nil {
		b.MediaType = *req.MediaType
	}
	if req.MediaURL != nil {
		b.MediaURL = *req.MediaURL
	}
	if req.Status != nil && *req.Status != b.Status {
		now := time.Now()
		switch *req.Status {
		case entity.BlogStatusPublished:
			b.PublishedAt = &now
		case entity.BlogStatusDraft:
			b.PublishedAt = nil
		}
		b.Status = *req.Status
	}

	if err := repo.Blogs.Update(c, b); err != nil {
		return blog.BlogResponse{}, err
	}

	if req.Gallery != nil {
		gallery, err := s.makeGalleryItems(id, *req.Gallery)
		if err != nil {
			return blog.BlogResponse{}, err
		}
		if err := repo.Gallery.Replace(c, id, gallery); err != nil {
			return blog.BlogResponse{}, err
		}
	}

	if err := repo.Commit(); err != nil {
		return blog.BlogResponse{}, err
	}

	if req.MediaURL != nil && previousMediaURL != "" && previousMediaURL != b.MediaURL {
		s.deleteMediaAsync(requestID, previousMediaURL)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog updated")

	return s.reload(c, id, viewerID, true)
}

func (s *blogDomainImpl) Delete(c context.Context, id string, viewerID string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.blogRepository.NewClient(false)
	if err != nil {
		return err
	}

	b, err := repo.Blogs.GetByID(c, id, viewerID)
	if err != nil {
		return err
	}

	if err := s.authorize(b, viewerID); err != nil {
		return err
	}

	gallery, err := repo.Gallery.ListByBlog(c, id)
	if err != nil {
		return err
	}

	if err := repo.Blogs.Delete(c, id); err != nil {
		return err
	}

	if b.MediaURL != "" {
		s.deleteMediaAsync(requestID, b.MediaURL)
	}
	for _, item := range gallery {
		s.deleteMediaAsync(requestID, item.URL)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog deleted")

	return nil
}

// authorize enforces ownership. A stranger addressing a draft gets the same
// not-found as a missing post so drafts stay concealed.
func (s *blogService) authorize(b entity.Blog, viewerID string) error {
	if b.AuthorID == viewerID {
		return nil
	}
	if b.Status == entity.BlogStatusDraft {
		return blog.ErrBlogNotFound
	}
	return blog.ErrBlogNotOwned
}

func (s *blogService) makeGalleryItems(blogID string, reqs []blog.GalleryItemRequest) ([]entity.MediaItem, error) {
	items := make([]entity.MediaItem, 0, len(reqs))
	for i, item := range reqs {
		switch item.Type {
		case entity.MediaTypeImage, entity.MediaTypeVideo:
		default:
			return nil, blog.ErrInvalidMedia
		}
		switch item.Placement {
		case entity.MediaPlacementHeader, entity.MediaPlacementInline, entity.MediaPlacementFooter:
		default:
			return nil, blog.ErrInvalidMedia
		}

		itemID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return nil, err
		}
		items = append(items, entity.MediaItem{
			ID:        itemID,
			BlogID:    blogID,
			Type:      item.Type,
			URL:       item.URL,
			Placement: item.Placement,
			Position:  i,
		})
	}
	return items, nil
}

// Media removal never fails the request that triggered it.
func (s *blogService) deleteMediaAsync(requestID, fileURL string) {
	go func() {
		if err := s.s3Client.DeleteByURL(fileURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"url":        fileURL,
				"error":      err.Error(),
			}).Warn("Failed to delete replaced media")
		}
	}()
}

func (s *blogService) reload(c context.Context, id, viewerID string, includeGallery bool) (blog.BlogResponse, error) {
	repo, err := s.blogRepository.NewClient(false)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	b, err := repo.Blogs.GetByID(c, id, viewerID)
	if err != nil {
		return blog.BlogResponse{}, err
	}

	if includeGallery {
		b.Gallery, err = repo.Gallery.ListByBlog(c, id)
		if err != nil {
			return blog.BlogResponse{}, err
		}
	}

	return s.makeBlogResponse(b, true), nil
}
