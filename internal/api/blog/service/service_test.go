package blogService

import (
	"BlogSpace/internal/api/blog"
	blogRepository "BlogSpace/internal/api/blog/repository"
	"BlogSpace/internal/entity"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/utils"
	"context"
	"io"
	"mime/multipart"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// fakeStore is a memory-backed stand-in for the Postgres repository. The
// repository.Client struct-of-interfaces makes it cheap to assemble.
type fakeStore struct {
	mu       sync.Mutex
	blogs    map[string]entity.Blog
	likes    map[string]map[string]bool
	comments map[string]entity.Comment
	gallery  map[string][]entity.MediaItem
	users    map[string]entity.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		blogs:    map[string]entity.Blog{},
		likes:    map[string]map[string]bool{},
		comments: map[string]entity.Comment{},
		gallery:  map[string][]entity.MediaItem{},
		users:    map[string]entity.User{},
	}
}

func (f *fakeStore) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    &fakeBlogs{f},
		Likes:    &fakeLikes{f},
		Comments: &fakeComments{f},
		Gallery:  &fakeGallery{f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBlogs struct{ s *fakeStore }

func (r *fakeBlogs) annotate(b entity.Blog, viewerID string) entity.Blog {
	b.LikeCount = len(r.s.likes[b.ID])
	b.IsLiked = viewerID != "" && r.s.likes[b.ID][viewerID]
	if author, ok := r.s.users[b.AuthorID]; ok {
		b.Author = author
	} else {
		b.Author = entity.User{ID: b.AuthorID, Username: "author"}
	}
	return b
}

func (r *fakeBlogs) Insert(_ context.Context, b entity.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.blogs[b.ID] = b
	return nil
}

func (r *fakeBlogs) GetByID(_ context.Context, id, viewerID string) (entity.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.blogs[id]
	if !ok {
		return entity.Blog{}, blog.ErrBlogNotFound
	}
	return r.annotate(b, viewerID), nil
}

func (r *fakeBlogs) matches(b entity.Blog, filter blogRepository.ListFilter) bool {
	if filter.PublishedOnly && b.Status != entity.BlogStatusPublished {
		return false
	}
	if filter.AuthorID != "" && b.AuthorID != filter.AuthorID {
		return false
	}
	if filter.Category != "" && filter.Category != "all" && b.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		haystack := strings.ToLower(strings.Join(append([]string{b.Title, b.Excerpt, b.Content}, b.Tags...), " "))
		if !strings.Contains(haystack, strings.ToLower(filter.Search)) {
			return false
		}
	}
	return true
}

func (r *fakeBlogs) List(_ context.Context, filter blogRepository.ListFilter) ([]entity.Blog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []entity.Blog
	for _, b := range r.s.blogs {
		if r.matches(b, filter) {
			matched = append(matched, r.annotate(b, filter.ViewerID))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *fakeBlogs) Count(_ context.Context, filter blogRepository.ListFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, b := range r.s.blogs {
		if r.matches(b, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBlogs) Update(_ context.Context, b entity.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogs[b.ID]; !ok {
		return blog.ErrBlogNotFound
	}
	stored := r.s.blogs[b.ID]
	stored.Title = b.Title
	stored.Content = b.Content
	stored.Excerpt = b.Excerpt
	stored.Category = b.Category
	stored.Tags = b.Tags
	stored.Status = b.Status
	stored.MediaType = b.MediaType
	stored.MediaURL = b.MediaURL
	stored.ReadTime = b.ReadTime
	stored.PublishedAt = b.PublishedAt
	r.s.blogs[b.ID] = stored
	return nil
}

func (r *fakeBlogs) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.blogs[id]; !ok {
		return blog.ErrBlogNotFound
	}
	delete(r.s.blogs, id)
	return nil
}

func (r *fakeBlogs) IncrementViews(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.blogs[id]
	if !ok {
		return blog.ErrBlogNotFound
	}
	b.Views++
	r.s.blogs[id] = b
	return nil
}

type fakeLikes struct{ s *fakeStore }

func (r *fakeLikes) Insert(_ context.Context, blogID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.likes[blogID] == nil {
		r.s.likes[blogID] = map[string]bool{}
	}
	r.s.likes[blogID][userID] = true
	return nil
}

func (r *fakeLikes) Delete(_ context.Context, blogID, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.likes[blogID][userID] {
		delete(r.s.likes[blogID], userID)
		return true, nil
	}
	return false, nil
}

func (r *fakeLikes) Count(_ context.Context, blogID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.likes[blogID]), nil
}

type fakeComments struct{ s *fakeStore }

func (r *fakeComments) Insert(_ context.Context, comment entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.comments[comment.ID] = comment
	return nil
}

func (r *fakeComments) GetByID(_ context.Context, id string) (entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment, ok := r.s.comments[id]
	if !ok {
		return entity.Comment{}, blog.ErrCommentNotFound
	}
	comment.Author = entity.User{ID: comment.UserID, Username: "commenter"}
	return comment, nil
}

func (r *fakeComments) ListByBlog(_ context.Context, blogID string) ([]entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.Comment
	for _, comment := range r.s.comments {
		if comment.BlogID == blogID {
			comment.Author = entity.User{ID: comment.UserID, Username: "commenter"}
			out = append(out, comment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeComments) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return blog.ErrCommentNotFound
	}
	delete(r.s.comments, id)
	return nil
}

type fakeGallery struct{ s *fakeStore }

func (r *fakeGallery) Replace(_ context.Context, blogID string, items []entity.MediaItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.gallery[blogID] = items
	return nil
}

func (r *fakeGallery) ListByBlog(_ context.Context, blogID string) ([]entity.MediaItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.gallery[blogID], nil
}

// stubS3 records deletions, which is all the blog service asks of storage.
type stubS3 struct {
	mu      sync.Mutex
	deleted []string
}

func (s *stubS3) UploadFile(*multipart.FileHeader, string) (s3.UploadResult, error) {
	return s3.UploadResult{URL: "https://bucket/test", Key: "test"}, nil
}

func (s *stubS3) PresignUrl(fileURL string) (string, error) { return fileURL, nil }

func (s *stubS3) DeleteFile(key string) error { return nil }

func (s *stubS3) DeleteByURL(fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func newTestService() (BlogService, *fakeStore, *stubS3) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := newFakeStore()
	storage := &stubS3{}
	svc := New(logger, store, storage, utils.New())
	return svc, store, storage
}
