package blogHandler

import (
	"BlogSpace/internal/api/blog"
	blogService "BlogSpace/internal/api/blog/service"
	"BlogSpace/internal/entity"
	"BlogSpace/internal/middleware"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlogService struct{}

func (stubBlogService) Blog() blogService.BlogDomain       { return stubBlogDomain{} }
func (stubBlogService) Like() blogService.LikeDomain       { return stubLikeDomain{} }
func (stubBlogService) Comment() blogService.CommentDomain { return stubCommentDomain{} }

type stubBlogDomain struct{}

func (stubBlogDomain) Create(context.Context, string, blog.CreateBlogRequest) (blog.BlogResponse, error) {
	return blog.BlogResponse{}, nil
}

func (stubBlogDomain) GetByID(context.Context, string, string) (blog.BlogResponse, error) {
	return blog.BlogResponse{}, blog.ErrBlogNotFound
}

func (stubBlogDomain) List(_ context.Context, _ string, q blog.ListQuery) (blog.BlogListResponse, error) {
	return blog.BlogListResponse{
		Items:      []blog.BlogResponse{},
		Total:      0,
		Page:       q.Page,
		TotalPages: 0,
	}, nil
}

func (stubBlogDomain) Update(context.Context, string, string, blog.UpdateBlogRequest) (blog.BlogResponse, error) {
	return blog.BlogResponse{}, blog.ErrBlogNotFound
}

func (stubBlogDomain) Delete(context.Context, string, string) error {
	return blog.ErrBlogNotFound
}

type stubLikeDomain struct{}

func (stubLikeDomain) Toggle(context.Context, string, string) (blog.LikeResponse, error) {
	return blog.LikeResponse{}, blog.ErrBlogNotFound
}

type stubCommentDomain struct{}

func (stubCommentDomain) Create(context.Context, string, string, blog.CreateCommentRequest) (blog.CommentResponse, error) {
	return blog.CommentResponse{}, blog.ErrBlogNotFound
}

func (stubCommentDomain) Delete(context.Context, string, string, string) error {
	return blog.ErrBlogNotFound
}

type stubRedis struct{}

func (stubRedis) SetOTP(context.Context, string, string, time.Duration) error { return nil }
func (stubRedis) GetOTP(context.Context, string) (string, error)              { return "", nil }
func (stubRedis) DeleteOTP(context.Context, string) error                     { return nil }
func (stubRedis) RevokeToken(context.Context, string, time.Duration) error    { return nil }
func (stubRedis) IsTokenRevoked(context.Context, string) (bool, error)        { return false, nil }

type stubUsers struct{}

func (stubUsers) GetUserByID(context.Context, string) (entity.User, error) {
	return entity.User{}, fiber.ErrNotFound
}

// newRouteTestApp mirrors the production engine config, strict routing
// included, so registered paths are exactly what clients can reach.
func newRouteTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		StrictRouting: true,
		CaseSensitive: true,
	})

	mw := middleware.New(logger, stubRedis{}, stubUsers{})
	h := New(logger, stubBlogService{}, validator.New(), mw)
	h.Start(app.Group("/api/v1"))

	return app
}

func TestBlogCollectionRoutesWithoutTrailingSlash(t *testing.T) {
	app := newRouteTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/blogs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Items      []json.RawMessage `json:"items"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Items)
	assert.Equal(t, 1, body.Page)

	// The create route lives on the same path; without a token it is
	// rejected by the auth middleware, not unrouted.
	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/blogs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestBlogItemRouteReachable(t *testing.T) {
	app := newRouteTestApp()

	// Routed through to the service, which answers not-found for the
	// unknown id; a routing failure would be a bare 404 without the body.
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/blogs/some-id", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Blog not found", body.Error)
}
