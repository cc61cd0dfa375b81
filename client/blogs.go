package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListOptions mirrors the listing query string. Zero values mean server
// defaults; the server clamps out-of-range page and limit instead of failing.
type ListOptions struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Sort     string
	MyPosts  bool
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.MyPosts {
		q.Set("myPosts", "true")
	}
	return q
}

type GalleryItemInput struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Placement string `json:"placement"`
}

type CreateBlogInput struct {
	Title     string             `json:"title"`
	Content   string             `json:"content"`
	Excerpt   string             `json:"excerpt"`
	Category  string             `json:"category"`
	Tags      []string           `json:"tags,omitempty"`
	Status    string             `json:"status"`
	MediaType string             `json:"mediaType,omitempty"`
	MediaURL  string             `json:"mediaUrl,omitempty"`
	Gallery   []GalleryItemInput `json:"gallery,omitempty"`
}

// UpdateBlogInput sends only non-nil fields, matching the server's partial
// update semantics.
type UpdateBlogInput struct {
	Title     *string             `json:"title,omitempty"`
	Content   *string             `json:"content,omitempty"`
	Excerpt   *string             `json:"excerpt,omitempty"`
	Category  *string             `json:"category,omitempty"`
	Tags      *[]string           `json:"tags,omitempty"`
	Status    *string             `json:"status,omitempty"`
	MediaType *string             `json:"mediaType,omitempty"`
	MediaURL  *string             `json:"mediaUrl,omitempty"`
	Gallery   *[]GalleryItemInput `json:"gallery,omitempty"`
}

func (c *Client) ListBlogs(ctx context.Context, opts ListOptions) (BlogList, error) {
	var list BlogList
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs", opts.query(), nil, &list); err != nil {
		return BlogList{}, err
	}
	return list, nil
}

func (c *Client) GetBlog(ctx context.Context, id string) (Blog, error) {
	var b Blog
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs/"+id, nil, nil, &b); err != nil {
		return Blog{}, err
	}
	return b, nil
}

func (c *Client) CreateBlog(ctx context.Context, in CreateBlogInput) (Blog, error) {
	var b Blog
	if err := c.do(ctx, http.MethodPost, "/api/v1/blogs", nil, in, &b); err != nil {
		return Blog{}, err
	}
	return b, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, in UpdateBlogInput) (Blog, error) {
	var b Blog
	if err := c.do(ctx, http.MethodPut, "/api/v1/blogs/"+id, nil, in, &b); err != nil {
		return Blog{}, err
	}
	return b, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/blogs/"+id, nil, nil, nil)
}

func (c *Client) ToggleLike(ctx context.Context, blogID string) (LikeResult, error) {
	var res LikeResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/blogs/"+blogID+"/like", nil, nil, &res); err != nil {
		return LikeResult{}, err
	}
	return res, nil
}

func (c *Client) CreateComment(ctx context.Context, blogID, content string) (Comment, error) {
	var comment Comment
	body := map[string]string{"content": content}
	if err := c.do(ctx, http.MethodPost, "/api/v1/blogs/"+blogID+"/comments", nil, body, &comment); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, blogID, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/blogs/"+blogID+"/comments/"+commentID, nil, nil, nil)
}
