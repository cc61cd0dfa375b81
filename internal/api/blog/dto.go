package blog

import "time"

type GalleryItemRequest struct {
	Type      string `json:"type" validate:"required,oneof=image video"`
	URL       string `json:"url" validate:"required,url"`
	Placement string `json:"placement" validate:"required,oneof=header inline footer"`
}

type CreateBlogRequest struct {
	Title     string               `json:"title" validate:"required,min=5,max=200"`
	Content   string               `json:"content" validate:"required,min=10"`
	Excerpt   string               `json:"excerpt" validate:"required,min=10,max=300"`
	Category  string               `json:"category" validate:"required,oneof=technology lifestyle travel food business health education other"`
	Tags      []string             `json:"tags" validate:"omitempty,max=10,dive,min=1,max=20"`
	Status    string               `json:"status" validate:"required,oneof=draft published"`
	MediaType string               `json:"mediaType" validate:"omitempty,oneof=image video"`
	MediaURL  string               `json:"mediaUrl" validate:"omitempty,url"`
	Gallery   []GalleryItemRequest `json:"gallery" validate:"omitempty,max=20,dive"`
}

// UpdateBlogRequest carries only the fields present in the payload; absent
// fields stay nil and leave the stored value untouched.
type UpdateBlogRequest struct {
	Title     *string               `json:"title" validate:"omitempty,min=5,max=200"`
	Content   *string               `json:"content" validate:"omitempty,min=10"`
	Excerpt   *string               `json:"excerpt" validate:"omitempty,min=10,max=300"`
	Category  *string               `json:"category" validate:"omitempty,oneof=technology lifestyle travel food business health education other"`
	Tags      *[]string             `json:"tags" validate:"omitempty,max=10,dive,min=1,max=20"`
	Status    *string               `json:"status" validate:"omitempty,oneof=draft published"`
	MediaType *string               `json:"mediaType" validate:"omitempty,oneof=image video"`
	MediaURL  *string               `json:"mediaUrl" validate:"omitempty,url"`
	Gallery   *[]GalleryItemRequest `json:"gallery" validate:"omitempty,max=20,dive"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// ListQuery is parsed straight from the query string; the service clamps page
// and limit instead of rejecting out-of-range values.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	Sort     string
	MyPosts  bool
}

type AuthorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Avatar   string `json:"avatar"`
}

type MediaResponse struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type GalleryItemResponse struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	Placement string `json:"placement"`
}

type CommentResponse struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}

type BlogResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Content     string                `json:"content,omitempty"`
	Excerpt     string                `json:"excerpt"`
	Category    string                `json:"category"`
	Tags        []string              `json:"tags"`
	Status      string                `json:"status"`
	Media       MediaResponse         `json:"media"`
	Gallery     []GalleryItemResponse `json:"gallery,omitempty"`
	Author      AuthorResponse        `json:"author"`
	Views       int                   `json:"views"`
	ReadTime    int                   `json:"readTime"`
	IsLiked     bool                  `json:"isLiked"`
	LikeCount   int                   `json:"likeCount"`
	Comments    []CommentResponse     `json:"comments,omitempty"`
	PublishedAt *time.Time            `json:"publishedAt"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

type BlogListResponse struct {
	Items      []BlogResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

type LikeResponse struct {
	IsLiked   bool `json:"isLiked"`
	LikeCount int  `json:"likeCount"`
}
