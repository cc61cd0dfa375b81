package blogService

import (
	"BlogSpace/internal/api/blog"
	"BlogSpace/internal/entity"
)

func (s *blogService) makeAuthor(u entity.User) blog.AuthorResponse {
	avatar := u.Avatar
	if avatar == "" {
		name := u.FullName
		if name == "" {
			name = u.Username
		}
		avatar = s.utils.PlaceholderAvatarURL(name)
	}

	return blog.AuthorResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   avatar,
	}
}

func (s *blogService) makeBlogResponse(b entity.Blog, includeContent bool) blog.BlogResponse {
	media := blog.MediaResponse{
		Type: b.MediaType,
		URL:  b.MediaURL,
	}
	if media.URL == "" {
		media.Type = entity.MediaTypeImage
		media.URL = s.utils.PlaceholderCoverURL()
	}

	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}

	res := blog.BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Category:    b.Category,
		Tags:        tags,
		Status:      b.Status,
		Media:       media,
		Author:      s.makeAuthor(b.Author),
		Views:       b.Views,
		ReadTime:    b.ReadTime,
		IsLiked:     b.IsLiked,
		LikeCount:   b.LikeCount,
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if includeContent {
		res.Content = b.Content
	}

	for _, item := range b.Gallery {
		res.Gallery = append(res.Gallery, blog.GalleryItemResponse{
			Type:      item.Type,
			URL:       item.URL,
			Placement: item.Placement,
		})
	}

	return res
}

func (s *blogService) makeCommentResponse(c entity.Comment) blog.CommentResponse {
	return blog.CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		Author:    s.makeAuthor(c.Author),
		CreatedAt: c.CreatedAt,
	}
}
