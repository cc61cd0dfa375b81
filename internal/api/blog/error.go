package blog

import (
	"BlogSpace/pkg/response"
	"net/http"
)

var (
	// ErrBlogNotFound also stands in for drafts addressed by anyone but their
	// author, so the response never reveals whether the post exists.
	ErrBlogNotFound = response.NewError(http.StatusNotFound, "Blog not found")
	ErrBlogNotOwned = response.NewError(http.StatusForbidden, "You do not own this blog")

	ErrCommentNotFound = response.NewError(http.StatusNotFound, "Comment not found")
	ErrCommentNotOwned = response.NewError(http.StatusForbidden, "You do not own this comment")

	ErrInvalidCategory = response.NewError(http.StatusBadRequest, "Invalid category")
	ErrInvalidMedia    = response.NewError(http.StatusBadRequest, "Invalid media item")
)
