package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (Upload, error) {
	var res Upload
	if err := c.doMultipart(ctx, http.MethodPost, "/api/v1/media/upload-image", "file", filename, file, nil, &res); err != nil {
		return Upload{}, err
	}
	return res, nil
}

func (c *Client) UploadVideo(ctx context.Context, filename string, file io.Reader) (Upload, error) {
	var res Upload
	if err := c.doMultipart(ctx, http.MethodPost, "/api/v1/media/upload-video", "file", filename, file, nil, &res); err != nil {
		return Upload{}, err
	}
	return res, nil
}

// PresignMedia exchanges a public id for a time-limited download URL.
func (c *Client) PresignMedia(ctx context.Context, publicID string) (string, error) {
	var res struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/media/presign/"+url.PathEscape(publicID), nil, nil, &res); err != nil {
		return "", err
	}
	return res.URL, nil
}

func (c *Client) DeleteMedia(ctx context.Context, publicID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/media/"+url.PathEscape(publicID), nil, nil, nil)
}
