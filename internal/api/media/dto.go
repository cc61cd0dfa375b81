package media

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// PresignResponse carries a time-limited download URL for a stored object.
type PresignResponse struct {
	URL string `json:"url"`
}
