package http

// UploadResponse reports a stored room photo.
type UploadResponse struct {
	ImageID      string  `json:"image_id"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}
