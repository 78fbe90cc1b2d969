package image

import (
	"net/http"
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "image not found")
	ErrNotAnImage  = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrTooLarge    = apperror.New(http.StatusBadRequest, "uploaded file is too large")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "thumbnail not available")
)

// Image is an uploaded room photo.
type Image struct {
	ID            string
	UploaderID    string
	Filename      string
	StoragePath   string  // internal, never exposed
	ThumbnailPath *string // internal, never exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for the full-size image.
func URL(id string) string {
	return "/v1/images/" + id
}

// ThumbnailURL returns the public URL for the image's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/images/" + id + "/thumbnail"
}
