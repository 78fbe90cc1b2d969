package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyhsu/hotel-booking-backend/internal/auth"
	"github.com/averyhsu/hotel-booking-backend/internal/image"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/request"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/response"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

type Handler struct {
	imageService image.Service
	roomService  room.Service
}

func NewHandler(imageService image.Service, roomService room.Service) *Handler {
	return &Handler{
		imageService: imageService,
		roomService:  roomService,
	}
}

// UploadRoomImage stores a photo and attaches it to the room's image list.
func (h *Handler) UploadRoomImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ctx := c.Request.Context()

	// Make sure the room exists before storing anything.
	rm, err := h.roomService.GetByID(ctx, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	img, err := h.imageService.Upload(ctx, fileHeader, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	// Attach to the room; roll the upload back if that fails.
	imageIDs := append(append([]string{}, rm.ImageIDs...), img.ID)
	if _, err := h.roomService.Update(ctx, rm.ID, room.UpdateRequest{ImageIDs: &imageIDs}); err != nil {
		_ = h.imageService.Delete(ctx, img.ID)
		response.Error(c, err)
		return
	}

	var thumbURL *string
	if img.ThumbnailPath != nil {
		t := image.ThumbnailURL(img.ID)
		thumbURL = &t
	}

	c.JSON(http.StatusCreated, UploadResponse{
		ImageID:      img.ID,
		URL:          image.URL(img.ID),
		ThumbnailURL: thumbURL,
	})
}

// ServeImage streams the full-size image.
func (h *Handler) ServeImage(c *gin.Context) {
	h.serve(c, false)
}

// ServeThumbnail streams the JPEG thumbnail.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	h.serve(c, true)
}

func (h *Handler) serve(c *gin.Context, thumbnail bool) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var (
		stream io.ReadCloser
		img    *image.Image
		err    error
	)
	if thumbnail {
		stream, img, err = h.imageService.DownloadThumbnail(c.Request.Context(), uri.ID)
	} else {
		stream, img, err = h.imageService.Download(c.Request.Context(), uri.ID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	contentType := img.ContentType
	filename := img.Filename
	if thumbnail {
		contentType = "image/jpeg"
		filename = img.Filename + "_thumb.jpg"
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "inline; filename=\""+filename+"\"")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		// Response already started; nothing sensible to send.
		return
	}
}

// Delete removes an image (admin only). Rooms referencing it keep a dangling
// id until edited; the admin UI refreshes the list on save.
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.imageService.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
