package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers image routes. Serving is public (room photos are
// shown to anyone browsing); upload and delete are admin-only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	images := g.Group("/images")
	{
		images.GET("/:id", h.ServeImage)
		images.GET("/:id/thumbnail", h.ServeThumbnail)
		images.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
	}

	g.POST("/rooms/:id/images", authMiddleware, adminMiddleware, h.UploadRoomImage)
}
