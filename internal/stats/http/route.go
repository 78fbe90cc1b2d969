package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the admin statistics endpoint.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/admin/stats", authMiddleware, adminMiddleware, h.Get)
}
