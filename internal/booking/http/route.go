package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the availability search and booking routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public room search
	g.GET("/availability", h.Availability)

	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/:id/confirm", h.ConfirmPayment)
		group.POST("/:id/deposit", h.MarkDepositPaid)
		group.POST("/:id/cancel", h.Cancel)
		group.POST("/:id/complete", adminMiddleware, h.Complete)
	}
}
