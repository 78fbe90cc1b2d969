package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/response"
	"github.com/averyhsu/hotel-booking-backend/internal/stats"
)

// StatsResponse is the admin dashboard payload.
type StatsResponse struct {
	TotalRooms     int     `json:"total_rooms"`
	TotalBookings  int     `json:"total_bookings"`
	TotalCustomers int     `json:"total_customers"`
	OccupancyRate  float64 `json:"occupancy_rate"`
	TotalRevenue   string  `json:"total_revenue"`
}

type Handler struct {
	service stats.Service
}

func NewHandler(service stats.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Compute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalRooms:     s.TotalRooms,
		TotalBookings:  s.TotalBookings,
		TotalCustomers: s.TotalCustomers,
		OccupancyRate:  s.OccupancyRate,
		TotalRevenue:   s.TotalRevenue,
	})
}
