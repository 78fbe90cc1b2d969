package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/averyhsu/hotel-booking-backend/internal/auth"
	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/request"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/response"
	roomHttp "github.com/averyhsu/hotel-booking-backend/internal/room/http"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Availability returns the rooms bookable over the requested date range.
func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in and check_out are required"})
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date, expected YYYY-MM-DD"})
		return
	}

	rooms, err := h.service.ListAvailableRooms(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]roomHttp.RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = roomHttp.NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, gin.H{"rooms": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	checkIn, err := parseDate(body.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := parseDate(body.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date, expected YYYY-MM-DD"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:          auth.GetUserID(c),
		RoomID:          body.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          body.Guests,
		TotalPrice:      body.TotalPrice,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	var from, to *time.Time
	if req.From != "" {
		t, err := parseDate(req.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = &t
	}
	if req.To != "" {
		t, err := parseDate(req.To)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
		to = &t
	}

	// Admins may see everyone's bookings; customers only their own.
	filterUserID := auth.GetUserID(c)
	if auth.IsAdmin(c) {
		filterUserID = req.UserID // empty means all
	}

	bookings, total, err := h.service.List(c.Request.Context(), booking.Filter{
		UserID:   filterUserID,
		RoomID:   req.RoomID,
		Status:   req.Status,
		From:     from,
		To:       to,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// ConfirmPayment moves a booking to confirmed once the payment collaborator
// reports a successful charge.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	h.applyPayment(c, h.service.ConfirmPayment)
}

// MarkDepositPaid records the 30%-upfront walk-in payment.
func (h *Handler) MarkDepositPaid(c *gin.Context) {
	h.applyPayment(c, h.service.MarkDepositPaid)
}

func (h *Handler) applyPayment(c *gin.Context, apply func(ctx context.Context, id, paymentIntentID string) (*booking.Booking, error)) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body PaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// Payment transitions may only be applied by the booking owner or an
	// admin; GetByID enforces that before anything changes.
	if _, err := h.service.GetByID(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	b, err := apply(c.Request.Context(), uri.ID, body.PaymentIntentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Complete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.Complete(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CancelResponse{
		Booking:          NewBookingResponse(result.Booking),
		RefundAmount:     result.RefundAmount,
		RefundPercentage: result.RefundPercent,
	})
}
