package http

import (
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/request"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
)

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	Type     string `form:"type" binding:"omitempty,oneof=standard deluxe suite presidential"`
	Status   string `form:"status" binding:"omitempty,oneof=available booked maintenance"`
	Capacity int    `form:"capacity" binding:"omitempty,min=1"`
}

type CreateRoomRequest struct {
	Number        string   `json:"number" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=standard deluxe suite presidential"`
	PricePerNight string   `json:"price_per_night" binding:"required"`
	Capacity      int      `json:"capacity" binding:"required,min=1"`
	Amenities     []string `json:"amenities"`
	Description   *string  `json:"description"`
}

type UpdateRoomRequest struct {
	Number        *string   `json:"number"`
	Type          *string   `json:"type" binding:"omitempty,oneof=standard deluxe suite presidential"`
	PricePerNight *string   `json:"price_per_night"`
	Capacity      *int      `json:"capacity" binding:"omitempty,min=1"`
	Status        *string   `json:"status" binding:"omitempty,oneof=available booked maintenance"`
	Amenities     *[]string `json:"amenities"`
	ImageIDs      *[]string `json:"image_ids"`
	Description   *string   `json:"description"`
}

type RoomResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Type          string    `json:"type"`
	PricePerNight string    `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	Status        string    `json:"status"`
	Amenities     []string  `json:"amenities"`
	ImageIDs      []string  `json:"image_ids"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoomTag is a brief representation of a room embedded in other responses.
type RoomTag struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	imageIDs := r.ImageIDs
	if imageIDs == nil {
		imageIDs = []string{}
	}

	return RoomResponse{
		ID:            r.ID,
		Number:        r.Number,
		Type:          string(r.Type),
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Status:        string(r.Status),
		Amenities:     amenities,
		ImageIDs:      imageIDs,
		Description:   r.Description,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
