package http

import (
	"time"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/request"
	"github.com/averyhsu/hotel-booking-backend/internal/user"
)

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest defines the payload for profile updates.
type UpdateProfileRequest struct {
	FirstName   *string   `json:"first_name"`
	LastName    *string   `json:"last_name"`
	Preferences *[]string `json:"preferences"`
}

// AdminUpdateUserRequest extends profile updates with admin-only fields.
type AdminUpdateUserRequest struct {
	UpdateProfileRequest
	Role  *string `json:"role" binding:"omitempty,oneof=customer admin"`
	IsVIP *bool   `json:"is_vip"`
}

// ListUsersRequest defines query parameters for the admin user listing.
type ListUsersRequest struct {
	request.ListParams
	Email string `form:"email"`
	Role  string `form:"role" binding:"omitempty,oneof=customer admin"`
	IsVIP *bool  `form:"is_vip"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	Preferences []string   `json:"preferences"`
	IsVIP       bool       `json:"is_vip"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// UserTag is a brief representation of a user embedded in other responses.
type UserTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthResponse bundles a user with a freshly issued access token.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converts a domain user.User to the API shape.
func NewUserResponse(u *user.User) UserResponse {
	prefs := u.Preferences
	if prefs == nil {
		prefs = []string{}
	}

	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        string(u.Role),
		Preferences: prefs,
		IsVIP:       u.IsVIP,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: lastLoginAt,
	}
}
