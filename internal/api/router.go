package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/averyhsu/hotel-booking-backend/internal/auth"
	"github.com/averyhsu/hotel-booking-backend/internal/blog"
	blogHttp "github.com/averyhsu/hotel-booking-backend/internal/blog/http"
	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/averyhsu/hotel-booking-backend/internal/booking/http"
	"github.com/averyhsu/hotel-booking-backend/internal/image"
	imageHttp "github.com/averyhsu/hotel-booking-backend/internal/image/http"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
	roomHttp "github.com/averyhsu/hotel-booking-backend/internal/room/http"
	"github.com/averyhsu/hotel-booking-backend/internal/stats"
	statsHttp "github.com/averyhsu/hotel-booking-backend/internal/stats/http"
	"github.com/averyhsu/hotel-booking-backend/internal/user"
	userHttp "github.com/averyhsu/hotel-booking-backend/internal/user/http"
)

// Config holds the services the router exposes over HTTP.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	RoomService    room.Service
	BookingService booking.Service
	BlogService    blog.Service
	StatsService   stats.Service
	ImageService   image.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware (CORS, logger, recovery, auth) and
// registers the routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = []string{cfg.ProdOrigins}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	blogHandler := blogHttp.NewHandler(cfg.BlogService)
	statsHandler := statsHttp.NewHandler(cfg.StatsService)
	imageHandler := imageHttp.NewHandler(cfg.ImageService, cfg.RoomService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		blogHttp.RegisterRoutes(v1, blogHandler, authMiddleware, adminMiddleware)
		statsHttp.RegisterRoutes(v1, statsHandler, authMiddleware, adminMiddleware)
		imageHttp.RegisterRoutes(v1, imageHandler, authMiddleware, adminMiddleware)
	}

	return r
}
