package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/averyhsu/hotel-booking-backend/internal/api"
	"github.com/averyhsu/hotel-booking-backend/internal/auth"
	"github.com/averyhsu/hotel-booking-backend/internal/blog"
	"github.com/averyhsu/hotel-booking-backend/internal/booking"
	"github.com/averyhsu/hotel-booking-backend/internal/image"
	"github.com/averyhsu/hotel-booking-backend/internal/notify"
	"github.com/averyhsu/hotel-booking-backend/internal/pkg/storage"
	"github.com/averyhsu/hotel-booking-backend/internal/room"
	"github.com/averyhsu/hotel-booking-backend/internal/stats"
	"github.com/averyhsu/hotel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StoragePath  string
	RefundPolicy booking.RefundPolicy
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomRepo, notify.NewLogNotifier(), cfg.RefundPolicy)

	// Blog Module
	blogRepo := blog.NewPgxRepository(cfg.DBPool)
	blogService := blog.NewService(blogRepo)

	// Stats Module
	statsService := stats.NewService(roomRepo, bookingRepo)

	// Image Module
	imageRepo := image.NewPgxRepository(cfg.DBPool)
	imageService := image.NewService(imageRepo, store)

	// API Router Config
	routerParams := api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		RoomService:    roomService,
		BookingService: bookingService,
		BlogService:    blogService,
		StatsService:   statsService,
		ImageService:   imageService,
		JWTManager:     jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
