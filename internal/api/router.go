package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pedalshare/rental-booking-backend/internal/auth"
	"github.com/pedalshare/rental-booking-backend/internal/booking"
	bookingHttp "github.com/pedalshare/rental-booking-backend/internal/booking/http"
	"github.com/pedalshare/rental-booking-backend/internal/offer"
	offerHttp "github.com/pedalshare/rental-booking-backend/internal/offer/http"
	"github.com/pedalshare/rental-booking-backend/internal/user"
	userHttp "github.com/pedalshare/rental-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	OfferService   offer.Service
	BookingService booking.Service
	JWTManager     *auth.JWTManager
}

// NewRouter assembles middleware (CORS, logging, recovery, auth) and
// registers the routes of every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	offerHandler := offerHttp.NewHandler(cfg.OfferService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		offerHttp.RegisterRoutes(v1, offerHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
