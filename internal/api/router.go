package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/booking"
	bookingHttp "github.com/arenakita/arenakita-backend/internal/booking/http"
	"github.com/arenakita/arenakita-backend/internal/field"
	fieldHttp "github.com/arenakita/arenakita-backend/internal/field/http"
	"github.com/arenakita/arenakita-backend/internal/media"
	mediaHttp "github.com/arenakita/arenakita-backend/internal/media/http"
	"github.com/arenakita/arenakita-backend/internal/user"
	userHttp "github.com/arenakita/arenakita-backend/internal/user/http"
	"github.com/arenakita/arenakita-backend/internal/venue"
	venueHttp "github.com/arenakita/arenakita-backend/internal/venue/http"
)

const serviceName = "arenakita-backend"

// Config holds the services the router exposes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	VenueService   venue.Service
	FieldService   field.Service
	BookingService booking.Service
	MediaService   media.Service

	JWTManager           *auth.JWTManager
	Location             *time.Location
	PaymentWebhookSecret string
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery(), Tracing(serviceName))

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Web client
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// optionalAuth: Attaches the caller when a valid JWT is present, otherwise continues anonymously.
	optionalAuth := auth.OptionalAuth(cfg.JWTManager)
	// adminMiddleware: Confirms superadmin privileges against the store.
	adminMiddleware := RequireSuperadmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)
	venueHandler := venueHttp.NewHandler(cfg.VenueService, mediaHandler)
	fieldHandler := fieldHttp.NewHandler(cfg.FieldService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Location, cfg.PaymentWebhookSecret)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, optionalAuth)
		fieldHttp.RegisterRoutes(v1, fieldHandler, authMiddleware, optionalAuth)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
