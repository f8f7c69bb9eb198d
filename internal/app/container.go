package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arenakita/arenakita-backend/internal/api"
	"github.com/arenakita/arenakita-backend/internal/auth"
	"github.com/arenakita/arenakita-backend/internal/booking"
	"github.com/arenakita/arenakita-backend/internal/field"
	"github.com/arenakita/arenakita-backend/internal/media"
	"github.com/arenakita/arenakita-backend/internal/notify"
	"github.com/arenakita/arenakita-backend/internal/pkg/storage"
	"github.com/arenakita/arenakita-backend/internal/user"
	"github.com/arenakita/arenakita-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *slog.Logger
	JWTSecret    string
	JWTTTL       time.Duration
	PasswordCost int

	Location         *time.Location
	DefaultOpenHour  int
	DefaultCloseHour int
	FieldCacheTTL    time.Duration
	StoragePath      string

	// Empty AMQPURL publishes booking events nowhere.
	AMQPURL              string
	AMQPExchange         string
	PaymentWebhookSecret string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager

	closers []func() error
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	ttl := cfg.FieldCacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	c := &Container{}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.PasswordCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	var publisher notify.Publisher = notify.Noop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := notify.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return nil, fmt.Errorf("init event publisher: %w", err)
		}
		publisher = amqpPublisher
		c.closers = append(c.closers, amqpPublisher.Close)
	} else {
		logger.Info("AMQP_URL not set, booking events are not published")
	}

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, logger)

	// Media Module
	mediaRepo := media.NewRepository(cfg.DBPool)
	mediaService := media.NewService(mediaRepo, store, logger)

	// Field Directory caches venue details, so it listens to venue updates.
	fieldRepo := field.NewPgxRepository(cfg.DBPool)
	fieldDirectory := field.NewDirectory(fieldRepo, ttl)

	// Venue Directory
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo, logger, fieldDirectory)

	// Field Module
	fieldService := field.NewService(fieldRepo, fieldDirectory, venueService, field.DefaultHours{
		Open:  cfg.DefaultOpenHour,
		Close: cfg.DefaultCloseHour,
	})

	// Booking Ledger
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, fieldDirectory, venueService, publisher, logger, loc)

	// Router
	c.Router = api.NewRouter(api.Config{
		IsProduction:         cfg.IsProduction,
		ProdOrigins:          cfg.ProdOrigins,
		UserService:          userService,
		VenueService:         venueService,
		FieldService:         fieldService,
		BookingService:       bookingService,
		MediaService:         mediaService,
		JWTManager:           jwtManager,
		Location:             loc,
		PaymentWebhookSecret: cfg.PaymentWebhookSecret,
	})
	c.JWTManager = jwtManager

	return c, nil
}

// Close releases connections owned by the container. The DB pool belongs to the caller.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
