package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/database"
	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/router"
	"github.com/iliyamo/hotel-room-booking/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(db, "file://migrations"); err != nil {
			log.Fatalf("migrations: %v", err)
		}
	}

	// Redis backs the hotel-search cache and the rate limiter; both
	// degrade to pass-through when the client is nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	bookingRepo := repository.NewBookingRepo(db)
	hotelRepo := repository.NewHotelRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	bookings := service.NewBookingService(bookingRepo, userRepo, service.NewAMQPPublisher())
	defer bookings.Flush() // let in-flight confirmations finish on shutdown

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.Metrics())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo, tokenRepo), cfg.JWTSecret)
	router.RegisterBookings(e, handler.NewBookingHandler(bookings), cfg.JWTSecret, config.LoadRateLimitConfig(), rdb)
	router.RegisterHotels(e, handler.NewHotelHandler(hotelRepo, roomRepo), config.LoadCacheConfig(), rdb)

	// The confirmation-email consumer runs for the lifetime of the
	// process and reconnects on broker failures.
	go func() {
		if err := queue.StartBookingConsumer(config.LoadSMTPConfig()); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
