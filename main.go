package main

import (
	"context"
	"log"

	"github.com/hostellink/backend/config"
	"github.com/hostellink/backend/internal/handler"
	"github.com/hostellink/backend/internal/middleware"
	"github.com/hostellink/backend/internal/notifier"
	"github.com/hostellink/backend/internal/repository"
	"github.com/hostellink/backend/internal/service"
	"github.com/hostellink/backend/internal/sweeper"
	"github.com/hostellink/backend/pkg/database"
	"github.com/hostellink/backend/pkg/paystack"
	"github.com/hostellink/backend/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Notification worker: consumes this service's own lifecycle events
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ consumer: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	notifier.New().Start(msgs)

	// Repositories
	studentRepo := repository.NewStudentRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	webhookRepo := repository.NewWebhookEventRepository(db)

	// Gateway + services
	gateway := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey)

	studentSvc := service.NewStudentService(studentRepo)
	hostelSvc := service.NewHostelService(hostelRepo)
	reservationSvc := service.NewReservationService(reservationRepo, paymentRepo, publisher)
	paymentSvc := service.NewPaymentService(paymentRepo, reservationRepo, webhookRepo, gateway, publisher, cfg.PaystackWebhookSecret)
	bookingSvc := service.NewBookingService(bookingRepo)

	// Expiry sweep for unpaid reservations
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	sweeper.New(reservationRepo, cfg.ReservationSweepInterval).Start(sweepCtx)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "hostellink-backend"})
	})

	api := e.Group("/api/v1")
	handler.NewStudentHandler(studentSvc).RegisterRoutes(api.Group("/students"))
	handler.NewHostelHandler(hostelSvc).RegisterRoutes(api.Group("/hostels"), api.Group("/admin"))
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(api.Group("/reservations"))
	handler.NewPaymentHandler(paymentSvc).RegisterRoutes(api.Group("/payments"))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api.Group("/bookings"), api.Group("/inspections"))

	log.Printf("HostelLink backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
