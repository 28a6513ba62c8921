package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"weddingsparks/config"
	"weddingsparks/database"
	bookingRepoPkg "weddingsparks/database/repository/booking"
	listingRepoPkg "weddingsparks/database/repository/listing"
	paymentRepoPkg "weddingsparks/database/repository/payment"
	userRepoPkg "weddingsparks/database/repository/user"
	vendorRepoPkg "weddingsparks/database/repository/vendor"
	"weddingsparks/handlers"
	"weddingsparks/routes"
	"weddingsparks/services/booking"
	"weddingsparks/services/listing"
	"weddingsparks/services/notification"
	"weddingsparks/services/payment"
	"weddingsparks/services/storage"
	"weddingsparks/services/user"
	"weddingsparks/services/vendor"
	"weddingsparks/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	cacheClient := utils.GetCacheClient()

	var storageService storage.Service
	if svc, err := utils.Cloudinary(); err != nil {
		logger.Warn("Cloudinary storage disabled", zap.Error(err))
	} else {
		storageService = svc
	}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	listingRepo := listingRepoPkg.NewMongoListingRepo(db)
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// payment gateway and notification queue.
	gateway := payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpaySecret)
	queueOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	notifier := notification.NewAsynqNotifier(queueOpt)
	defer notifier.Close()

	if mailer, err := notification.NewMailer(notification.MailerConfig{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.SMTPFrom,
	}); err != nil {
		logger.Warn("Email worker disabled", zap.Error(err))
	} else {
		notification.StartWorker(queueOpt, mailer)
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo, Storage: storageService}
	listingService := &listing.DefaultListingService{
		Repo:    listingRepo,
		Users:   userRepo,
		Vendors: vendorRepo,
		Storage: storageService,
	}
	vendorService := &vendor.DefaultVendorService{
		Repo:     vendorRepo,
		Users:    userRepo,
		Listings: listingRepo,
		Storage:  storageService,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Payments: paymentRepo,
		Users:    userRepo,
		Listings: listingRepo,
		Gateway:  gateway,
		Notifier: notifier,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    &handlers.AuthHandler{Service: userService},
		Booking: &handlers.BookingHandler{Service: bookingService},
		Payment: &handlers.PaymentHandler{Service: bookingService},
		Listing: &handlers.ListingHandler{Service: listingService},
		Vendor:  &handlers.VendorHandler{Service: vendorService},

		UserRepo: userRepo,
		Cache:    cacheClient,
	}

	router := routes.SetupRouter(handlerBundle)
	utils.StartHealthMonitor(cacheClient, mongoClient)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Wait for interrupt, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	if err := database.Disconnect(mongoClient, 5*time.Second); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}
	logger.Info("Server exited")
}
