package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tourdesk/config"
	"tourdesk/cron"
	"tourdesk/database"
	bookingRepo "tourdesk/database/repository/booking"
	chatSessionRepo "tourdesk/database/repository/chatsession"
	companyRepo "tourdesk/database/repository/company"
	customerRepo "tourdesk/database/repository/customer"
	driverRepo "tourdesk/database/repository/driver"
	memoryRepo "tourdesk/database/repository/memory"
	packageRepo "tourdesk/database/repository/tourpackage"
	userRepo "tourdesk/database/repository/user"
	"tourdesk/handlers"
	"tourdesk/routes"
	"tourdesk/services/admin"
	"tourdesk/services/availability"
	"tourdesk/services/booking"
	"tourdesk/services/chatbot"
	"tourdesk/services/customer"
	"tourdesk/services/dashboard"
	"tourdesk/services/driver"
	"tourdesk/services/notification"
	"tourdesk/services/storage"
	"tourdesk/services/tourpackage"
	"tourdesk/services/user"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

type repositories struct {
	users        userRepo.UserRepository
	companies    companyRepo.CompanyRepository
	packages     packageRepo.TourPackageRepository
	drivers      driverRepo.DriverRepository
	customers    customerRepo.CustomerRepository
	bookings     bookingRepo.BookingRepository
	chatSessions chatSessionRepo.ChatSessionStore
}

// openRepositories picks the process-local store for DATABASE_URL=memory://, MongoDB otherwise.
func openRepositories(probes map[string]utils.Pinger) repositories {
	if config.UsesMemoryStore() {
		store := memoryRepo.NewStore()
		return repositories{
			users:        store.Users(),
			companies:    store.Companies(),
			packages:     store.Packages(),
			drivers:      store.Drivers(),
			customers:    store.Customers(),
			bookings:     store.Bookings(),
			chatSessions: store.ChatSessions(),
		}
	}

	database.InitDB()
	probes["mongodb"] = database.Ping
	return repositories{
		users:        userRepo.NewMongoUserRepo(),
		companies:    companyRepo.NewMongoCompanyRepo(),
		packages:     packageRepo.NewMongoTourPackageRepo(),
		drivers:      driverRepo.NewMongoDriverRepo(),
		customers:    customerRepo.NewMongoCustomerRepo(),
		bookings:     bookingRepo.NewMongoBookingRepo(),
		chatSessions: chatSessionRepo.NewMongoChatSessionStore(),
	}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	probes := map[string]utils.Pinger{}
	repos := openRepositories(probes)

	cache := utils.GetCacheClient()
	probes["redis"] = func(ctx context.Context) error { return cache.Ping(ctx).Err() }
	if strings.EqualFold(cfg.ChatSessionStore, "redis") {
		repos.chatSessions = chatSessionRepo.NewRedisChatSessionStore(cache, time.Duration(config.AppConfig.ChatSessionTTLHours)*time.Hour)
	}

	uploader, err := storage.NewUploaderFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize uploads: %v", err)
	}

	// Background notifications.
	queue := asynq.NewClient(cron.RedisOpt())
	defer queue.Close()
	dispatcher := notification.NewAsynqDispatcher(queue)

	processor := &notification.Processor{
		Messenger: notification.NewWhatsAppClient(notification.WhatsAppConfig{
			APIURL:        cfg.WhatsAppAPIURL,
			AccessToken:   cfg.WhatsAppAccessToken,
			PhoneNumberID: cfg.WhatsAppPhoneNumberID,
			Language:      cfg.WhatsAppTemplateLanguage,
		}),
		Mailer: notification.NewSMTPMailer(notification.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
		Bookings: repos.bookings,
		Packages: repos.packages,
	}
	worker := cron.NewWorker(processor, cfg.ReminderCron)
	if err := worker.Start(ctx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// services.
	userService := user.NewDefaultUserService(repos.users, repos.companies)
	if err := userService.BootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Sugar().Fatalf("main: admin bootstrap failed: %v", err)
	}
	availabilityService := availability.NewDefaultAvailabilityService(repos.packages, repos.bookings, repos.drivers)
	customerService := customer.NewDefaultCustomerService(repos.customers)
	driverService := driver.NewDefaultDriverService(repos.drivers)
	packageService := tourpackage.NewDefaultTourPackageService(repos.packages, repos.drivers, availabilityService, uploader)
	bookingService := booking.NewDefaultBookingService(repos.bookings, repos.packages, repos.drivers,
		repos.companies, customerService, availabilityService, dispatcher)
	adminService := admin.NewDefaultAdminService(repos.users, repos.companies, dispatcher,
		cfg.CompanyTempPassword, strings.TrimRight(cfg.PublicBaseURL, "/")+"/auth/login")
	dashboardService := dashboard.NewDefaultDashboardService(repos.bookings, repos.companies)

	bot := chatbot.NewEngine(repos.chatSessions,
		&chatbot.RepoCatalog{Packages: repos.packages, CompanyID: cfg.ChatbotCompanyID}, cfg.ChatbotBrand)
	if cfg.GeminiAPIKey != "" {
		answerer, err := chatbot.NewGeminiAnswerer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ChatbotBrand)
		if err != nil {
			logger.Sugar().Warnf("main: FAQ assistant disabled: %v", err)
		} else {
			defer answerer.Close()
			bot.Answerer = answerer
		}
	}

	handlerBundle := &handlers.HandlerBundle{
		Users:     userService,
		Auth:      handlers.NewAuthHandler(userService),
		Admin:     handlers.NewAdminHandler(adminService, uploader),
		Packages:  handlers.NewTourPackageHandler(packageService, driverService),
		Drivers:   handlers.NewDriverHandler(driverService, uploader),
		Customers: handlers.NewCustomerHandler(customerService),
		Bookings:  handlers.NewBookingHandler(bookingService, packageService, availabilityService),
		Dashboard: handlers.NewDashboardHandler(dashboardService, packageService),
		Webhook:   handlers.NewWebhookHandler(bot, dispatcher, cfg.WhatsAppVerifyToken),
		RateLimit: cfg.MaxRequestsPerMin,
		TestChat:  !config.IsProduction(),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.MaxMultipartMemory = 16 << 20
	if cfg.UploadDriver == "" || cfg.UploadDriver == "local" {
		router.Static("/"+strings.Trim(cfg.UploadDir, "/"), cfg.UploadDir)
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(ctx, 30*time.Second, probes)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
