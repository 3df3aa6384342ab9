package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepoPkg "medibook/database/repository/appointment"
	availabilityRepoPkg "medibook/database/repository/availability"
	doctorRepoPkg "medibook/database/repository/doctor"
	notificationRepoPkg "medibook/database/repository/notification"
	patientRepoPkg "medibook/database/repository/patient"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/appointment"
	"medibook/services/doctor"
	"medibook/services/intelligence"
	"medibook/services/notification"
	"medibook/services/tasks"
	"medibook/services/urgent"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Patients: patRepo,
		Doctors:  docRepo,
		Records:  notifRepo,
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:       apptRepo,
		DoctorRepo: docRepo,
		Reminders:  tasks.NewReminderScheduler(),
	}

	urgentService := &urgent.DefaultUrgentBookingService{
		AvailabilityRepo: availRepo,
		AppointmentRepo:  apptRepo,
		Appointments:     appointmentService,
		Notifier:         notificationService,
	}

	doctorService := &doctor.DefaultDoctorService{
		Repo:             docRepo,
		AvailabilityRepo: availRepo,
	}

	var suggester intelligence.SpecialtySuggester
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		cache := intelligence.NewSuggestionCache(utils.GetCacheClient(), 24*time.Hour)
		s, err := intelligence.NewGeminiSpecialtySuggester(key, cache)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize specialty suggester: %v", err)
		}
		suggester = s
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Register routes.
	routes.RegisterRoutes(router, &routes.Handlers{
		Urgent:        handlers.NewUrgentHandler(urgentService, doctorService, suggester),
		Appointments:  handlers.NewAppointmentHandler(appointmentService),
		Doctors:       handlers.NewDoctorHandler(doctorService),
		Notifications: handlers.NewNotificationHandler(notifRepo),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
