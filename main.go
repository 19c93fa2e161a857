// File: arogyamitra/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arogyamitra/config"
	"arogyamitra/cron"
	"arogyamitra/database"
	conversationRepo "arogyamitra/database/repository/conversation"
	firstaidRepo "arogyamitra/database/repository/firstaid"
	prescriptionRepo "arogyamitra/database/repository/prescription"
	reminderRepo "arogyamitra/database/repository/reminder"
	"arogyamitra/handlers"
	"arogyamitra/middleware"
	"arogyamitra/routes"
	"arogyamitra/services/chat"
	"arogyamitra/services/firstaid"
	"arogyamitra/services/llm"
	"arogyamitra/services/ocr"
	"arogyamitra/services/prescription"
	"arogyamitra/services/reminder"
	"arogyamitra/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	cacheClient := utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	convRepo := conversationRepo.NewMongoConversationRepo()
	rxRepo := prescriptionRepo.NewMongoPrescriptionRepo()
	remRepo := reminderRepo.NewMongoReminderRepo()
	faRepo := firstaidRepo.NewMongoFirstAidRepo()

	// upstream clients.
	ocrClient := ocr.NewOCRSpaceClient(config.AppConfig.OCRSpaceAPIKey)
	groqClient := llm.NewGroqClient(config.AppConfig.GroqAPIKey, config.AppConfig.GroqModel)

	// services.
	prescriptionService := &prescription.DefaultPrescriptionService{
		OCR:  ocrClient,
		LLM:  groqClient,
		Repo: rxRepo,
	}
	chatService := &chat.DefaultChatService{
		LLM:           groqClient,
		Conversations: convRepo,
		Prescriptions: rxRepo,
	}
	reminderService := &reminder.DefaultReminderService{
		Repo:     remRepo,
		Notifier: reminder.LogNotifier{},
	}
	firstAidService := &firstaid.DefaultFirstAidService{
		Repo:  faRepo,
		Cache: cacheClient,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	firstAidHandler := handlers.NewFirstAidHandler(firstAidService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Chat endpoints.
		SendChatMessageHandler: chatHandler.SendMessageHandler,
		GetChatHistoryHandler:  chatHandler.GetHistoryHandler,

		// Prescription endpoints.
		AnalyzePrescriptionHandler: prescriptionHandler.AnalyzeHandler,
		ListPrescriptionsHandler:   prescriptionHandler.ListByUserHandler,

		// Reminder endpoints.
		CreateReminderHandler: reminderHandler.CreateReminderHandler,
		ListRemindersHandler:  reminderHandler.ListRemindersHandler,
		MarkTakenHandler:      reminderHandler.MarkTakenHandler,

		// First-aid endpoints.
		ListFirstAidCasesHandler: firstAidHandler.ListCasesHandler,
		GetFirstAidCaseHandler:   firstAidHandler.GetCaseHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder sweep and health monitor.
	scheduler := cron.StartReminderScheduler(reminderService)
	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.Port
	if port == "" {
		port = "3001"
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
	logger.Sugar().Info("main: server is shutting down...")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
