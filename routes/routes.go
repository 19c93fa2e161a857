package routes

import (
	"net/http"
	"time"

	"arogyamitra/handlers"
	"arogyamitra/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers chat relay endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.SendChatMessageHandler)
		api.GET("/:userId", hb.GetChatHistoryHandler)
	}
}

// RegisterPrescriptionRoutes registers the prescription pipeline endpoints.
func RegisterPrescriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/prescriptions")
	{
		api.POST("", hb.AnalyzePrescriptionHandler)
		api.GET("/:userId", hb.ListPrescriptionsHandler)
	}
}

// RegisterReminderRoutes registers reminder CRUD endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.POST("", hb.CreateReminderHandler)
		api.GET("/:userId/:date", hb.ListRemindersHandler)
		api.PUT("/:reminderId/taken", hb.MarkTakenHandler)
	}
}

// RegisterFirstAidRoutes registers the read-only first-aid catalog endpoints.
func RegisterFirstAidRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/first-aid")
	{
		api.GET("", hb.ListFirstAidCasesHandler)
		api.GET("/:case", hb.GetFirstAidCaseHandler)
	}
}

// RegisterHealthRoutes registers the liveness and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Arogya Mitra Backend is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterPrescriptionRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterFirstAidRoutes(r, hb)
	RegisterHealthRoutes(r)
}
