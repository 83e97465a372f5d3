package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pixelhunt/design-backend/internal/config"
	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
	"github.com/pixelhunt/design-backend/internal/http/handlers"
	"github.com/pixelhunt/design-backend/internal/http/middleware"
	"github.com/pixelhunt/design-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	requestHandler *handlers.RequestHandler,
	proposalHandler *handlers.ProposalHandler,
	questionHandler *handlers.QuestionHandler,
	formHandler *handlers.FormHandler,
	notificationHandler *handlers.NotificationHandler,
	mediaHandler *handlers.MediaHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	protectedAuth := api.Group("/auth")
	protectedAuth.Use(middleware.AuthMiddleware(tokenManager))
	{
		protectedAuth.GET("/me", authHandler.Me)
	}

	// Публичные маршруты
	api.GET("/requests", requestHandler.List)
	api.GET("/requests/:id", middleware.UUIDValidator("id"), requestHandler.Get)
	api.GET("/requests/:id/questions", middleware.UUIDValidator("id"), questionHandler.ByRequest)
	api.GET("/forms", formHandler.ListActive)
	api.GET("/forms/:id", middleware.UUIDValidator("id"), formHandler.Get)
	api.GET("/ws", wsHandler.Handle)
	api.POST("/requests/preview", requestHandler.PreviewQuote)

	customerOnly := middleware.RequireRole(string(valueobject.RoleCustomer))
	designerOnly := middleware.RequireRole(string(valueobject.RoleDesigner))

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.POST("/requests", customerOnly, requestHandler.Create)
		protected.GET("/requests/my", requestHandler.My)
		protected.POST("/requests/:id/cancel", middleware.UUIDValidator("id"), customerOnly, requestHandler.Cancel)
		protected.POST("/requests/:id/decision", middleware.UUIDValidator("id"), designerOnly, requestHandler.Decide)

		protected.POST("/requests/:id/proposals", middleware.UUIDValidator("id"), designerOnly, proposalHandler.Submit)
		protected.GET("/requests/:id/proposals", middleware.UUIDValidator("id"), proposalHandler.ByRequest)
		protected.GET("/proposals/my", proposalHandler.My)
		protected.POST("/proposals/:id/accept", middleware.UUIDValidator("id"), customerOnly, proposalHandler.Accept)
		protected.POST("/proposals/:id/reject", middleware.UUIDValidator("id"), customerOnly, proposalHandler.Reject)

		protected.POST("/requests/:id/questions", middleware.UUIDValidator("id"), designerOnly, questionHandler.Ask)
		protected.POST("/questions/:id/respond", middleware.UUIDValidator("id"), customerOnly, questionHandler.Respond)

		protected.POST("/forms", designerOnly, formHandler.Create)
		protected.GET("/forms/my", designerOnly, formHandler.My)
		protected.POST("/forms/:id/reorder", middleware.UUIDValidator("id"), designerOnly, formHandler.Reorder)
		protected.PATCH("/forms/:id/active", middleware.UUIDValidator("id"), designerOnly, formHandler.SetActive)

		protected.GET("/notifications", notificationHandler.List)
		protected.GET("/notifications/unread/count", notificationHandler.UnreadCount)
		protected.PUT("/notifications/:id/read", middleware.UUIDValidator("id"), notificationHandler.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)

		protected.POST("/media", mediaHandler.Upload)
		protected.DELETE("/media/:id", middleware.UUIDValidator("id"), mediaHandler.Delete)
	}

	return r
}
