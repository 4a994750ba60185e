package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/junaifcp/swift-resume/internal/ai"
	"github.com/junaifcp/swift-resume/internal/api/middleware"
	"github.com/junaifcp/swift-resume/internal/auth"
	"github.com/junaifcp/swift-resume/internal/config"
	"github.com/junaifcp/swift-resume/internal/storage"
)

// RegisterRoutes wires all v1 endpoints onto the router.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
) {
	resumeHandler := NewResumeHandler(db, asynqClient, storageClient, cfg.API.MaxResumes)
	authHandler := NewAuthHandler(db, authService, redisClient, logger, cfg.Auth.CookieDomain)
	wsHandler := NewWsHandler(redisClient, authService, logger)
	uploadHandler := NewUploadHandler(db, storageClient, logger, cfg.Upload)
	aiHandler := NewAIHandler(ai.NewSuggester())
	authMiddleware := middleware.AuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}

		resumeGroup := v1.Group("/resumes")
		resumeGroup.Use(authMiddleware)
		{
			resumeGroup.GET("", resumeHandler.ListResumes)
			resumeGroup.POST("", resumeHandler.CreateResume)
			resumeGroup.GET("/:id", resumeHandler.GetResume)
			resumeGroup.PUT("/:id", resumeHandler.UpdateResume)
			resumeGroup.DELETE("/:id", resumeHandler.DeleteResume)
			resumeGroup.POST("/:id/duplicate", resumeHandler.DuplicateResume)
			resumeGroup.POST("/:id/export", resumeHandler.RequestExport)
			resumeGroup.GET("/:id/export-link", resumeHandler.GetExportLink)
		}

		uploadGroup := v1.Group("/upload")
		uploadGroup.Use(authMiddleware)
		{
			uploadGroup.POST("/profile-image", uploadHandler.UploadProfileImage)
		}

		aiGroup := v1.Group("/ai")
		aiGroup.Use(authMiddleware)
		{
			aiGroup.POST("/suggest", aiHandler.Suggest)
		}
	}
}
