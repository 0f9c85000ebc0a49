package api

import (
	authdelivery "accounthub-backend/internal/auth/delivery"
	authusecase "accounthub-backend/internal/auth/usecase"
	uploaddelivery "accounthub-backend/internal/upload/delivery"
	uploadusecase "accounthub-backend/internal/upload/usecase"
	userdelivery "accounthub-backend/internal/user/delivery"
	userusecase "accounthub-backend/internal/user/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authusecase.AuthUsecase, userUc userusecase.UserUsecase, uploadUc uploadusecase.UploadUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	userHandler := userdelivery.NewUserHandler(userUc)
	uploadHandler := uploaddelivery.NewUploadHandler(uploadUc)

	v1 := r.Group("/api/v1")
	{
		// Health check (no auth required)
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/password/forgot", authHandler.ForgotPassword)
			auth.POST("/password/reset", authHandler.ResetPassword)
			auth.PATCH("/password/update", authdelivery.AuthMiddleware(authUc), authHandler.UpdatePassword)
		}

		// User routes (protected)
		users := v1.Group("/user")
		users.Use(authdelivery.AuthMiddleware(authUc))
		{
			users.GET("/list", userHandler.ListUsers)
			users.GET("/profile/:userId", userHandler.GetProfile)
			users.PATCH("/profile/:userId", userHandler.UpdateProfile)
			users.DELETE("/:userId", userHandler.DeleteAccount)
		}

		// Upload routes (protected)
		uploads := v1.Group("/upload")
		uploads.Use(authdelivery.AuthMiddleware(authUc))
		{
			uploads.POST("", uploadHandler.Upload)
			uploads.DELETE("/*key", uploadHandler.Delete)
		}
	}
}
