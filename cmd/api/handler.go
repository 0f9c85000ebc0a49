package api

import (
	authusecase "accounthub-backend/internal/auth/usecase"
	uploadusecase "accounthub-backend/internal/upload/usecase"
	userusecase "accounthub-backend/internal/user/usecase"
	"accounthub-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authusecase.AuthUsecase
	userUsecase   userusecase.UserUsecase
	uploadUsecase uploadusecase.UploadUsecase
	config        *config.Config
}

func NewHandler(authUc authusecase.AuthUsecase, userUc userusecase.UserUsecase, uploadUc uploadusecase.UploadUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		userUsecase:   userUc,
		uploadUsecase: uploadUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.uploadUsecase)

	return r.Run(addr)
}
