package routes

import (
	"github.com/Yofukashi625/fangyang-wiki-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes initializes all application routes.
func SetupRoutes(r *gin.Engine) {
	// Public routes first: login, registration and logout need no token.
	RegisterAuthRoutes(r)

	// Everything under the protected group requires a valid JWT.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
