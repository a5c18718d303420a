package auth

import (
	"github.com/gin-gonic/gin"
)

// Guards groups the middleware the auth routes need from the caller.
type Guards struct {
	Authenticate         gin.HandlerFunc
	OptionalAuthenticate gin.HandlerFunc
	LoginLimit           gin.HandlerFunc
	SignupLimit          gin.HandlerFunc
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, g Guards) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", g.LoginLimit, handler.Login)
		auth.POST("/signup", g.SignupLimit, g.OptionalAuthenticate, handler.Signup)
		auth.POST("/logout", g.Authenticate, handler.Logout)
	}
}
