package admin

import (
	"go-ems/internal/domain"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /admins; super admins only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticate gin.HandlerFunc) {
	admins := r.Group("/admins", authenticate, middleware.RequireRoles(domain.RoleSuperAdmin))
	{
		admins.GET("", handler.List)
		admins.GET("/:id", handler.GetByID)
		admins.POST("", handler.Create)
		admins.PATCH("/:id", handler.Update)
		admins.DELETE("/:id", handler.Delete)
	}
}
