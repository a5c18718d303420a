package employee

import (
	"go-ems/internal/domain"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticate gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(authenticate)
	employees.Use(middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin))
	{
		employees.GET("", handler.List)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PATCH("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
