// Package routes registers all application routes.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusreg/deptregistry/internal/app/controllers"
	"github.com/campusreg/deptregistry/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, departmentController *controllers.DepartmentController) {
	// API version group
	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.POST("", departmentController.Register)
		departments.GET("/:id", departmentController.GetStatus)
		departments.POST("/activate", departmentController.ActivatePassword)
		departments.POST("/:id/approve", departmentController.Approve)
		departments.POST("/:id/reject", departmentController.Reject)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
