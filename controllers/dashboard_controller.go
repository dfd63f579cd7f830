package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parladach/parladach-api/middleware"
)

// Dashboards mínimos por rol. Cada uno exige su rol exacto en la ruta.

func StudentDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard estudiante",
		"user_id": user.ID,
		"role":    user.Role,
	})
}

func TeacherDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard docente",
		"user_id": user.ID,
		"role":    user.Role,
	})
}

func AdminDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard administrador",
		"user_id": user.ID,
		"role":    user.Role,
	})
}
