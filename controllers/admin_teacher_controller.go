package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parladach/parladach-api/services"
	"github.com/parladach/parladach-api/utils"
)

type AdminTeacherController struct {
	service *services.TeacherService
}

func NewAdminTeacherController(service *services.TeacherService) *AdminTeacherController {
	return &AdminTeacherController{service: service}
}

// List pagina perfiles docentes. Un ?status= inválido se ignora.
func (ctl *AdminTeacherController) List(c *gin.Context) {
	limit, offset := paginationParams(c)

	items, total, err := ctl.service.AdminList(c.Query("status"), limit, offset)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (ctl *AdminTeacherController) Approve(c *gin.Context) {
	ctl.setStatus(c, services.ActionApprove)
}

func (ctl *AdminTeacherController) Pause(c *gin.Context) {
	ctl.setStatus(c, services.ActionPause)
}

func (ctl *AdminTeacherController) setStatus(c *gin.Context, action string) {
	profileID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.AbortValidation(c, err)
		return
	}

	profile, err := ctl.service.AdminSetStatus(uint(profileID), action)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// paginationParams aplica los defaults y límites del listado (50, 1..200).
func paginationParams(c *gin.Context) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 200 {
		limit = 200
	}

	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
