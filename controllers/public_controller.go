package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parladach/parladach-api/services"
	"github.com/parladach/parladach-api/utils"
)

// PublicTeacherItem es la proyección pública: nunca expone email ni user_id.
type PublicTeacherItem struct {
	TeacherProfileID uint     `json:"teacher_profile_id"`
	Bio              string   `json:"bio"`
	Languages        []string `json:"languages"`
	PhotoURL         *string  `json:"photo_url"`
	DisplayName      *string  `json:"display_name"`
}

type PublicController struct {
	service *services.TeacherService
}

func NewPublicController(service *services.TeacherService) *PublicController {
	return &PublicController{service: service}
}

func (ctl *PublicController) ListTeachers(c *gin.Context) {
	limit, offset := paginationParams(c)

	profiles, err := ctl.service.ListPublicApproved(limit, offset)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	items := make([]PublicTeacherItem, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, PublicTeacherItem{
			TeacherProfileID: p.ID,
			Bio:              p.Bio,
			Languages:        p.Languages,
			PhotoURL:         p.PhotoURL,
			DisplayName:      nil, // se completará cuando User tenga display_name
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
