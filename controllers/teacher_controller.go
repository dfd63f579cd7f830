package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/parladach/parladach-api/middleware"
	"github.com/parladach/parladach-api/services"
	"github.com/parladach/parladach-api/utils"
)

type CreateProfileInput struct {
	Bio       string   `json:"bio"`
	Languages []string `json:"languages"`
	PhotoURL  *string  `json:"photo_url"`
}

// Punteros: distinguen "campo no enviado" de "campo vacío"
type UpdateProfileInput struct {
	Bio       *string   `json:"bio"`
	Languages *[]string `json:"languages"`
	PhotoURL  *string   `json:"photo_url"`
}

type TeacherController struct {
	service *services.TeacherService
	photos  *utils.PhotoStorage
}

func NewTeacherController(service *services.TeacherService, photos *utils.PhotoStorage) *TeacherController {
	return &TeacherController{service: service, photos: photos}
}

func (ctl *TeacherController) GetMyProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	profile, err := ctl.service.GetOrNull(user.ID)
	if err != nil {
		utils.Abort(c, err)
		return
	}
	if profile == nil {
		utils.Abort(c, utils.NewAppError(utils.KindNotFound, "Perfil docente no existe"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (ctl *TeacherController) CreateMyProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortValidation(c, err)
		return
	}

	profile, err := ctl.service.CreateIfAbsent(user.ID, input.Bio, input.Languages, input.PhotoURL)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (ctl *TeacherController) UpdateMyProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortValidation(c, err)
		return
	}

	profile, err := ctl.service.Update(user.ID, services.ProfilePatch{
		Bio:       input.Bio,
		Languages: input.Languages,
		PhotoURL:  input.PhotoURL,
	})
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (ctl *TeacherController) SubmitMyProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	profile, err := ctl.service.Submit(user.ID)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UploadProfilePhoto sube la imagen a storage y guarda la URL pública por el
// mismo camino que un PATCH de photo_url: aplica el bloqueo IN_REVIEW y la
// degradación APPROVED -> IN_REVIEW por campo clave.
func (ctl *TeacherController) UploadProfilePhoto(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.Abort(c, utils.NewAppError(utils.KindValidationFailed, "Falta el archivo 'photo'"))
		return
	}

	publicURL, err := ctl.photos.UploadProfilePhoto(fileHeader, uuid.New().String())
	if err != nil {
		utils.Abort(c, utils.NewAppError(utils.KindInternal, "No se pudo subir la imagen"))
		return
	}

	profile, err := ctl.service.Update(user.ID, services.ProfilePatch{PhotoURL: &publicURL})
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
