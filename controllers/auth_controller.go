package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parladach/parladach-api/middleware"
	"github.com/parladach/parladach-api/services"
	"github.com/parladach/parladach-api/utils"
)

// ====== INPUT STRUCTS ======
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortValidation(c, err)
		return
	}

	user, err := ctl.service.Register(input.Email, input.Password, input.Role)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.AbortValidation(c, err)
		return
	}

	token, err := ctl.service.Login(input.Email, input.Password)
	if err != nil {
		utils.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me retorna el usuario autenticado; el hash jamás se serializa.
func (ctl *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Abort(c, utils.NewAppError(utils.KindUnauthenticated, "No autenticado"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// AdminTest es una sonda de RBAC: solo ADMIN llega hasta acá.
func (ctl *AuthController) AdminTest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Acceso admin confirmado",
		"user_id": user.ID,
	})
}
