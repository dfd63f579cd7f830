package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/utils"
)

// resolveUser resuelve el bearer token a un usuario vivo. El estado de
// cuenta se relee SIEMPRE de la base: una suspensión posterior a la emisión
// del token corta el acceso en la siguiente request. No avanza la cadena de
// handlers; eso queda a cargo del middleware que llama.
func resolveUser(c *gin.Context, db *gorm.DB, tokens *utils.TokenService) (models.User, *utils.AppError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.User{}, utils.NewAppError(utils.KindUnauthenticated, "No autenticado")
	}

	// Esquema "Bearer <token>", insensible a mayúsculas
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return models.User{}, utils.NewAppError(utils.KindUnauthenticated, "No autenticado")
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return models.User{}, utils.NewAppError(utils.KindUnauthenticated, "No autenticado")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return models.User{}, utils.NewAppError(utils.KindUnauthenticated, "No autenticado")
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return models.User{}, utils.NewAppError(utils.KindUnauthenticated, "No autenticado")
	}

	// Cuenta resuelta pero no activa: 403, no 401
	if user.Status != models.StatusActive {
		return models.User{}, utils.NewAppError(utils.KindForbidden, "Cuenta no activa")
	}

	return user, nil
}

func setCurrentUser(c *gin.Context, user models.User) {
	c.Set("user", user)
	c.Set("user_id", user.ID)
	c.Set("role", string(user.Role))
}

// AuthMiddleware exige un token válido de una cuenta activa, sin mirar el rol.
func AuthMiddleware(db *gorm.DB, tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, appErr := resolveUser(c, db, tokens)
		if appErr != nil {
			utils.Abort(c, appErr)
			return
		}
		setCurrentUser(c, user)
		c.Next()
	}
}

// CurrentUser recupera el usuario resuelto por AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
