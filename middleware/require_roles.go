package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/utils"
)

// RequireRoles autentica y exige pertenencia exacta al conjunto de roles.
// No hay jerarquía: ADMIN no hereda permisos de STUDENT ni TEACHER.
// El handler protegido solo corre después de pasar ambos chequeos.
func RequireRoles(db *gorm.DB, tokens *utils.TokenService, allowedRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Autenticación primero: sin identidad válida jamás se responde 403
		user, appErr := resolveUser(c, db, tokens)
		if appErr != nil {
			utils.Abort(c, appErr)
			return
		}

		for _, allowed := range allowedRoles {
			if user.Role == allowed {
				setCurrentUser(c, user)
				c.Next()
				return
			}
		}

		utils.Abort(c, utils.NewAppError(utils.KindForbidden, "No autorizado"))
	}
}
