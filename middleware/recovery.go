package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/parladach/parladach-api/utils"
)

// Recovery captura panics y responde el sobre de error uniforme,
// sin exponer stack traces al cliente.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recuperado", "path", c.Request.URL.Path, "panic", recovered)
		utils.Abort(c, utils.NewAppError(utils.KindInternal, "Error interno"))
	})
}
