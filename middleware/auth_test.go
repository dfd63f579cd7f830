package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/parladach/parladach-api/config"
	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, role models.UserRole, status models.UserStatus) models.User {
	t.Helper()
	user := models.User{
		Email:        string(role) + "_" + string(status) + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Status:       status,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// El handler protegido escribe un cuerpo reconocible: si un rechazo del
// middleware dejara correr el handler, el cuerpo lo delataría.
func protectedRouter(db *gorm.DB, tokens *utils.TokenService, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "contenido protegido"})
	}
	if len(roles) > 0 {
		r.GET("/protegida", RequireRoles(db, tokens, roles...), handler)
	} else {
		r.GET("/protegida", AuthMiddleware(db, tokens), handler)
	}
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, tokens *utils.TokenService, user models.User) string {
	t.Helper()
	token, err := tokens.Generate(strconv.FormatUint(uint64(user.ID), 10), string(user.Role), string(user.Status))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejects(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	user := createUser(t, db, models.RoleStudent, models.StatusActive)
	valid := tokenFor(t, tokens, user)

	tests := []struct {
		name   string
		header string
	}{
		{"sin header", ""},
		{"esquema incorrecto", "Basic " + valid},
		{"sin token", "Bearer"},
		{"token basura", "Bearer no-es-un-jwt"},
		{"firmado con otro secreto", "Bearer " + mustToken(t, "otro-secreto", user)},
	}

	r := protectedRouter(db, tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"Unauthenticated"`)
		})
	}
}

func mustToken(t *testing.T, secret string, user models.User) string {
	t.Helper()
	other := utils.NewTokenService(secret, 60)
	return tokenFor(t, other, user)
}

func TestAuthMiddlewareBearerSchemeIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	user := createUser(t, db, models.RoleStudent, models.StatusActive)
	r := protectedRouter(db, tokens)

	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		w := doGet(r, scheme+" "+tokenFor(t, tokens, user))
		assert.Equal(t, http.StatusOK, w.Code, scheme)
	}
}

func TestAuthMiddlewareNonNumericSubject(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	r := protectedRouter(db, tokens)

	token, err := tokens.Generate("no-numérico", "STUDENT", "ACTIVE")
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	r := protectedRouter(db, tokens)

	token, err := tokens.Generate("9999", "STUDENT", "ACTIVE")
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRechecksLiveStatus(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	user := createUser(t, db, models.RoleStudent, models.StatusActive)
	token := tokenFor(t, tokens, user) // emitido con status ACTIVE
	r := protectedRouter(db, tokens)

	w := doGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	// suspensión posterior a la emisión: 403 en la siguiente request
	require.NoError(t, db.Model(&user).Update("status", models.StatusSuspended).Error)

	w = doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"Forbidden"`)
}

func TestRequireRoles(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)

	student := createUser(t, db, models.RoleStudent, models.StatusActive)
	admin := createUser(t, db, models.RoleAdmin, models.StatusActive)

	r := protectedRouter(db, tokens, models.RoleAdmin)

	// sin token: 401, nunca 403 antes de autenticar
	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// rol equivocado: 403
	w = doGet(r, "Bearer "+tokenFor(t, tokens, student))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// rol exacto: 200
	w = doGet(r, "Bearer "+tokenFor(t, tokens, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesBlocksHandlerOnWrongRole(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	student := createUser(t, db, models.RoleStudent, models.StatusActive)

	r := protectedRouter(db, tokens, models.RoleAdmin)

	// El rechazo corta la cadena: solo el sobre de error, nunca el
	// cuerpo del handler ni el sobre pegado después de un 200.
	w := doGet(r, "Bearer "+tokenFor(t, tokens, student))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "contenido protegido")
	assert.JSONEq(t, `{"error":{"type":"Forbidden","message":"No autorizado"}}`, w.Body.String())
}

func TestRequireRolesBlocksHandlerOnInactiveAccount(t *testing.T) {
	db := newTestDB(t)
	tokens := utils.NewTokenService("secreto-de-test", 60)
	admin := createUser(t, db, models.RoleAdmin, models.StatusSuspended)

	r := protectedRouter(db, tokens, models.RoleAdmin)

	w := doGet(r, "Bearer "+tokenFor(t, tokens, admin))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "contenido protegido")
	assert.Contains(t, w.Body.String(), "Cuenta no activa")
}
