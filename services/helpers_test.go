package services

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

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

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Argon2id con parámetros bajos para acelerar los tests.
func testHasher() *utils.PasswordHasher {
	return &utils.PasswordHasher{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func newAuthService(t *testing.T, db *gorm.DB) (*AuthService, *utils.TokenService) {
	t.Helper()
	tokens := utils.NewTokenService("secreto-de-test", 60)
	return NewAuthService(db, testHasher(), tokens, testLogger()), tokens
}

func newTeacherService(t *testing.T, db *gorm.DB) *TeacherService {
	t.Helper()
	mailer := utils.NewMailer(config.Settings{}) // sin SMTP: Send es no-op
	return NewTeacherService(db, testLogger(), mailer)
}

func createTeacherUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleTeacher,
		Status:       models.StatusActive,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
