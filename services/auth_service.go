package services

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/utils"
)

// AuthService orquesta registro y login.
type AuthService struct {
	db     *gorm.DB
	hasher *utils.PasswordHasher
	tokens *utils.TokenService
	logger *slog.Logger
}

func NewAuthService(db *gorm.DB, hasher *utils.PasswordHasher, tokens *utils.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{db: db, hasher: hasher, tokens: tokens, logger: logger}
}

// NormalizeEmail: minúsculas en la frontera de lookup/almacenamiento.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(email, password, role string) (*models.User, error) {
	parsedRole, ok := models.ParseUserRole(role)
	if !ok || parsedRole == models.RoleAdmin {
		// ADMIN nunca es auto-asignable
		return nil, utils.NewAppError(utils.KindInvalidRole, "Rol no permitido para registro")
	}

	email = NormalizeEmail(email)

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, utils.NewAppError(utils.KindConflict, "Email ya registrado")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
		Status:       models.StatusActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.logger.Info("usuario registrado", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// Login falla con un único error genérico para no filtrar si el email
// existe, si la contraseña es incorrecta o si la cuenta está bloqueada.
func (s *AuthService) Login(email, password string) (string, error) {
	invalid := utils.NewAppError(utils.KindInvalidCredentials, "Credenciales inválidas")

	var user models.User
	if err := s.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return "", invalid
	}

	if user.PasswordHash == "" || !s.hasher.Verify(password, user.PasswordHash) {
		return "", invalid
	}

	if user.Status != models.StatusActive {
		return "", invalid
	}

	token, err := s.tokens.Generate(
		strconv.FormatUint(uint64(user.ID), 10),
		string(user.Role),
		string(user.Status),
	)
	if err != nil {
		return "", err
	}
	return token, nil
}
