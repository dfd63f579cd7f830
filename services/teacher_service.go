package services

import (
	"errors"
	"log/slog"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/utils"
)

const (
	ActionApprove = "approve"
	ActionPause   = "pause"
)

// ProfilePatch lleva solo los campos presentes en el PATCH.
// Un puntero nil significa "no enviado"; los tres son campos clave.
type ProfilePatch struct {
	Bio       *string
	Languages *[]string
	PhotoURL  *string
}

func (p ProfilePatch) touchesKeyFields() bool {
	return p.Bio != nil || p.Languages != nil || p.PhotoURL != nil
}

// TeacherService es el dueño del ciclo de vida del perfil docente:
// DRAFT -> IN_REVIEW -> APPROVED <-> PAUSED.
type TeacherService struct {
	db     *gorm.DB
	logger *slog.Logger
	mailer *utils.Mailer
}

func NewTeacherService(db *gorm.DB, logger *slog.Logger, mailer *utils.Mailer) *TeacherService {
	return &TeacherService{db: db, logger: logger, mailer: mailer}
}

var errProfileNotFound = utils.NewAppError(utils.KindNotFound, "Perfil docente no existe")

// GetOrNull retorna el perfil del usuario, o nil si no existe. Nunca auto-crea.
func (s *TeacherService) GetOrNull(userID uint) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateIfAbsent crea el perfil en DRAFT en la primera escritura del docente.
// Idempotente: si ya existe se retorna intacto, sin aplicar los campos nuevos.
func (s *TeacherService) CreateIfAbsent(userID uint, bio string, languages []string, photoURL *string) (*models.TeacherProfile, error) {
	existing, err := s.GetOrNull(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if languages == nil {
		languages = []string{}
	}
	profile := models.TeacherProfile{
		UserID:    userID,
		Bio:       bio,
		Languages: datatypes.NewJSONSlice(languages),
		PhotoURL:  photoURL,
		Status:    models.ProfileDraft,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		// Carrera contra otro create: el índice único decide; releer al perdedor
		if again, err2 := s.GetOrNull(userID); err2 == nil && again != nil {
			return again, nil
		}
		return nil, err
	}

	s.logger.Info("perfil docente creado", "user_id", userID, "profile_id", profile.ID)
	return &profile, nil
}

// Update aplica solo los campos enviados. Un perfil IN_REVIEW está bloqueado;
// tocar un campo clave estando APPROVED degrada el estado a IN_REVIEW.
func (s *TeacherService) Update(userID uint, patch ProfilePatch) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProfileNotFound
			}
			return err
		}

		if profile.Status == models.ProfileInReview {
			return utils.NewAppError(utils.KindConflict, "El perfil está en revisión y no puede editarse")
		}

		if patch.Bio != nil {
			profile.Bio = *patch.Bio
		}
		if patch.Languages != nil {
			profile.Languages = datatypes.NewJSONSlice(*patch.Languages)
		}
		if patch.PhotoURL != nil {
			profile.PhotoURL = patch.PhotoURL
		}

		if profile.Status == models.ProfileApproved && patch.touchesKeyFields() {
			profile.Status = models.ProfileInReview
		}

		// Save refresca updated_at aunque no haya campos enviados
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Submit pasa un DRAFT a IN_REVIEW. Exige bio no vacía (recortada)
// y al menos un idioma.
func (s *TeacherService) Submit(userID uint) (*models.TeacherProfile, error) {
	var profile models.TeacherProfile

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProfileNotFound
			}
			return err
		}

		if profile.Status != models.ProfileDraft {
			return utils.NewAppError(utils.KindConflict, "Solo un perfil en borrador puede enviarse a revisión")
		}

		if strings.TrimSpace(profile.Bio) == "" || len(profile.Languages) == 0 {
			return utils.NewAppError(utils.KindValidationFailed, "El perfil necesita bio y al menos un idioma")
		}

		profile.Status = models.ProfileInReview
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("perfil enviado a revisión", "user_id", userID, "profile_id", profile.ID)
	return &profile, nil
}

// AdminList pagina perfiles en orden de id ascendente. Un filtro de estado
// que no parsea a un valor válido se ignora (no se rechaza).
func (s *TeacherService) AdminList(statusFilter string, limit, offset int) ([]models.TeacherProfile, int64, error) {
	filtered := func() *gorm.DB {
		q := s.db.Model(&models.TeacherProfile{})
		if status, ok := models.ParseTeacherProfileStatus(statusFilter); ok {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.TeacherProfile
	if err := filtered().Order("id ASC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// AdminSetStatus aplica la tabla de transiciones administrativas:
// approve: IN_REVIEW|PAUSED -> APPROVED; pause: APPROVED -> PAUSED.
func (s *TeacherService) AdminSetStatus(profileID uint, action string) (*models.TeacherProfile, error) {
	var next models.TeacherProfileStatus
	var allowed []models.TeacherProfileStatus

	switch action {
	case ActionApprove:
		next = models.ProfileApproved
		allowed = []models.TeacherProfileStatus{models.ProfileInReview, models.ProfilePaused}
	case ActionPause:
		next = models.ProfilePaused
		allowed = []models.TeacherProfileStatus{models.ProfileApproved}
	default:
		return nil, utils.NewAppError(utils.KindInvalidAction, "Acción no reconocida")
	}

	var profile models.TeacherProfile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, "id = ?", profileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProfileNotFound
			}
			return err
		}

		ok := false
		for _, from := range allowed {
			if profile.Status == from {
				ok = true
				break
			}
		}
		if !ok {
			return utils.NewAppError(utils.KindInvalidTransition, "Transición de estado no permitida")
		}

		profile.Status = next
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("estado de perfil actualizado", "profile_id", profile.ID, "action", action, "status", profile.Status)

	if action == ActionApprove {
		s.notifyApproval(profile)
	}
	return &profile, nil
}

// notifyApproval avisa al docente por correo sin bloquear la respuesta.
func (s *TeacherService) notifyApproval(profile models.TeacherProfile) {
	var user models.User
	if err := s.db.First(&user, "id = ?", profile.UserID).Error; err != nil {
		s.logger.Error("no se encontró el docente para notificar", "profile_id", profile.ID, "error", err)
		return
	}

	go func() {
		subject := "Tu perfil docente fue aprobado"
		body := `
		<h3>¡Felicitaciones!</h3>
		<p>Tu perfil docente en <b>Parladach</b> fue aprobado y ya aparece en el listado público.</p>
		<hr>
		<p><i>Este es un correo automático, por favor no responder.</i></p>
		`
		if err := s.mailer.Send(user.Email, subject, body); err != nil {
			s.logger.Error("fallo al enviar correo de aprobación", "user_id", user.ID, "error", err)
		}
	}()
}

// ListPublicApproved retorna solo perfiles APPROVED, del más reciente al más
// antiguo (desempate por id descendente para paginación estable).
func (s *TeacherService) ListPublicApproved(limit, offset int) ([]models.TeacherProfile, error) {
	var items []models.TeacherProfile
	err := s.db.
		Where("status = ?", models.ProfileApproved).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
