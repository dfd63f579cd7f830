package models

import "time"

type UserRole string

const (
	RoleStudent UserRole = "STUDENT" // Estudiante (busca clases)
	RoleTeacher UserRole = "TEACHER" // Docente (ofrece clases)
	RoleAdmin   UserRole = "ADMIN"   // Administración de la plataforma
)

// ParseUserRole valida un rol recibido por la API.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

type UserStatus string

const (
	StatusActive    UserStatus = "ACTIVE"
	StatusInactive  UserStatus = "INACTIVE"
	StatusSuspended UserStatus = "SUSPENDED"
	StatusDeleted   UserStatus = "DELETED"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relación 1:1 (solo usuarios TEACHER tienen perfil)
	TeacherProfile *TeacherProfile `json:"-"`
}
