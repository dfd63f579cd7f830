package models

import (
	"time"

	"gorm.io/datatypes"
)

type TeacherProfileStatus string

const (
	ProfileDraft    TeacherProfileStatus = "DRAFT"
	ProfileInReview TeacherProfileStatus = "IN_REVIEW"
	ProfileApproved TeacherProfileStatus = "APPROVED"
	ProfilePaused   TeacherProfileStatus = "PAUSED"
)

// ParseTeacherProfileStatus valida un estado de perfil (ej: filtro ?status= del admin).
func ParseTeacherProfileStatus(s string) (TeacherProfileStatus, bool) {
	switch TeacherProfileStatus(s) {
	case ProfileDraft, ProfileInReview, ProfileApproved, ProfilePaused:
		return TeacherProfileStatus(s), true
	}
	return "", false
}

type TeacherProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Bio       string                      `gorm:"type:text;not null;default:''" json:"bio"`
	Languages datatypes.JSONSlice[string] `json:"languages"`
	PhotoURL  *string                     `gorm:"type:text" json:"photo_url"`
	Status    TeacherProfileStatus        `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
