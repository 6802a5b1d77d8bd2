package models

import "time"

// PasswordResetToken tek kullanımlık şifre sıfırlama anahtarıdır.
type PasswordResetToken struct {
	BaseModel
	UserID    uint       `gorm:"index;not null"`
	Token     string     `gorm:"type:varchar(36);uniqueIndex;not null"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	UsedAt    *time.Time

	User User `gorm:"foreignKey:UserID"`
}

// IsUsable token'ın verilen anda hâlâ geçerli olup olmadığını söyler.
func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
