package models

import (
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// BaseModel hook'larına taşır (CreatedBy/UpdatedBy için).
const ContextUserIDKey contextKey = "user_id"

// BaseModel tüm tablolara gömülen ortak alanlar: kimlik, zaman damgaları,
// soft delete ve denetim (audit) sütunları.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uint
	UpdatedBy *uint
	DeletedBy *uint
}

func userIDFromContext(tx *gorm.DB) (uint, bool) {
	if tx == nil || tx.Statement == nil || tx.Statement.Context == nil {
		return 0, false
	}
	id, ok := tx.Statement.Context.Value(ContextUserIDKey).(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// BeforeCreate context'teki kullanıcıyı CreatedBy/UpdatedBy olarak işler.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id, ok := userIDFromContext(tx); ok {
		m.CreatedBy = &id
		m.UpdatedBy = &id
	}
	return nil
}

// BeforeUpdate context'teki kullanıcıyı UpdatedBy olarak işler.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id, ok := userIDFromContext(tx); ok {
		m.UpdatedBy = &id
	}
	return nil
}
