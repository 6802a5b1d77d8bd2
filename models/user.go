package models

// User sisteme giriş yapabilen hesaptır. Düz metin şifre asla tutulmaz;
// PasswordHash bcrypt çıktısıdır.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" form:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	RoleID       uint   `gorm:"index;not null"`

	// GORM İlişkileri
	Role Role `gorm:"foreignKey:RoleID"`
}

// UsernameMaxLength kullanıcı adı için üst sınır.
const UsernameMaxLength = 50

// IsAdmin rol adı üzerinden yönetici kontrolü yapar (Role preload edilmiş olmalı).
func (u *User) IsAdmin() bool {
	return u.Role.Name == RoleNameAdmin
}
