package models

// Role kaba yetki etiketi: rota erişimini belirler.
// Seed ile oluşturulan referans veridir, uygulama içinden silinmez.
type Role struct {
	BaseModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

const (
	RoleNameAdmin = "Admin"
	RoleNameUser  = "User"
)
