package models

// Service randevu alınabilen hizmeti tanımlayan referans veridir.
// Randevular tarafından referans verilir; yönetimi dashboard'dan yapılır.
type Service struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" form:"name"`
	Description string `gorm:"type:text" form:"description"`
}
