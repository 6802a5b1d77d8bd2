package models

import "time"

// Randevu durumları. Yeni kayıtlar istemci ne gönderirse göndersin
// Bekliyor durumuyla açılır; durum yalnızca yönetici tarafından değiştirilir.
const (
	AppointmentStatusPending   = "Bekliyor"
	AppointmentStatusConfirmed = "Onaylandı"
	AppointmentStatusCancelled = "İptal Edildi"
	AppointmentStatusCompleted = "Tamamlandı"
)

// AppointmentStatuses tanımlı durum kümesini döndürür (dropdown ve validasyon).
func AppointmentStatuses() []string {
	return []string{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCancelled,
		AppointmentStatusCompleted,
	}
}

// IsValidAppointmentStatus verilen değerin tanımlı durum kümesinde olup
// olmadığını kontrol eder.
func IsValidAppointmentStatus(status string) bool {
	for _, s := range AppointmentStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// Appointment bir kullanıcının bir hizmet için aldığı randevudur.
// UserID (sahip) oluşturma sonrasında değiştirilemez.
type Appointment struct {
	BaseModel
	UserID          uint      `gorm:"index;not null"`
	ServiceID       uint      `gorm:"index;not null"`
	AppointmentDate time.Time `gorm:"index;not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'Bekliyor'"`

	// GORM İlişkileri
	User    User    `gorm:"foreignKey:UserID"`
	Service Service `gorm:"foreignKey:ServiceID"`
}
