package models

import "testing"

func TestIsValidAppointmentStatus(t *testing.T) {
	for _, status := range AppointmentStatuses() {
		if !IsValidAppointmentStatus(status) {
			t.Errorf("tanımlı durum %q geçersiz sayıldı", status)
		}
	}

	invalid := []string{"", "bekliyor", "Onaylandi", "Tamamlandı ", "Uydurma"}
	for _, status := range invalid {
		if IsValidAppointmentStatus(status) {
			t.Errorf("tanımsız durum %q geçerli sayıldı", status)
		}
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := User{Role: Role{Name: RoleNameAdmin}}
	if !admin.IsAdmin() {
		t.Error("Admin rolündeki kullanıcı IsAdmin() == false döndü")
	}

	user := User{Role: Role{Name: RoleNameUser}}
	if user.IsAdmin() {
		t.Error("User rolündeki kullanıcı IsAdmin() == true döndü")
	}

	noRole := User{}
	if noRole.IsAdmin() {
		t.Error("rolü yüklenmemiş kullanıcı IsAdmin() == true döndü")
	}
}
