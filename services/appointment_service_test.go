package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"randevu.link/models"
	"randevu.link/pkg/queryparams"
)

type appointmentFixture struct {
	service     *AppointmentService
	repo        *stubAppointmentRepo
	serviceRepo *stubServiceRepo
	userRepo    *stubUserRepo
	owner       *models.User
	admin       *models.User
	catalog     *models.Service
}

func newAppointmentFixture() *appointmentFixture {
	repo := newStubAppointmentRepo()
	serviceRepo := newStubServiceRepo()
	userRepo := newStubUserRepo()

	adminRole := models.Role{Name: models.RoleNameAdmin}
	adminRole.ID = 1
	userRole := models.Role{Name: models.RoleNameUser}
	userRole.ID = 2

	owner := userRepo.add(models.User{Username: "ayse", RoleID: userRole.ID, Role: userRole})
	admin := userRepo.add(models.User{Username: "admin", RoleID: adminRole.ID, Role: adminRole})
	catalog := serviceRepo.add("Saç Kesimi")

	return &appointmentFixture{
		service:     &AppointmentService{repo: repo, serviceRepo: serviceRepo, userRepo: userRepo},
		repo:        repo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		owner:       owner,
		admin:       admin,
		catalog:     catalog,
	}
}

func testDate() time.Time {
	return time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local)
}

func TestCreateAppointmentAlwaysStartsPending(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}
	if appointment.Status != models.AppointmentStatusPending {
		t.Errorf("yeni randevu %q olmalı, %q geldi", models.AppointmentStatusPending, appointment.Status)
	}
	if appointment.UserID != f.owner.ID {
		t.Errorf("sahip oturumdaki kullanıcı olmalı: beklenen %d, gelen %d", f.owner.ID, appointment.UserID)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	if _, err := f.service.CreateAppointment(ctx, f.owner.ID, 0, testDate()); !errors.Is(err, ErrServiceRequired) {
		t.Errorf("hizmet seçilmedi: ErrServiceRequired bekleniyordu, %v geldi", err)
	}
	if _, err := f.service.CreateAppointment(ctx, f.owner.ID, 999, testDate()); !errors.Is(err, ErrServiceMissing) {
		t.Errorf("bilinmeyen hizmet: ErrServiceMissing bekleniyordu, %v geldi", err)
	}
	if _, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, time.Time{}); !errors.Is(err, ErrAppointmentDateRequired) {
		t.Errorf("boş tarih: ErrAppointmentDateRequired bekleniyordu, %v geldi", err)
	}
	if _, err := f.service.CreateAppointment(ctx, 0, f.catalog.ID, testDate()); !errors.Is(err, ErrAppointmentOwnerMissing) {
		t.Errorf("sahipsiz istek: ErrAppointmentOwnerMissing bekleniyordu, %v geldi", err)
	}
}

func TestGetAppointmentByIDEnforcesOwnership(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	other := f.userRepo.add(models.User{Username: "veli", RoleID: 2, Role: models.Role{Name: models.RoleNameUser}})

	if _, err := f.service.GetAppointmentByID(ctx, appointment.ID, other.ID); !errors.Is(err, ErrAppointmentForbidden) {
		t.Errorf("başka kullanıcının randevusu: ErrAppointmentForbidden bekleniyordu, %v geldi", err)
	}
	if _, err := f.service.GetAppointmentByID(ctx, appointment.ID, f.owner.ID); err != nil {
		t.Errorf("sahip kendi randevusunu okuyamadı: %v", err)
	}
	if _, err := f.service.GetAppointmentByID(ctx, appointment.ID, f.admin.ID); err != nil {
		t.Errorf("yönetici randevuyu okuyamadı: %v", err)
	}
}

func TestUpdateAppointmentCannotChangeStatusOrOwner(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	otherCatalog := f.serviceRepo.add("Danışmanlık")
	newDate := testDate().Add(48 * time.Hour)
	if err := f.service.UpdateAppointment(ctx, appointment.ID, f.owner.ID, otherCatalog.ID, newDate); err != nil {
		t.Fatalf("UpdateAppointment hata döndürdü: %v", err)
	}

	updated, err := f.repo.FindByID(ctx, appointment.ID)
	if err != nil {
		t.Fatalf("güncellenen randevu bulunamadı: %v", err)
	}
	if updated.ServiceID != otherCatalog.ID {
		t.Errorf("hizmet güncellenmedi: beklenen %d, gelen %d", otherCatalog.ID, updated.ServiceID)
	}
	if !updated.AppointmentDate.Equal(newDate) {
		t.Errorf("tarih güncellenmedi: beklenen %v, gelen %v", newDate, updated.AppointmentDate)
	}
	if updated.Status != models.AppointmentStatusPending {
		t.Errorf("kullanıcı güncellemesi durumu değiştirmemeli: %q geldi", updated.Status)
	}
	if updated.UserID != f.owner.ID {
		t.Errorf("sahip değişmemeli: beklenen %d, gelen %d", f.owner.ID, updated.UserID)
	}
}

func TestUpdateAppointmentForbiddenForNonOwner(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}
	other := f.userRepo.add(models.User{Username: "veli", RoleID: 2, Role: models.Role{Name: models.RoleNameUser}})

	err = f.service.UpdateAppointment(ctx, appointment.ID, other.ID, f.catalog.ID, testDate())
	if !errors.Is(err, ErrAppointmentForbidden) {
		t.Errorf("ErrAppointmentForbidden bekleniyordu, %v geldi", err)
	}
}

func TestUpdateAppointmentStatusAdminOnly(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	// Sahip bile olsa normal kullanıcı durumu değiştiremez.
	err = f.service.UpdateAppointmentStatus(ctx, appointment.ID, f.owner.ID, models.AppointmentStatusConfirmed)
	if !errors.Is(err, ErrAppointmentForbidden) {
		t.Errorf("normal kullanıcı: ErrAppointmentForbidden bekleniyordu, %v geldi", err)
	}

	if err := f.service.UpdateAppointmentStatus(ctx, appointment.ID, f.admin.ID, models.AppointmentStatusConfirmed); err != nil {
		t.Fatalf("yönetici durumu güncelleyemedi: %v", err)
	}
	updated, _ := f.repo.FindByID(ctx, appointment.ID)
	if updated.Status != models.AppointmentStatusConfirmed {
		t.Errorf("durum %q olmalı, %q geldi", models.AppointmentStatusConfirmed, updated.Status)
	}
}

func TestUpdateAppointmentStatusAnyToAny(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	// Durum makinesi kısıtlamasız: tanımlı her durumdan her duruma geçilebilir,
	// aynı durumun yeniden uygulanması da geçerlidir.
	sequence := []string{
		models.AppointmentStatusConfirmed,
		models.AppointmentStatusCancelled,
		models.AppointmentStatusCompleted,
		models.AppointmentStatusPending,
		models.AppointmentStatusPending,
	}
	for _, status := range sequence {
		if err := f.service.UpdateAppointmentStatus(ctx, appointment.ID, f.admin.ID, status); err != nil {
			t.Fatalf("durum %q uygulanamadı: %v", status, err)
		}
		current, _ := f.repo.FindByID(ctx, appointment.ID)
		if current.Status != status {
			t.Errorf("durum %q olmalı, %q geldi", status, current.Status)
		}
	}
}

func TestUpdateAppointmentStatusRejectsUnknownStatus(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	err = f.service.UpdateAppointmentStatus(ctx, appointment.ID, f.admin.ID, "Uydurma Durum")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ErrInvalidStatus bekleniyordu, %v geldi", err)
	}
}

func TestDeleteAppointmentOwnership(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}
	other := f.userRepo.add(models.User{Username: "veli", RoleID: 2, Role: models.Role{Name: models.RoleNameUser}})

	if err := f.service.DeleteAppointment(ctx, appointment.ID, other.ID); !errors.Is(err, ErrAppointmentForbidden) {
		t.Errorf("başkasının randevusunu silme: ErrAppointmentForbidden bekleniyordu, %v geldi", err)
	}
	if err := f.service.DeleteAppointment(ctx, appointment.ID, f.owner.ID); err != nil {
		t.Fatalf("sahip randevusunu silemedi: %v", err)
	}
	if err := f.service.DeleteAppointment(ctx, appointment.ID, f.owner.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("silinmiş randevu: ErrAppointmentNotFound bekleniyordu, %v geldi", err)
	}
}

func TestGetAppointmentsForUserReturnsOnlyOwn(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	other := f.userRepo.add(models.User{Username: "veli", RoleID: 2, Role: models.Role{Name: models.RoleNameUser}})

	if _, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate()); err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}
	if _, err := f.service.CreateAppointment(ctx, other.ID, f.catalog.ID, testDate().Add(time.Hour)); err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	result, err := f.service.GetAppointmentsForUser(ctx, f.owner.ID, queryparams.DefaultListParams("appointment_date"))
	if err != nil {
		t.Fatalf("GetAppointmentsForUser hata döndürdü: %v", err)
	}
	appointments, ok := result.Data.([]models.Appointment)
	if !ok {
		t.Fatalf("Data []models.Appointment olmalı, %T geldi", result.Data)
	}
	if len(appointments) != 1 {
		t.Fatalf("sadece kendi randevusu görünmeli: %d kayıt geldi", len(appointments))
	}
	if appointments[0].UserID != f.owner.ID {
		t.Errorf("listelenen randevu başka kullanıcıya ait: %d", appointments[0].UserID)
	}
}

// Kayıt -> randevu -> onay -> listede yeni durum akışı uçtan uca.
func TestAppointmentLifecycleEndToEnd(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	appointment, err := f.service.CreateAppointment(ctx, f.owner.ID, f.catalog.ID, testDate())
	if err != nil {
		t.Fatalf("CreateAppointment hata döndürdü: %v", err)
	}

	result, err := f.service.GetAppointmentsForUser(ctx, f.owner.ID, queryparams.DefaultListParams("appointment_date"))
	if err != nil {
		t.Fatalf("GetAppointmentsForUser hata döndürdü: %v", err)
	}
	listed := result.Data.([]models.Appointment)
	if len(listed) != 1 || listed[0].Status != models.AppointmentStatusPending {
		t.Fatalf("yeni randevu listede Bekliyor olarak görünmeli: %+v", listed)
	}

	if err := f.service.UpdateAppointmentStatus(ctx, appointment.ID, f.admin.ID, models.AppointmentStatusConfirmed); err != nil {
		t.Fatalf("yönetici onayı başarısız: %v", err)
	}

	result, err = f.service.GetAppointmentsForUser(ctx, f.owner.ID, queryparams.DefaultListParams("appointment_date"))
	if err != nil {
		t.Fatalf("GetAppointmentsForUser hata döndürdü: %v", err)
	}
	listed = result.Data.([]models.Appointment)
	if listed[0].Status != models.AppointmentStatusConfirmed {
		t.Errorf("onay sonrası durum %q olmalı, %q geldi", models.AppointmentStatusConfirmed, listed[0].Status)
	}

	if err := f.service.DeleteAppointment(ctx, appointment.ID, f.owner.ID); err != nil {
		t.Fatalf("sahip kendi randevusunu silemedi: %v", err)
	}

	result, err = f.service.GetAppointmentsForUser(ctx, f.owner.ID, queryparams.DefaultListParams("appointment_date"))
	if err != nil {
		t.Fatalf("GetAppointmentsForUser hata döndürdü: %v", err)
	}
	if len(result.Data.([]models.Appointment)) != 0 {
		t.Errorf("silme sonrası liste boş olmalı, %d kayıt geldi", len(result.Data.([]models.Appointment)))
	}
}
