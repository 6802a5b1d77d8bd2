package services

import (
	"context"
	"os"
	"testing"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	// Servisler global logger'ı kullanır; testlerde sessiz logger yeterli.
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
	os.Exit(m.Run())
}

// stubUserRepo IUserRepository'nin bellek içi sahtesi.
type stubUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *stubUserRepo) add(user models.User) *models.User {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	u := user
	r.users[u.ID] = &u
	return &u
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubUserRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error) {
	var result []models.User
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, int64(len(result)), nil
}

func (r *stubUserRepo) UpdateRole(ctx context.Context, userID uint, roleID uint) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.RoleID = roleID
	return nil
}

func (r *stubUserRepo) UpdatePasswordHash(ctx context.Context, userID uint, passwordHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) Delete(ctx context.Context, user *models.User, deletedByUserID uint) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.users, user.ID)
	return nil
}

func (r *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// stubRoleRepo IRoleRepository'nin bellek içi sahtesi.
type stubRoleRepo struct {
	roles []models.Role
}

func newStubRoleRepo() *stubRoleRepo {
	adminRole := models.Role{Name: models.RoleNameAdmin}
	adminRole.ID = 1
	userRole := models.Role{Name: models.RoleNameUser}
	userRole.ID = 2
	return &stubRoleRepo{roles: []models.Role{adminRole, userRole}}
}

func (r *stubRoleRepo) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			copied := role
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubRoleRepo) FindByName(ctx context.Context, name string) (*models.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			copied := role
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *stubRoleRepo) FindAll(ctx context.Context) ([]models.Role, error) {
	return append([]models.Role(nil), r.roles...), nil
}

// stubServiceRepo IServiceRepository'nin bellek içi sahtesi.
type stubServiceRepo struct {
	services          map[uint]*models.Service
	appointmentCounts map[uint]int64
	nextID            uint
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{
		services:          make(map[uint]*models.Service),
		appointmentCounts: make(map[uint]int64),
		nextID:            1,
	}
}

func (r *stubServiceRepo) add(name string) *models.Service {
	service := &models.Service{Name: name}
	service.ID = r.nextID
	r.nextID++
	r.services[service.ID] = service
	return service
}

func (r *stubServiceRepo) Create(ctx context.Context, service *models.Service) error {
	for _, existing := range r.services {
		if existing.Name == service.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	service.ID = r.nextID
	r.nextID++
	copied := *service
	r.services[service.ID] = &copied
	return nil
}

func (r *stubServiceRepo) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *service
	return &copied, nil
}

func (r *stubServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	var result []models.Service
	for _, service := range r.services {
		result = append(result, *service)
	}
	return result, nil
}

func (r *stubServiceRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error) {
	result, err := r.FindAll(ctx)
	return result, int64(len(result)), err
}

func (r *stubServiceRepo) Update(ctx context.Context, service *models.Service) error {
	if _, ok := r.services[service.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *service
	r.services[service.ID] = &copied
	return nil
}

func (r *stubServiceRepo) Delete(ctx context.Context, service *models.Service, deletedByUserID uint) error {
	if _, ok := r.services[service.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.services, service.ID)
	return nil
}

func (r *stubServiceRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.services)), nil
}

func (r *stubServiceRepo) CountAppointments(ctx context.Context, serviceID uint) (int64, error) {
	return r.appointmentCounts[serviceID], nil
}

// stubAppointmentRepo IAppointmentRepository'nin bellek içi sahtesi.
type stubAppointmentRepo struct {
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[uint]*models.Appointment), nextID: 1}
}

func (r *stubAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	appointment.ID = r.nextID
	r.nextID++
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *stubAppointmentRepo) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *appointment
	return &copied, nil
}

func (r *stubAppointmentRepo) FindAllByUserIDPaginated(ctx context.Context, ownerUserID uint, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	var result []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.UserID == ownerUserID {
			result = append(result, *appointment)
		}
	}
	return result, int64(len(result)), nil
}

func (r *stubAppointmentRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	var result []models.Appointment
	for _, appointment := range r.appointments {
		result = append(result, *appointment)
	}
	return result, int64(len(result)), nil
}

func (r *stubAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	if _, ok := r.appointments[appointment.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *stubAppointmentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	appointment, ok := r.appointments[id]
	if !ok {
		return repositories.ErrNotFound
	}
	appointment.Status = status
	return nil
}

func (r *stubAppointmentRepo) Delete(ctx context.Context, appointment *models.Appointment, deletedByUserID uint) error {
	if _, ok := r.appointments[appointment.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.appointments, appointment.ID)
	return nil
}

func (r *stubAppointmentRepo) CountByUserID(ctx context.Context, ownerUserID uint) (int64, error) {
	var count int64
	for _, appointment := range r.appointments {
		if appointment.UserID == ownerUserID {
			count++
		}
	}
	return count, nil
}

func (r *stubAppointmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

// stubResetRepo IPasswordResetRepository'nin bellek içi sahtesi.
type stubResetRepo struct {
	tokens map[string]*models.PasswordResetToken
	nextID uint
}

func newStubResetRepo() *stubResetRepo {
	return &stubResetRepo{tokens: make(map[string]*models.PasswordResetToken), nextID: 1}
}

func (r *stubResetRepo) Create(ctx context.Context, token *models.PasswordResetToken) error {
	token.ID = r.nextID
	r.nextID++
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *stubResetRepo) FindUsableByToken(ctx context.Context, token string, now time.Time) (*models.PasswordResetToken, error) {
	found, ok := r.tokens[token]
	if !ok || !found.IsUsable(now) {
		return nil, repositories.ErrNotFound
	}
	copied := *found
	return &copied, nil
}

func (r *stubResetRepo) MarkUsed(ctx context.Context, id uint, now time.Time) error {
	for _, token := range r.tokens {
		if token.ID == id {
			used := now
			token.UsedAt = &used
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Arayüz uyumluluğu derleme zamanında doğrulanır.
var (
	_ repositories.IUserRepository          = (*stubUserRepo)(nil)
	_ repositories.IRoleRepository          = (*stubRoleRepo)(nil)
	_ repositories.IServiceRepository       = (*stubServiceRepo)(nil)
	_ repositories.IAppointmentRepository   = (*stubAppointmentRepo)(nil)
	_ repositories.IPasswordResetRepository = (*stubResetRepo)(nil)
)
