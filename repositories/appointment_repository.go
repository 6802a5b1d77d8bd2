package repositories

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs"
	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/pkg/turkishsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindAllByUserIDPaginated(ctx context.Context, ownerUserID uint, params queryparams.ListParams) ([]models.Appointment, int64, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, appointment *models.Appointment, deletedByUserID uint) error
	CountByUserID(ctx context.Context, ownerUserID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// AppointmentRepository IAppointmentRepository arayüzünü uygular.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository yeni bir AppointmentRepository örneği oluşturur.
func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configs.GetDB()}
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// listQuery liste filtrelerini (hizmet adı, durum) ortak uygular.
func (r *AppointmentRepository) listQuery(ctx context.Context, params queryparams.ListParams) *gorm.DB {
	query := r.getDB(ctx).Model(&models.Appointment{})
	if params.Name != "" {
		sqlFragment, args := turkishsearch.SQLFilter("services.name", params.Name)
		query = query.
			Joins("JOIN services ON services.id = appointments.service_id").
			Where(sqlFragment, args...)
	}
	if params.Status != "" {
		query = query.Where("appointments.status = ?", params.Status)
	}
	return query
}

func appointmentOrderColumn(sortBy string) string {
	allowedSortColumns := map[string]string{
		"id":               "appointments.id",
		"appointment_date": "appointments.appointment_date",
		"status":           "appointments.status",
		"created_at":       "appointments.created_at",
	}
	if col, ok := allowedSortColumns[sortBy]; ok {
		return col
	}
	// Belirlenimci varsayılan: randevu tarihine göre.
	return "appointments.appointment_date"
}

// Create yeni bir randevu kaydı oluşturur.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.UserID == 0 || appointment.ServiceID == 0 {
		return errors.New("sahibi veya hizmeti olmayan randevu oluşturulamaz")
	}
	return r.getDB(ctx).Create(appointment).Error
}

// FindByID randevuyu sahibi (rolüyle) ve hizmetiyle birlikte getirir.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Appointment ID")
	}
	var appointment models.Appointment
	err := r.getDB(ctx).Preload("User.Role").Preload("Service").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// FindAllByUserIDPaginated sahibine ait randevuları sayfalayarak getirir.
func (r *AppointmentRepository) FindAllByUserIDPaginated(ctx context.Context, ownerUserID uint, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	if ownerUserID == 0 {
		return nil, 0, errors.New("geçersiz sahip kullanıcı ID")
	}
	query := r.listQuery(ctx, params).Where("appointments.user_id = ?", ownerUserID)
	return r.findPage(query, params, zap.Uint("ownerUserID", ownerUserID))
}

// FindAllPaginated tüm randevuları sahiplik filtresi olmadan getirir (dashboard).
func (r *AppointmentRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	return r.findPage(r.listQuery(ctx, params), params)
}

func (r *AppointmentRepository) findPage(query *gorm.DB, params queryparams.ListParams, fields ...zap.Field) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var totalCount int64

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.Count (Paginated): DB error", append(fields, zap.Error(err))...)
		return nil, 0, err
	}
	if totalCount == 0 {
		return appointments, 0, nil
	}

	err := query.
		Preload("User").
		Preload("Service").
		Order(appointmentOrderColumn(params.SortBy) + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.Find (Paginated): DB error", append(fields, zap.Error(err))...)
		return nil, totalCount, err
	}
	return appointments, totalCount, nil
}

// Update randevuyu Save ile günceller. UserID değiştirilmez; servis katmanı
// mevcut kaydı okuyup yalnızca hizmet ve tarihi ezer.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("güncellenecek randevu geçerli değil")
	}
	return r.getDB(ctx).Save(appointment).Error
}

// UpdateStatus yalnızca durum sütununu değiştirir (herhangi bir durumdan
// herhangi bir duruma; geçiş grafiği kısıtı yoktur).
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	if id == 0 || status == "" {
		return errors.New("geçersiz randevu ID veya durum")
	}
	result := r.getDB(ctx).Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.UpdateStatus: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Aynı duruma güncelleme de 0 satır etkileyebilir; kaydın varlığını ayır.
		var exists int64
		if err := r.getDB(ctx).Model(&models.Appointment{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// Delete randevuyu soft delete ile siler ve DeletedBy'ı işler.
func (r *AppointmentRepository) Delete(ctx context.Context, appointment *models.Appointment, deletedByUserID uint) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("silinecek randevu geçerli değil")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}

	result := r.getDB(ctx).Model(appointment).Where("id = ? AND deleted_at IS NULL", appointment.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.Delete: DB error", zap.Uint("id", appointment.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByUserID sahibine ait randevu sayısını döndürür.
func (r *AppointmentRepository) CountByUserID(ctx context.Context, ownerUserID uint) (int64, error) {
	if ownerUserID == 0 {
		return 0, errors.New("geçersiz sahip kullanıcı ID")
	}
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Where("user_id = ?", ownerUserID).Count(&count).Error
	return count, err
}

// Count silinmemiş randevu sayısını döndürür.
func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Count(&count).Error
	return count, err
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
