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

// IServiceRepository hizmet kataloğu veritabanı işlemleri için arayüz.
type IServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, service *models.Service, deletedByUserID uint) error
	Count(ctx context.Context) (int64, error)
	CountAppointments(ctx context.Context, serviceID uint) (int64, error)
}

// ServiceRepository IServiceRepository arayüzünü uygular.
type ServiceRepository struct {
	db *gorm.DB
}

// NewServiceRepository yeni bir ServiceRepository örneği oluşturur.
func NewServiceRepository() IServiceRepository {
	return &ServiceRepository{db: configs.GetDB()}
}

func (r *ServiceRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir hizmet kaydı oluşturur.
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if service == nil || service.Name == "" {
		return errors.New("adı boş hizmet oluşturulamaz")
	}
	return r.getDB(ctx).Create(service).Error
}

// FindByID belirli bir ID'ye sahip hizmeti bulur.
func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Service ID")
	}
	var service models.Service
	err := r.getDB(ctx).First(&service, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ServiceRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &service, nil
}

// FindAll tüm hizmetleri ada göre sıralı döndürür (dropdown için).
func (r *ServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.getDB(ctx).Order("name asc").Find(&services).Error
	if err != nil {
		configslog.Log.Error("ServiceRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return services, nil
}

// FindAllPaginated hizmetleri sayfalayarak getirir (dashboard listesi).
func (r *ServiceRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Service, int64, error) {
	var services []models.Service
	var totalCount int64

	query := r.getDB(ctx).Model(&models.Service{})
	if params.Name != "" {
		sqlFragment, args := turkishsearch.SQLFilter("services.name", params.Name)
		query = query.Where(sqlFragment, args...)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("ServiceRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return services, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "services.id",
		"name":       "services.name",
		"created_at": "services.created_at",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "services.name"
	}

	err := query.
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&services).Error
	if err != nil {
		configslog.Log.Error("ServiceRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return services, totalCount, nil
}

// Update hizmeti Save ile günceller.
func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	if service == nil || service.ID == 0 {
		return errors.New("güncellenecek hizmet geçerli değil")
	}
	return r.getDB(ctx).Save(service).Error
}

// Delete hizmeti soft delete ile siler.
func (r *ServiceRepository) Delete(ctx context.Context, service *models.Service, deletedByUserID uint) error {
	if service == nil || service.ID == 0 {
		return errors.New("silinecek hizmet geçerli değil")
	}
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}

	result := r.getDB(ctx).Model(service).Where("id = ? AND deleted_at IS NULL", service.ID).Updates(updateData)
	if result.Error != nil {
		configslog.Log.Error("ServiceRepository.Delete: DB error", zap.Uint("id", service.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count silinmemiş hizmet sayısını döndürür.
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Service{}).Count(&count).Error
	return count, err
}

// CountAppointments hizmete bağlı randevu sayısını döndürür (silme koruması).
func (r *ServiceRepository) CountAppointments(ctx context.Context, serviceID uint) (int64, error) {
	if serviceID == 0 {
		return 0, errors.New("geçersiz Service ID")
	}
	var count int64
	err := r.getDB(ctx).Model(&models.Appointment{}).Where("service_id = ?", serviceID).Count(&count).Error
	return count, err
}

var _ IServiceRepository = (*ServiceRepository)(nil)
