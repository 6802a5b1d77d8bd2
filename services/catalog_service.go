package services

import (
	"context"
	"errors"
	"strings"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogServiceError özel servis hataları
type CatalogServiceError string

func (e CatalogServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrCatalogServiceNotFound CatalogServiceError = "hizmet bulunamadı"
	ErrServiceNameRequired    CatalogServiceError = "hizmet adı zorunludur"
	ErrServiceNameTaken       CatalogServiceError = "bu adda bir hizmet zaten var"
	ErrServiceInUse           CatalogServiceError = "bu hizmete bağlı randevular olduğu için silinemez"
)

// ICatalogService randevu alınabilen hizmet kataloğu işlemleri için arayüz.
type ICatalogService interface {
	GetAllServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	GetAllServicesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	CreateService(ctx context.Context, actingUserID uint, name, description string) (*models.Service, error)
	UpdateService(ctx context.Context, actingUserID uint, id uint, name, description string) error
	DeleteService(ctx context.Context, actingUserID uint, id uint) error
	GetServiceCount(ctx context.Context) (int64, error)
}

// CatalogService ICatalogService arayüzünü uygular.
type CatalogService struct {
	repo repositories.IServiceRepository
}

// NewCatalogService yeni bir CatalogService örneği oluşturur.
func NewCatalogService() ICatalogService {
	return &CatalogService{repo: repositories.NewServiceRepository()}
}

// GetAllServices dropdown için tüm hizmetleri döndürür.
func (s *CatalogService) GetAllServices(ctx context.Context) ([]models.Service, error) {
	return s.repo.FindAll(ctx)
}

// GetServiceByID belirli bir hizmeti getirir.
func (s *CatalogService) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCatalogServiceNotFound
		}
		return nil, err
	}
	return service, nil
}

// GetAllServicesPaginated hizmetleri listeler (dashboard).
func (s *CatalogService) GetAllServicesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	services, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Hizmet listesi alınırken hata", zap.Error(err))
		return nil, err
	}
	return paginate(services, totalCount, params), nil
}

// CreateService yeni hizmet kaydı oluşturur.
func (s *CatalogService) CreateService(ctx context.Context, actingUserID uint, name, description string) (*models.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrServiceNameRequired
	}

	service := &models.Service{Name: name, Description: description}
	if err := s.repo.Create(contextWithUserID(ctx, actingUserID), service); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrServiceNameTaken
		}
		configslog.Log.Error("CreateService: hizmet oluşturulamadı", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Hizmet oluşturuldu: %s (ID %d, Oluşturan: %d)", service.Name, service.ID, actingUserID)
	return service, nil
}

// UpdateService hizmet bilgisini günceller.
func (s *CatalogService) UpdateService(ctx context.Context, actingUserID uint, id uint, name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrServiceNameRequired
	}

	service, err := s.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}
	service.Name = name
	service.Description = description

	if err := s.repo.Update(contextWithUserID(ctx, actingUserID), service); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrServiceNameTaken
		}
		configslog.Log.Error("UpdateService: hizmet güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Hizmet güncellendi: ID %d (Güncelleyen: %d)", id, actingUserID)
	return nil
}

// DeleteService hizmeti siler; bağlı randevusu olan hizmet silinemez.
func (s *CatalogService) DeleteService(ctx context.Context, actingUserID uint, id uint) error {
	service, err := s.GetServiceByID(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.repo.CountAppointments(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return ErrServiceInUse
	}

	if err := s.repo.Delete(contextWithUserID(ctx, actingUserID), service, actingUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCatalogServiceNotFound
		}
		configslog.Log.Error("DeleteService: hizmet silinemedi", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Hizmet silindi: ID %d (Silen: %d)", id, actingUserID)
	return nil
}

// GetServiceCount toplam hizmet sayısını döndürür (dashboard ana sayfa).
func (s *CatalogService) GetServiceCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

var _ ICatalogService = (*CatalogService)(nil)
