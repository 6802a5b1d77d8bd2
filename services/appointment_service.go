package services

import (
	"context"
	"errors"
	"time"

	"randevu.link/configs/configslog"
	"randevu.link/models"
	"randevu.link/pkg/queryparams"
	"randevu.link/repositories"

	"go.uber.org/zap"
)

// AppointmentServiceError özel servis hataları
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

// Hata sabitleri
const (
	ErrAppointmentNotFound     AppointmentServiceError = "randevu bulunamadı"
	ErrAppointmentForbidden    AppointmentServiceError = "bu işlem için yetkiniz yok"
	ErrAppointmentOwnerMissing AppointmentServiceError = "kullanıcı bulunamadı, lütfen tekrar giriş yapın"
	ErrServiceRequired         AppointmentServiceError = "lütfen bir hizmet seçin"
	ErrServiceMissing          AppointmentServiceError = "seçilen hizmet bulunamadı"
	ErrAppointmentDateRequired AppointmentServiceError = "randevu tarihi zorunludur"
	ErrInvalidStatus           AppointmentServiceError = "geçersiz randevu durumu"
)

// IAppointmentService randevu yaşam döngüsü işlemleri için arayüz.
type IAppointmentService interface {
	CreateAppointment(ctx context.Context, ownerUserID, serviceID uint, date time.Time) (*models.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uint, requestingUserID uint) (*models.Appointment, error)
	GetAppointmentsForUser(ctx context.Context, ownerUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetAllAppointmentsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateAppointment(ctx context.Context, id uint, actingUserID uint, serviceID uint, date time.Time) error
	UpdateAppointmentStatus(ctx context.Context, id uint, actingUserID uint, status string) error
	DeleteAppointment(ctx context.Context, id uint, actingUserID uint) error
	GetAppointmentCountForUser(ctx context.Context, ownerUserID uint) (int64, error)
	GetAppointmentCount(ctx context.Context) (int64, error)
}

// AppointmentService IAppointmentService arayüzünü uygular.
// Her işlem tek okuma-yazma dizisidir; açık transaction kullanılmaz
// (düşük çekişme, son yazan kazanır — bilinen ve kabul edilen boşluk).
type AppointmentService struct {
	repo        repositories.IAppointmentRepository
	serviceRepo repositories.IServiceRepository
	userRepo    repositories.IUserRepository
}

// NewAppointmentService yeni bir AppointmentService örneği oluşturur.
func NewAppointmentService() IAppointmentService {
	return &AppointmentService{
		repo:        repositories.NewAppointmentRepository(),
		serviceRepo: repositories.NewServiceRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// contextWithUserID BaseModel hook'larının audit alanlarını doldurması için.
func contextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, models.ContextUserIDKey, userID)
}

// resolveActor işlemi yapan kullanıcıyı rolüyle birlikte çözer.
func (s *AppointmentService) resolveActor(ctx context.Context, userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, ErrAppointmentOwnerMissing
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentOwnerMissing
		}
		return nil, err
	}
	return user, nil
}

// checkService hizmet seçimini doğrular.
func (s *AppointmentService) checkService(ctx context.Context, serviceID uint) error {
	if serviceID == 0 {
		return ErrServiceRequired
	}
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrServiceMissing
		}
		return err
	}
	return nil
}

// CreateAppointment yeni randevu oluşturur. Durum, istemciden ne gelirse
// gelsin koşulsuz Bekliyor olarak yazılır; sahip oturumdaki kullanıcıdır.
func (s *AppointmentService) CreateAppointment(ctx context.Context, ownerUserID, serviceID uint, date time.Time) (*models.Appointment, error) {
	owner, err := s.resolveActor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	if err := s.checkService(ctx, serviceID); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, ErrAppointmentDateRequired
	}

	appointment := &models.Appointment{
		UserID:          owner.ID,
		ServiceID:       serviceID,
		AppointmentDate: date,
		Status:          models.AppointmentStatusPending,
	}
	if err := s.repo.Create(contextWithUserID(ctx, ownerUserID), appointment); err != nil {
		configslog.Log.Error("CreateAppointment: kayıt oluşturulamadı",
			zap.Uint("ownerUserID", ownerUserID), zap.Uint("serviceID", serviceID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Randevu oluşturuldu: ID %d (Sahip: %d, Hizmet: %d)", appointment.ID, ownerUserID, serviceID)
	return appointment, nil
}

// GetAppointmentByID randevuyu getirir; sahibi olmayan ve yönetici olmayan
// istekler reddedilir.
func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uint, requestingUserID uint) (*models.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	requestingUser, err := s.resolveActor(ctx, requestingUserID)
	if err != nil {
		return nil, ErrAppointmentForbidden
	}
	if !requestingUser.IsAdmin() && appointment.UserID != requestingUserID {
		return nil, ErrAppointmentForbidden
	}
	return appointment, nil
}

// GetAppointmentsForUser sahibine ait randevuları hizmet ve kullanıcı
// bilgisiyle, varsayılan olarak randevu tarihine göre artan sırada döndürür.
func (s *AppointmentService) GetAppointmentsForUser(ctx context.Context, ownerUserID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if ownerUserID == 0 {
		return nil, ErrAppointmentOwnerMissing
	}
	params.Validate()

	appointments, totalCount, err := s.repo.FindAllByUserIDPaginated(ctx, ownerUserID, params)
	if err != nil {
		configslog.Log.Error("Kullanıcı randevuları alınırken hata", zap.Uint("ownerUserID", ownerUserID), zap.Error(err))
		return nil, err
	}
	return paginate(appointments, totalCount, params), nil
}

// GetAllAppointmentsPaginated tüm randevuları döndürür (yönetici görünümü).
func (s *AppointmentService) GetAllAppointmentsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	appointments, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("Tüm randevular alınırken hata", zap.Error(err))
		return nil, err
	}
	return paginate(appointments, totalCount, params), nil
}

func paginate(data interface{}, totalCount int64, params queryparams.ListParams) *queryparams.PaginatedResult {
	return &queryparams.PaginatedResult{
		Data: data,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}
}

// UpdateAppointment hizmet ve tarihi günceller. Sahiplik zorunludur
// (yönetici hariç); durum ve sahip bu yoldan değiştirilemez.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uint, actingUserID uint, serviceID uint, date time.Time) error {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	actor, err := s.resolveActor(ctx, actingUserID)
	if err != nil {
		return ErrAppointmentForbidden
	}
	if !actor.IsAdmin() && appointment.UserID != actingUserID {
		return ErrAppointmentForbidden
	}

	if err := s.checkService(ctx, serviceID); err != nil {
		return err
	}
	if date.IsZero() {
		return ErrAppointmentDateRequired
	}

	appointment.ServiceID = serviceID
	appointment.AppointmentDate = date
	// Preload edilen ilişkiyi yeni ServiceID ile tutarsız bırakmamak için sıfırla.
	appointment.Service = models.Service{}
	appointment.User = models.User{}

	if err := s.repo.Update(contextWithUserID(ctx, actingUserID), appointment); err != nil {
		configslog.Log.Error("UpdateAppointment: kayıt güncellenemedi",
			zap.Uint("id", id), zap.Uint("actingUserID", actingUserID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Randevu güncellendi: ID %d (Güncelleyen: %d)", id, actingUserID)
	return nil
}

// UpdateAppointmentStatus randevu durumunu değiştirir (yalnızca yönetici).
// Tanımlı kümedeki herhangi bir durumdan herhangi birine geçiş serbesttir ve
// aynı durumun yeniden uygulanması gözlemlenebilir durumu değiştirmez.
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id uint, actingUserID uint, status string) error {
	actor, err := s.resolveActor(ctx, actingUserID)
	if err != nil {
		return ErrAppointmentForbidden
	}
	if !actor.IsAdmin() {
		return ErrAppointmentForbidden
	}
	if !models.IsValidAppointmentStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(contextWithUserID(ctx, actingUserID), id, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("UpdateAppointmentStatus: durum güncellenemedi",
			zap.Uint("id", id), zap.String("status", status), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Randevu durumu güncellendi: ID %d -> %s (Güncelleyen: %d)", id, status, actingUserID)
	return nil
}

// DeleteAppointment randevuyu siler; sahibi veya yönetici yapabilir.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint, actingUserID uint) error {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	actor, err := s.resolveActor(ctx, actingUserID)
	if err != nil {
		return ErrAppointmentForbidden
	}
	if !actor.IsAdmin() && appointment.UserID != actingUserID {
		return ErrAppointmentForbidden
	}

	if err := s.repo.Delete(contextWithUserID(ctx, actingUserID), appointment, actingUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("DeleteAppointment: kayıt silinemedi",
			zap.Uint("id", id), zap.Uint("actingUserID", actingUserID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Randevu silindi: ID %d (Silen: %d)", id, actingUserID)
	return nil
}

// GetAppointmentCountForUser sahibine ait randevu sayısını döndürür.
func (s *AppointmentService) GetAppointmentCountForUser(ctx context.Context, ownerUserID uint) (int64, error) {
	return s.repo.CountByUserID(ctx, ownerUserID)
}

// GetAppointmentCount toplam randevu sayısını döndürür (dashboard ana sayfa).
func (s *AppointmentService) GetAppointmentCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

var _ IAppointmentService = (*AppointmentService)(nil)
