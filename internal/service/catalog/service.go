package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/BeautyBookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает услуги каталога (только активные, если activeOnly)
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, activeOnly=%t", activeOnly)

	services, err := s.catalogRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q", req.Name)

	service := req.ToDomain()
	if err := validateService(service); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, service)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateService) {
			s.logger.Warn("Create: service name=%q already exists", service.Name)
			return nil, ErrDuplicateService
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(service)
	if err := validateService(service); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.catalogRepo.Update(ctx, service)
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			s.logger.Warn("Update: service id=%d not found during update", id)
			return nil, ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrDuplicateService):
			s.logger.Warn("Update: service name=%q already exists", service.Name)
			return nil, ErrDuplicateService
		default:
			s.logger.Error("Update: repository error for service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}
