package services

import (
	"context"
	"errors"
	"testing"
)

func TestCreateServiceValidatesName(t *testing.T) {
	service := &CatalogService{repo: newStubServiceRepo()}

	if _, err := service.CreateService(context.Background(), 1, "   ", "açıklama"); !errors.Is(err, ErrServiceNameRequired) {
		t.Errorf("ErrServiceNameRequired bekleniyordu, %v geldi", err)
	}
}

func TestCreateServiceRejectsDuplicateName(t *testing.T) {
	repo := newStubServiceRepo()
	repo.add("Saç Kesimi")
	service := &CatalogService{repo: repo}

	if _, err := service.CreateService(context.Background(), 1, "Saç Kesimi", ""); !errors.Is(err, ErrServiceNameTaken) {
		t.Errorf("ErrServiceNameTaken bekleniyordu, %v geldi", err)
	}
}

func TestDeleteServiceBlockedWhenInUse(t *testing.T) {
	repo := newStubServiceRepo()
	catalog := repo.add("Saç Kesimi")
	repo.appointmentCounts[catalog.ID] = 3
	service := &CatalogService{repo: repo}
	ctx := context.Background()

	if err := service.DeleteService(ctx, 1, catalog.ID); !errors.Is(err, ErrServiceInUse) {
		t.Errorf("ErrServiceInUse bekleniyordu, %v geldi", err)
	}

	repo.appointmentCounts[catalog.ID] = 0
	if err := service.DeleteService(ctx, 1, catalog.ID); err != nil {
		t.Fatalf("DeleteService hata döndürdü: %v", err)
	}
	if _, err := service.GetServiceByID(ctx, catalog.ID); !errors.Is(err, ErrCatalogServiceNotFound) {
		t.Errorf("silinen hizmet: ErrCatalogServiceNotFound bekleniyordu, %v geldi", err)
	}
}
