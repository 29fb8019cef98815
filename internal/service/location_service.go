package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/models"
	"deepsky/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewLocation - тело POST /locations
type NewLocation struct {
	Name      string   `json:"name" validate:"required,max=128"`
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Timezone  string   `json:"timezone" validate:"required"`
	Elevation *float64 `json:"elevation,omitempty"`
	Bortle    *int     `json:"bortle,omitempty" validate:"omitempty,gte=1,lte=9"`
}

type LocationService interface {
	List(ctx context.Context) ([]models.SavedLocation, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SavedLocation, error)
	Create(ctx context.Context, in NewLocation) (*models.SavedLocation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationService struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationService{repo: repo}
}

func (s *locationService) List(ctx context.Context) ([]models.SavedLocation, error) {
	locations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *locationService) Get(ctx context.Context, id uuid.UUID) (*models.SavedLocation, error) {
	location, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: location %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	return location, nil
}

func (s *locationService) Create(ctx context.Context, in NewLocation) (*models.SavedLocation, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := time.LoadLocation(in.Timezone); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, in.Timezone)
	}

	location := &models.SavedLocation{
		Name:      strings.TrimSpace(in.Name),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Timezone:  in.Timezone,
		Elevation: in.Elevation,
		Bortle:    in.Bortle,
	}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: location %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// Resolve возвращает сохранённую точку наблюдения как astro.Location
func Resolve(ctx context.Context, s LocationService, id uuid.UUID) (astro.Location, error) {
	saved, err := s.Get(ctx, id)
	if err != nil {
		return astro.Location{}, err
	}
	return saved.ToLocation(), nil
}
