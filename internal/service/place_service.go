package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placeshare/internal/cache"
	apperrors "placeshare/internal/errors"
	"placeshare/internal/geo"
	"placeshare/internal/model"
	"placeshare/internal/repository"
	"placeshare/internal/storage"
)

const placeCacheTTL = 5 * time.Minute

// PlaceService handles place CRUD with ownership checks.
type PlaceService interface {
	GetPlace(ctx context.Context, id uuid.UUID) (*model.Place, error)
	ListPlacesByUser(ctx context.Context, userID uuid.UUID) ([]model.Place, error)
	CreatePlace(ctx context.Context, creatorID uuid.UUID, title, description, address, imagePath string) (*model.Place, error)
	UpdatePlace(ctx context.Context, placeID, callerID uuid.UUID, title, description string) (*model.Place, error)
	DeletePlace(ctx context.Context, placeID, callerID uuid.UUID) error
}

type placeService struct {
	placeRepo repository.PlaceRepository
	userRepo  repository.UserRepository
	geocoder  geo.Geocoder
	files     storage.FileStore
	cache     *cache.Client
}

// NewPlaceService creates a new place service.
func NewPlaceService(
	placeRepo repository.PlaceRepository,
	userRepo repository.UserRepository,
	geocoder geo.Geocoder,
	files storage.FileStore,
	cache *cache.Client,
) PlaceService {
	return &placeService{
		placeRepo: placeRepo,
		userRepo:  userRepo,
		geocoder:  geocoder,
		files:     files,
		cache:     cache,
	}
}

func (s *placeService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("place:%s", id)
}

// GetPlace looks up a place by id, cache-aside.
func (s *placeService) GetPlace(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var cached model.Place
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), place, placeCacheTTL)
	return place, nil
}

// ListPlacesByUser returns a user's places. Zero places is a valid result,
// not an error.
func (s *placeService) ListPlacesByUser(ctx context.Context, userID uuid.UUID) ([]model.Place, error) {
	places, err := s.placeRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	if places == nil {
		places = []model.Place{}
	}
	return places, nil
}

// CreatePlace geocodes the address and persists the place together with the
// owner-side write in one transaction. A missing creator is an internal
// inconsistency given a valid token, so it maps to a server error rather
// than a 404.
func (s *placeService) CreatePlace(ctx context.Context, creatorID uuid.UUID, title, description, address, imagePath string) (*model.Place, error) {
	if _, err := s.userRepo.FindByID(ctx, creatorID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrMissingCreator
		}
		return nil, fmt.Errorf("find creator: %w", err)
	}

	point, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}

	place := &model.Place{
		Title:       title,
		Description: description,
		Address:     address,
		Location:    model.Location{Lat: point.Lat, Lng: point.Lng},
		Image:       imagePath,
		CreatorID:   creatorID,
	}

	if err := s.placeRepo.CreateWithOwner(ctx, place); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	return place, nil
}

// UpdatePlace mutates title and description, creator only.
func (s *placeService) UpdatePlace(ctx context.Context, placeID, callerID uuid.UUID, title, description string) (*model.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}

	if place.CreatorID != callerID {
		return nil, apperrors.ErrNotPlaceOwner
	}

	place.Title = title
	place.Description = description

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(placeID))
	return place, nil
}

// DeletePlace removes a place and detaches it from its owner atomically,
// then deletes the stored image. The file removal is fire-and-forget: its
// failure is logged, never surfaced.
func (s *placeService) DeletePlace(ctx context.Context, placeID, callerID uuid.UUID) error {
	place, err := s.placeRepo.FindByIDWithCreator(ctx, placeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrPlaceGone
		}
		return fmt.Errorf("find place: %w", err)
	}

	if place.CreatorID != callerID {
		return apperrors.ErrNotPlaceOwnerDelete
	}

	imagePath := place.Image

	if err := s.placeRepo.DeleteWithOwner(ctx, place); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(placeID))

	if imagePath != "" {
		if err := s.files.Remove(imagePath); err != nil {
			log.Printf("remove place image %s: %v", imagePath, err)
		}
	}

	return nil
}
