package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"placeshare/internal/model"
)

// PlaceRepository defines place persistence operations. CreateWithOwner and
// DeleteWithOwner pair the place write with the owner-side write inside a
// single transaction so that neither lands without the other.
type PlaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error)
	FindByIDWithCreator(ctx context.Context, id uuid.UUID) (*model.Place, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	CreateWithOwner(ctx context.Context, place *model.Place) error
	DeleteWithOwner(ctx context.Context, place *model.Place) error
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository creates a new place repository.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// FindByID finds a place by ID.
func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// FindByIDWithCreator finds a place by ID with its creator expanded.
func (r *placeRepository) FindByIDWithCreator(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Preload("Creator").
		Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

// ListByCreator lists a user's places, oldest first. An empty result is not
// an error.
func (r *placeRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at asc").
		Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// Update persists title/description mutations.
func (r *placeRepository) Update(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

// CreateWithOwner inserts the place and appends it to the owner's collection
// in one transaction. The owner row is locked for the duration so the place
// cannot attach to a user mutated concurrently.
func (r *placeRepository) CreateWithOwner(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", place.CreatorID).First(&owner).Error; err != nil {
			return err
		}
		if err := tx.Create(place).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", owner.ID).
			Update("updated_at", time.Now()).Error
	})
}

// DeleteWithOwner removes the place and detaches it from the owner's
// collection in one transaction.
func (r *placeRepository) DeleteWithOwner(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", place.CreatorID).First(&owner).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", place.ID).Delete(&model.Place{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", owner.ID).
			Update("updated_at", time.Now()).Error
	})
}
