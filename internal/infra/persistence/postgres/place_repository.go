package postgres

import (
	"context"

	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// ListPlacesByOwner retrieves all places owned by a user.
func (repo *placeRepository) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Place, error) {
	var placeModels []*model.PlaceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places by owner")
	}

	places := make([]*entity.Place, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// ListOwnerIDs retrieves the distinct owners that have at least one place.
func (repo *placeRepository) ListOwnerIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ownerIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Distinct("owner_id").
		Pluck("owner_id", &ownerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list place owner IDs")
	}

	return ownerIDs, nil
}

// --- Mapper Functions ---

// toPlaceDomain converts a GORM PlaceModel to a domain Place entity.
func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:      data.ID,
		OwnerID: data.OwnerID,
		Name:    data.Name,
		Center: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		RadiusMeters:    data.RadiusMeters,
		SelectedMembers: data.SelectedMembers,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
