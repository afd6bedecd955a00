// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"connkeeper/internal/domain/entity"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// FindMemberByID retrieves a member by its unique ID.
func (repo *memberRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by ID")
	}

	return toMemberDomain(&memberM), nil
}

// FindMemberByUserID retrieves the member record fed by the given account.
func (repo *memberRepository) FindMemberByUserID(ctx context.Context, userID uuid.UUID) (*entity.Member, error) {
	var memberM model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by user ID")
	}

	return toMemberDomain(&memberM), nil
}

// ListMembersByUserIDs retrieves members for a list of account IDs in one query.
func (repo *memberRepository) ListMembersByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Member, error) {
	if len(userIDs) == 0 {
		return []*entity.Member{}, nil
	}

	var memberModels []*model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list members by user IDs")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

// ListMembersByInviter retrieves every member tracked by the given owner.
func (repo *memberRepository) ListMembersByInviter(ctx context.Context, inviterUserID uuid.UUID) ([]*entity.Member, error) {
	var memberModels []*model.MemberModel

	if err := repo.db.WithContext(ctx).
		Where("inviter_user_id = ?", inviterUserID).
		Order("created_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list members by inviter")
	}

	members := make([]*entity.Member, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

// UpdateMemberLocation overwrites a member's current location and last-updated timestamp.
func (repo *memberRepository) UpdateMemberLocation(ctx context.Context, memberID uuid.UUID, location entity.Coordinate, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", memberID).
		Updates(map[string]interface{}{
			"latitude":   location.Latitude,
			"longitude":  location.Longitude,
			"accuracy":   location.Accuracy,
			"heading":    location.Heading,
			"speed":      location.Speed,
			"updated_at": updatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update member location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMemberDomain converts a GORM MemberModel to a domain Member entity.
func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	member := &entity.Member{
		ID:            data.ID,
		UserID:        data.UserID,
		InviterUserID: data.InviterUserID,
		Name:          data.Name,
		ShareLocation: data.ShareLocation,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	// Location columns are NULL until the first accepted sample.
	if data.Latitude != nil && data.Longitude != nil {
		member.CurrentLocation = &entity.Coordinate{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
			Accuracy:  data.Accuracy,
			Heading:   data.Heading,
			Speed:     data.Speed,
		}
	}

	return member
}
