// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"connkeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for member persistence.
var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")
)

// MemberRepository defines the interface for member-related database operations.
type MemberRepository interface {
	// FindMemberByID retrieves a member by its unique ID.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindMemberByUserID retrieves the member record fed by the given account.
	// Used by the sampler pipeline to locate the record a new sample belongs to.
	FindMemberByUserID(ctx context.Context, userID uuid.UUID) (*entity.Member, error)

	// ListMembersByUserIDs retrieves members for a list of account IDs in one
	// query. Used for batch fetching a place's monitored members.
	ListMembersByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Member, error)

	// ListMembersByInviter retrieves every member tracked by the given owner.
	ListMembersByInviter(ctx context.Context, inviterUserID uuid.UUID) ([]*entity.Member, error)

	// UpdateMemberLocation overwrites a member's current location and
	// last-updated timestamp.
	UpdateMemberLocation(ctx context.Context, memberID uuid.UUID, location entity.Coordinate, updatedAt time.Time) error
}
