package interfaces

import (
	"context"

	"agritrade/internal/domain/entities"
)

// IRoleRegistry abstracts the role-profile service that owns farmer,
// distributor and retailer registrations. The trade-engine only needs userID
// to role-entity resolution and is agnostic to the profile shape.
type IRoleRegistry interface {
	ResolveRoleEntity(ctx context.Context, userID string, role entities.Role) (string, error)
}
