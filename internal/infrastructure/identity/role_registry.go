package identity

import (
	"context"
	"errors"
	"strings"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"
)

var ErrUnknownUser = errors.New("unknown user id")

// PassthroughRoleRegistry resolves role-entity ids by echoing the user id.
// The upstream identity service already guarantees one role profile per user
// and hands us stable ids, so there is nothing to look up here; swapping in an
// HTTP-backed registry is a wiring change in routes only.
type PassthroughRoleRegistry struct{}

var _ interfaces.IRoleRegistry = (*PassthroughRoleRegistry)(nil)

func NewPassthroughRoleRegistry() *PassthroughRoleRegistry {
	return &PassthroughRoleRegistry{}
}

func (r *PassthroughRoleRegistry) ResolveRoleEntity(_ context.Context, userID string, _ entities.Role) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrUnknownUser
	}
	return userID, nil
}
