package handlers

import (
	"net/http"
	"strings"

	"agritrade/internal/domain/entities"
	"agritrade/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

var errMissingActor = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing or invalid actor headers", http.StatusBadRequest)

// actorFromRequest extracts the authenticated caller from the identity
// headers. Authentication itself is owned by the upstream identity service;
// the trade-engine trusts the pair it is handed.
func actorFromRequest(c *gin.Context) (entities.Actor, bool) {
	userID := strings.TrimSpace(c.GetHeader(headerActorID))
	role := entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(headerActorRole))))

	switch role {
	case entities.RoleFarmer, entities.RoleDistributor, entities.RoleRetailer:
	default:
		return entities.Actor{}, false
	}
	if userID == "" {
		return entities.Actor{}, false
	}
	return entities.Actor{UserID: userID, Role: role}, true
}

func rejectMissingActor(c *gin.Context) {
	c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
}
