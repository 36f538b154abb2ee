package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/pkg/apierrors"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderUserBU   = "X-User-BU"

	actorKey = "actor"
)

// ActorMiddleware resolves the caller from the identity headers set by the auth gateway and
// aborts with 401 when they are missing or malformed.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorFromHeaders(c)
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, GetLang(c)),
			)
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) (domain.Actor, bool) {
	value, exists := c.Get(actorKey)
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := value.(domain.Actor)
	return actor, ok
}

func actorFromHeaders(c *gin.Context) (domain.Actor, bool) {
	id := strings.TrimSpace(c.GetHeader(HeaderUserID))
	role := domain.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))))
	if id == "" || !role.Valid() {
		return domain.Actor{}, false
	}

	actor := domain.Actor{ID: id, Role: role}
	if raw := strings.ToUpper(strings.TrimSpace(c.GetHeader(HeaderUserBU))); raw != "" {
		bu := domain.BusinessUnit(raw)
		if !bu.Valid() {
			return domain.Actor{}, false
		}
		actor.BusinessUnit = &bu
	}
	return actor, true
}
