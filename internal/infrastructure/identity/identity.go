// Package identity adapts the upstream identity collaborator. Login and
// token handling live in front of this service; requests arrive with trusted
// headers describing the already-authenticated user.
package identity

import (
	"errors"
	"strings"

	"fluxo_notas/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserNome = "X-User-Nome"
	HeaderUserRole = "X-User-Role"

	contextKey = "identity.user"
)

var ErrUsuarioNaoIdentificado = errors.New("usuário não identificado")

// Middleware extracts the current user from the trusted headers and rejects
// requests without one. Unknown roles degrade to Solicitante.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if id == "" {
			c.AbortWithStatusJSON(401, gin.H{"code": "UNAUTHENTICATED", "message": "Missing identity headers"})
			return
		}
		user := entities.User{
			ID:   id,
			Nome: strings.TrimSpace(c.GetHeader(HeaderUserNome)),
			Role: entities.NormalizeRole(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
		}
		c.Set(contextKey, user)
		c.Next()
	}
}

// FromContext returns the user placed by Middleware.
func FromContext(c *gin.Context) (entities.User, error) {
	v, ok := c.Get(contextKey)
	if !ok {
		return entities.User{}, ErrUsuarioNaoIdentificado
	}
	user, ok := v.(entities.User)
	if !ok {
		return entities.User{}, ErrUsuarioNaoIdentificado
	}
	return user, nil
}
