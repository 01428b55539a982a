package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	actorCtxKey  = contextKey("actor")
)

// GetActorFromContext retrieves the authenticated actor placed in the request
// context by the auth middleware. It returns false when no identity is set.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	val := c.Request.Context().Value(actorCtxKey)
	if val == nil {
		return domain.Actor{}, false
	}
	actor, ok := val.(domain.Actor)
	return actor, ok
}

// WithActor returns a context carrying the given actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}
