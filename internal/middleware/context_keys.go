package middleware

import (
	"context"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
)

// actorCtxKey is the key used to store the authenticated actor in the request context.
const actorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the authenticated actor.
func WithActor(ctx context.Context, actor *domain.ActorProfile) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// GetActorFromCtx retrieves the authenticated actor from the request context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromCtx(ctx context.Context) (*domain.ActorProfile, bool) {
	if ctx == nil {
		return nil, false
	}
	actor, ok := ctx.Value(actorCtxKey).(*domain.ActorProfile)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}
