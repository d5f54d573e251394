// Package identity provides the IdentityProvider implementations: one backed
// by the authenticated request context, one fixed actor for offline tooling.
package identity

import (
	"context"
	"errors"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/providers"
	"github.com/SscSPs/patient_decisions_app/internal/middleware"
)

// ErrNoActor is returned when no authenticated actor is attached to the context.
var ErrNoActor = errors.New("no authenticated actor in context")

// ContextProvider reads the actor placed in the request context by
// middleware.AuthMiddleware.
type ContextProvider struct{}

var _ providers.IdentityProvider = ContextProvider{}

func (ContextProvider) CurrentActorID(ctx context.Context) (string, error) {
	actor, ok := middleware.GetActorFromCtx(ctx)
	if !ok {
		return "", ErrNoActor
	}
	return actor.ID, nil
}

func (ContextProvider) CurrentActor(ctx context.Context) (*domain.ActorProfile, error) {
	actor, ok := middleware.GetActorFromCtx(ctx)
	if !ok {
		return nil, ErrNoActor
	}
	profile := *actor
	return &profile, nil
}

// Static always reports the same actor.
type Static struct {
	Profile domain.ActorProfile
}

var _ providers.IdentityProvider = Static{}

// NewStatic returns a provider for actorID.
func NewStatic(actorID string) Static {
	return Static{Profile: domain.ActorProfile{ID: actorID, Name: actorID}}
}

func (s Static) CurrentActorID(context.Context) (string, error) {
	if s.Profile.ID == "" {
		return "", ErrNoActor
	}
	return s.Profile.ID, nil
}

func (s Static) CurrentActor(context.Context) (*domain.ActorProfile, error) {
	if s.Profile.ID == "" {
		return nil, ErrNoActor
	}
	profile := s.Profile
	return &profile, nil
}
