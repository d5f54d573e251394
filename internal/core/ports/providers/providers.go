// Package providers declares the leaf collaborators every foundation service
// is constructed with: a clock and the identity of the current caller.
package providers

import (
	"context"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
)

// Clock supplies the current time. Services read it once per operation.
type Clock interface {
	Now() time.Time
}

// IdentityProvider resolves the actor on whose behalf a request runs.
type IdentityProvider interface {
	CurrentActorID(ctx context.Context) (string, error)
	CurrentActor(ctx context.Context) (*domain.ActorProfile, error)
}
