package identity_test

import (
	"context"
	"testing"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/middleware"
	"github.com/SscSPs/patient_decisions_app/internal/platform/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextProvider(t *testing.T) {
	provider := identity.ContextProvider{}

	_, err := provider.CurrentActorID(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoActor)

	ctx := middleware.WithActor(context.Background(), &domain.ActorProfile{ID: "actor-1", Name: "Test"})
	id, err := provider.CurrentActorID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "actor-1", id)

	profile, err := provider.CurrentActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test", profile.Name)
}

func TestStatic(t *testing.T) {
	id, err := identity.NewStatic("importer").CurrentActorID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "importer", id)

	_, err = identity.Static{}.CurrentActor(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoActor)
}
