package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		tier     apperrors.Tier
		severity apperrors.Severity
	}{
		{"null entity", apperrors.NewFailure(apperrors.KindNullEntity, "Null decision error occurred.", nil), apperrors.TierValidation, apperrors.SeverityError},
		{"null collection", apperrors.NewFailure(apperrors.KindNullCollection, "x", nil), apperrors.TierValidation, apperrors.SeverityError},
		{"invalid", apperrors.NewInvalid(apperrors.KindInvalid, "x", map[string][]string{"Id": {"Id is required"}}), apperrors.TierValidation, apperrors.SeverityError},
		{"provenance", apperrors.NewInvalid(apperrors.KindProvenanceMismatch, "x", nil), apperrors.TierValidation, apperrors.SeverityError},
		{"not found", apperrors.NewFailure(apperrors.KindNotFound, "x", nil), apperrors.TierValidation, apperrors.SeverityError},
		{"duplicate", fmt.Errorf("insert: %w", apperrors.ErrDuplicate), apperrors.TierDependencyValidation, apperrors.SeverityError},
		{"invalid reference", fmt.Errorf("insert: %w", apperrors.ErrInvalidReference), apperrors.TierDependencyValidation, apperrors.SeverityError},
		{"locked", fmt.Errorf("update: %w", apperrors.ErrLocked), apperrors.TierDependencyValidation, apperrors.SeverityError},
		{"connectivity", fmt.Errorf("select: %w", apperrors.ErrConnectivity), apperrors.TierDependency, apperrors.SeverityCritical},
		{"storage", fmt.Errorf("select: %w", apperrors.ErrStorage), apperrors.TierDependency, apperrors.SeverityError},
		{"unknown", errors.New("boom"), apperrors.TierService, apperrors.SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, severity := apperrors.Classify(tt.err)
			assert.Equal(t, tt.tier, tier)
			assert.Equal(t, tt.severity, severity)
		})
	}
}

func TestClassified_WrapsStorageErrors(t *testing.T) {
	raw := fmt.Errorf("failed to insert decisions d-1: %w", apperrors.ErrDuplicate)

	svcErr := apperrors.Classified("Decision", raw)

	assert.Equal(t, apperrors.TierDependencyValidation, svcErr.Tier)
	assert.Equal(t, "Decision dependency validation error occurred, fix the errors and try again.", svcErr.Message)
	failure, ok := svcErr.Failure()
	require.True(t, ok)
	assert.Equal(t, apperrors.KindAlreadyExists, failure.Kind)
	assert.Equal(t, "Already exists decision error occurred.", failure.Message)
	assert.ErrorIs(t, svcErr, apperrors.ErrDuplicate)
	assert.ErrorIs(t, svcErr, raw)
}

func TestClassified_KeepsFailureAsInner(t *testing.T) {
	inner := apperrors.NewInvalid(apperrors.KindInvalid, "Invalid consumer adoption. Please correct the errors and try again.",
		map[string][]string{"ConsumerId": {"Id is required"}})

	svcErr := apperrors.Classified("ConsumerAdoption", inner)

	assert.Equal(t, apperrors.TierValidation, svcErr.Tier)
	assert.Equal(t, "Consumer adoption validation error occurred, fix the errors and try again.", svcErr.Message)
	assert.Same(t, inner, svcErr.Inner)
	assert.ErrorIs(t, svcErr, apperrors.ErrValidation)
}

func TestClassified_PassesServiceErrorThrough(t *testing.T) {
	first := apperrors.Classified("DecisionType", fmt.Errorf("ping: %w", apperrors.ErrConnectivity))
	wrapped := fmt.Errorf("batch 2 of 3: %w", first)

	second := apperrors.Classified("DecisionType", wrapped)

	assert.Same(t, first, second)
	assert.Equal(t, apperrors.TierDependency, second.Tier)
	assert.Equal(t, apperrors.SeverityCritical, second.Severity)
	assert.Equal(t, "Decision type dependency error occurred, contact support.", second.Message)
}

func TestClassified_UnknownIsServiceTier(t *testing.T) {
	svcErr := apperrors.Classified("Decision", errors.New("no authenticated actor in context"))

	assert.Equal(t, apperrors.TierService, svcErr.Tier)
	assert.Equal(t, "Decision service error occurred, contact support.", svcErr.Message)
	assert.Equal(t, apperrors.KindUnknown, apperrors.KindOf(svcErr))
}

func TestFailureErrorMessageIncludesFields(t *testing.T) {
	err := apperrors.NewInvalid(apperrors.KindInvalid, "Invalid decision.", map[string][]string{
		"Name": {"Text is required"},
		"Id":   {"Id is required"},
	})

	assert.Equal(t, "Invalid decision. (Id: [Id is required], Name: [Text is required])", err.Error())
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "consumer adoption", apperrors.Humanize("ConsumerAdoption"))
	assert.Equal(t, "decision type", apperrors.Humanize("DecisionType"))
	assert.Equal(t, "decision", apperrors.Humanize("Decision"))
}
