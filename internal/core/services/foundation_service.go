package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/platform/metrics"
)

// DefaultRecencyWindow bounds how far in the past a write timestamp may be.
const DefaultRecencyWindow = 90 * time.Second

const (
	opAdd             = "add"
	opModify          = "modify"
	opRemoveByID      = "remove_by_id"
	opRetrieveByID    = "retrieve_by_id"
	opRetrieveAll     = "retrieve_all"
	opBulkAddOrModify = "bulk_add_or_modify"
)

type serviceOptions struct {
	batchSize    int
	window       time.Duration
	metrics      *metrics.Metrics
	actorProfile bool
}

// ServiceOption is a functional option for configuring a foundation service
type ServiceOption func(*serviceOptions)

// WithBatchSize sets the batch size BulkAddOrModify uses.
func WithBatchSize(size int) ServiceOption {
	return func(o *serviceOptions) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// WithRecencyWindow overrides the accepted age of write timestamps.
func WithRecencyWindow(window time.Duration) ServiceOption {
	return func(o *serviceOptions) {
		if window > 0 {
			o.window = window
		}
	}
}

// WithMetrics adds operation metrics
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(o *serviceOptions) {
		o.metrics = m
	}
}

// WithActorProfile resolves the full actor profile rather than just the id.
func WithActorProfile() ServiceOption {
	return func(o *serviceOptions) {
		o.actorProfile = true
	}
}

// foundationService is the add/modify/remove/retrieve/bulk pipeline shared by
// every entity. rules carries the only entity-specific behavior.
type foundationService[T any, P domain.EntityPtr[T]] struct {
	BaseService
	entity   string
	gateway  portsrepo.Gateway[T]
	clock    providers.Clock
	identity providers.IdentityProvider
	rules    FieldRules[T]
	opts     serviceOptions
}

var _ portssvc.FoundationService[domain.Decision] = (*foundationService[domain.Decision, *domain.Decision])(nil)

func newFoundationService[T any, P domain.EntityPtr[T]](
	entity string,
	gateway portsrepo.Gateway[T],
	clock providers.Clock,
	identity providers.IdentityProvider,
	rules FieldRules[T],
	options ...ServiceOption,
) *foundationService[T, P] {
	opts := serviceOptions{batchSize: DefaultBatchSize, window: DefaultRecencyWindow}
	for _, option := range options {
		option(&opts)
	}
	return &foundationService[T, P]{
		entity:   entity,
		gateway:  gateway,
		clock:    clock,
		identity: identity,
		rules:    rules,
		opts:     opts,
	}
}

func (s *foundationService[T, P]) Add(ctx context.Context, entity *T) (result *T, err error) {
	start := time.Now()
	defer func() { err = s.finish(ctx, opAdd, start, err) }()

	if entity == nil {
		return nil, nullEntity(s.entity)
	}
	actorID, err := s.currentActorID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()

	candidate := *entity
	p := P(&candidate)
	p.SetAudit(StampForAdd(p.Audit(), actorID, now))
	if err := ValidateEntity[T, P](s.entity, ModeAdd, p, s.rules, actorID, now, s.opts.window); err != nil {
		return nil, err
	}

	return s.gateway.Insert(ctx, candidate)
}

func (s *foundationService[T, P]) Modify(ctx context.Context, entity *T) (result *T, err error) {
	start := time.Now()
	defer func() { err = s.finish(ctx, opModify, start, err) }()

	if entity == nil {
		return nil, nullEntity(s.entity)
	}
	actorID, err := s.currentActorID(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()

	candidate := *entity
	p := P(&candidate)
	p.SetAudit(StampForModify(p.Audit(), actorID, now))
	if err := ValidateEntity[T, P](s.entity, ModeModify, p, s.rules, actorID, now, s.opts.window); err != nil {
		return nil, err
	}

	stored, err := s.gateway.SelectByID(ctx, p.Identity())
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if err := EnsureProvenanceUnchanged[T, P](s.entity, p, P(stored)); err != nil {
		return nil, err
	}

	return s.gateway.Update(ctx, candidate)
}

func (s *foundationService[T, P]) RemoveByID(ctx context.Context, id string) (result *T, err error) {
	start := time.Now()
	defer func() { err = s.finish(ctx, opRemoveByID, start, err) }()

	if err := invalidID(s.entity, id); err != nil {
		return nil, err
	}
	existing, err := s.selectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.gateway.Delete(ctx, *existing)
}

func (s *foundationService[T, P]) RetrieveByID(ctx context.Context, id string) (result *T, err error) {
	start := time.Now()
	defer func() { err = s.finish(ctx, opRetrieveByID, start, err) }()

	if err := invalidID(s.entity, id); err != nil {
		return nil, err
	}
	return s.selectByID(ctx, id)
}

func (s *foundationService[T, P]) RetrieveAll(ctx context.Context) (result []T, err error) {
	start := time.Now()
	defer func() { err = s.finish(ctx, opRetrieveAll, start, err) }()

	all, err := s.gateway.SelectAll(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		return []T{}, nil
	}
	return all, nil
}

func (s *foundationService[T, P]) DefaultBatchSize() int {
	return s.opts.batchSize
}

func (s *foundationService[T, P]) BulkAddOrModify(ctx context.Context, entities []T) error {
	return s.BulkAddOrModifyBatch(ctx, entities, s.opts.batchSize)
}

func (s *foundationService[T, P]) BulkAddOrModifyBatch(ctx context.Context, entities []T, batchSize int) (err error) {
	start := time.Now()
	defer func() { err = s.finish(ctx, opBulkAddOrModify, start, err) }()

	if entities == nil {
		return nullCollection(s.entity)
	}
	actorID, err := s.currentActorID(ctx)
	if err != nil {
		return err
	}

	batches := Partition(entities, batchSize)
	s.LogInfo(ctx, "Bulk upsert started",
		slog.String("entity", s.entity),
		slog.Int("candidates", len(entities)),
		slog.Int("batches", len(batches)))

	for i, batch := range batches {
		if err := s.upsertBatch(ctx, batch, actorID); err != nil {
			return fmt.Errorf("batch %d of %d: %w", i+1, len(batches), err)
		}
	}
	return nil
}

// upsertBatch reconciles one batch against a fresh storage snapshot, then
// inserts the new subset and updates the existing one.
func (s *foundationService[T, P]) upsertBatch(ctx context.Context, batch []T, actorID string) error {
	now := s.clock.Now()
	stored, err := s.gateway.SelectAll(ctx)
	if err != nil {
		return err
	}
	reconciled := Reconcile[T, P](batch, stored)

	inserts := make([]T, 0, len(reconciled.New))
	for _, candidate := range reconciled.New {
		p := P(&candidate)
		p.SetAudit(StampForAdd(p.Audit(), actorID, now))
		if err := ValidateEntity[T, P](s.entity, ModeAdd, p, s.rules, actorID, now, s.opts.window); err != nil {
			return err
		}
		inserts = append(inserts, candidate)
	}

	updates := make([]T, 0, len(reconciled.Existing))
	for _, candidate := range reconciled.Existing {
		p := P(&candidate)
		p.SetAudit(StampForModify(p.Audit(), actorID, now))
		if err := ValidateEntity[T, P](s.entity, ModeModify, p, s.rules, actorID, now, s.opts.window); err != nil {
			return err
		}
		persisted := reconciled.Stored[p.Identity()]
		if err := EnsureProvenanceUnchanged[T, P](s.entity, p, P(&persisted)); err != nil {
			return err
		}
		updates = append(updates, candidate)
	}

	if len(inserts) > 0 {
		if err := s.gateway.BulkInsert(ctx, inserts); err != nil {
			return err
		}
	}
	if len(updates) > 0 {
		if err := s.gateway.BulkUpdate(ctx, updates); err != nil {
			return err
		}
	}

	s.opts.metrics.AddBulkCandidates(s.entity, len(inserts), len(updates))
	s.LogDebug(ctx, "Bulk batch committed",
		slog.String("entity", s.entity),
		slog.Int("inserted", len(inserts)),
		slog.Int("updated", len(updates)))
	return nil
}

func (s *foundationService[T, P]) selectByID(ctx context.Context, id string) (*T, error) {
	found, err := s.gateway.SelectByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) || (err == nil && found == nil) {
		return nil, notFound(s.entity, id, err)
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *foundationService[T, P]) currentActorID(ctx context.Context) (string, error) {
	if !s.opts.actorProfile {
		return s.identity.CurrentActorID(ctx)
	}
	profile, err := s.identity.CurrentActor(ctx)
	if err != nil {
		return "", err
	}
	s.LogDebug(ctx, "Resolved actor profile",
		slog.String("actor_id", profile.ID),
		slog.String("actor_name", profile.Name),
		slog.Any("roles", profile.Roles))
	return profile.ID, nil
}

// finish classifies and logs a failure exactly once, and records the outcome.
func (s *foundationService[T, P]) finish(ctx context.Context, operation string, start time.Time, err error) error {
	if err == nil {
		s.opts.metrics.ObserveOperation(s.entity, operation, "ok", time.Since(start))
		return nil
	}
	svcErr := apperrors.Classified(s.entity, err)
	s.LogFailure(ctx, svcErr, operation)
	s.opts.metrics.ObserveOperation(s.entity, operation, svcErr.Tier.String(), time.Since(start))
	return svcErr
}
