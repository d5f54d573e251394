//go:build integration

package pgsql_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	"github.com/SscSPs/patient_decisions_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/patient_decisions_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
	ctx       context.Context
	created   time.Time
}

func (suite *RepositoryIntegrationSuite) SetupSuite() {
	suite.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := tcpostgres.Run(suite.ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("patient_decisions"),
		tcpostgres.WithUsername("pd"),
		tcpostgres.WithPassword("pd"),
		tcpostgres.BasicWaitStrategies(),
	)
	suite.Require().NoError(err)
	suite.container = container

	url, err := container.ConnectionString(suite.ctx, "sslmode=disable")
	suite.Require().NoError(err)

	migrations, err := filepath.Abs("../../../../migrations")
	suite.Require().NoError(err)
	suite.Require().NoError(database.RunMigrations(url, "file://"+migrations, database.MigrateUp, logger))

	suite.pool, err = database.NewPgxPool(suite.ctx, url, logger)
	suite.Require().NoError(err)
	suite.repos = pgsql.NewRepositoryProvider(suite.pool)
	suite.created = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (suite *RepositoryIntegrationSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		_ = suite.container.Terminate(suite.ctx)
	}
}

func (suite *RepositoryIntegrationSuite) SetupTest() {
	_, err := suite.pool.Exec(suite.ctx, `TRUNCATE consumer_adoptions, decisions, decision_types;`)
	suite.Require().NoError(err)
}

func (suite *RepositoryIntegrationSuite) audit() domain.AuditFields {
	return domain.AuditFields{
		CreatedBy:   "creator",
		CreatedDate: suite.created,
		UpdatedBy:   "creator",
		UpdatedDate: suite.created,
	}
}

func (suite *RepositoryIntegrationSuite) decisionType(id string) domain.DecisionType {
	return domain.DecisionType{ID: id, Name: "Research opt-out", AuditFields: suite.audit()}
}

func (suite *RepositoryIntegrationSuite) decision(id, typeID string) domain.Decision {
	return domain.Decision{
		ID:               id,
		PatientNhsNumber: "9434765919",
		DecisionTypeID:   typeID,
		DecisionChoice:   "opt-out",
		AuditFields:      suite.audit(),
	}
}

func (suite *RepositoryIntegrationSuite) TestInsertSelectRoundTrip() {
	inserted, err := suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-1"))
	suite.Require().NoError(err)
	suite.True(inserted.CreatedDate.Equal(suite.created))

	_, err = suite.repos.DecisionRepo.Insert(suite.ctx, suite.decision("d-1", "dt-1"))
	suite.Require().NoError(err)

	adoption := domain.ConsumerAdoption{
		ID:           "ca-1",
		ConsumerID:   "gp-system",
		DecisionID:   "d-1",
		AdoptionDate: suite.created.Add(time.Minute),
		AuditFields:  suite.audit(),
	}
	_, err = suite.repos.ConsumerAdoptionRepo.Insert(suite.ctx, adoption)
	suite.Require().NoError(err)

	found, err := suite.repos.ConsumerAdoptionRepo.SelectByID(suite.ctx, "ca-1")
	suite.Require().NoError(err)
	suite.Equal("gp-system", found.ConsumerID)
	suite.True(found.AdoptionDate.Equal(adoption.AdoptionDate))

	all, err := suite.repos.DecisionRepo.SelectAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *RepositoryIntegrationSuite) TestInsertDuplicate() {
	_, err := suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-1"))
	suite.Require().NoError(err)

	_, err = suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-1"))

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *RepositoryIntegrationSuite) TestInsertBrokenReference() {
	_, err := suite.repos.DecisionRepo.Insert(suite.ctx, suite.decision("d-1", "missing-type"))

	suite.ErrorIs(err, apperrors.ErrInvalidReference)
}

func (suite *RepositoryIntegrationSuite) TestSelectMissing() {
	_, err := suite.repos.DecisionTypeRepo.SelectByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryIntegrationSuite) TestUpdateNeverRewritesCreation() {
	_, err := suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-1"))
	suite.Require().NoError(err)

	changed := suite.decisionType("dt-1")
	changed.Name = "Planning opt-out"
	changed.CreatedBy = "someone-else"
	changed.UpdatedBy = "actor-1"
	changed.UpdatedDate = suite.created.Add(time.Hour)

	updated, err := suite.repos.DecisionTypeRepo.Update(suite.ctx, changed)

	suite.Require().NoError(err)
	suite.Equal("Planning opt-out", updated.Name)
	suite.Equal("creator", updated.CreatedBy)
	suite.Equal("actor-1", updated.UpdatedBy)
}

func (suite *RepositoryIntegrationSuite) TestUpdateLockedRow() {
	_, err := suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-1"))
	suite.Require().NoError(err)

	tx, err := suite.pool.Begin(suite.ctx)
	suite.Require().NoError(err)
	defer func() { _ = tx.Rollback(suite.ctx) }()
	_, err = tx.Exec(suite.ctx, `SELECT id FROM decision_types WHERE id = 'dt-1' FOR UPDATE;`)
	suite.Require().NoError(err)

	_, err = suite.repos.DecisionTypeRepo.Update(suite.ctx, suite.decisionType("dt-1"))

	suite.ErrorIs(err, apperrors.ErrLocked)
}

func (suite *RepositoryIntegrationSuite) TestDelete() {
	_, err := suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-1"))
	suite.Require().NoError(err)

	removed, err := suite.repos.DecisionTypeRepo.Delete(suite.ctx, suite.decisionType("dt-1"))

	suite.Require().NoError(err)
	suite.Equal("dt-1", removed.ID)
	_, err = suite.repos.DecisionTypeRepo.SelectByID(suite.ctx, "dt-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryIntegrationSuite) TestBulkInsertAndUpdate() {
	types := []domain.DecisionType{suite.decisionType("dt-1"), suite.decisionType("dt-2"), suite.decisionType("dt-3")}
	suite.Require().NoError(suite.repos.DecisionTypeRepo.BulkInsert(suite.ctx, types))

	for i := range types {
		types[i].Name = "renamed"
		types[i].UpdatedBy = "actor-1"
		types[i].UpdatedDate = suite.created.Add(time.Hour)
	}
	suite.Require().NoError(suite.repos.DecisionTypeRepo.BulkUpdate(suite.ctx, types))

	all, err := suite.repos.DecisionTypeRepo.SelectAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	for _, dt := range all {
		suite.Equal("renamed", dt.Name)
		suite.Equal("creator", dt.CreatedBy)
	}
}

func (suite *RepositoryIntegrationSuite) TestBulkInsertDuplicateRollsBack() {
	_, err := suite.repos.DecisionTypeRepo.Insert(suite.ctx, suite.decisionType("dt-2"))
	suite.Require().NoError(err)

	err = suite.repos.DecisionTypeRepo.BulkInsert(suite.ctx,
		[]domain.DecisionType{suite.decisionType("dt-1"), suite.decisionType("dt-2")})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	all, err := suite.repos.DecisionTypeRepo.SelectAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *RepositoryIntegrationSuite) TestBulkUpdateMissingRow() {
	suite.Require().NoError(suite.repos.DecisionTypeRepo.BulkInsert(suite.ctx,
		[]domain.DecisionType{suite.decisionType("dt-1")}))

	err := suite.repos.DecisionTypeRepo.BulkUpdate(suite.ctx,
		[]domain.DecisionType{suite.decisionType("dt-1"), suite.decisionType("dt-9")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}
