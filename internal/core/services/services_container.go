package services

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/platform/config"
	"github.com/SscSPs/patient_decisions_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	clock providers.Clock,
	identity providers.IdentityProvider,
	m *metrics.Metrics,
) *portssvc.ServiceContainer {
	options := []ServiceOption{
		WithBatchSize(cfg.BulkBatchSize),
		WithRecencyWindow(cfg.RecencyWindow),
		WithMetrics(m),
	}

	return &portssvc.ServiceContainer{
		ConsumerAdoption: NewConsumerAdoptionService(repos.ConsumerAdoptionRepo, clock, identity, options...),
		DecisionType:     NewDecisionTypeService(repos.DecisionTypeRepo, clock, identity, options...),
		Decision:         NewDecisionService(repos.DecisionRepo, clock, identity, options...),
	}
}
