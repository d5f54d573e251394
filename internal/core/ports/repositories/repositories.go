package repositories

import "github.com/SscSPs/patient_decisions_app/internal/core/domain"

// ConsumerAdoptionRepositoryFacade is the storage gateway for consumer adoptions.
type ConsumerAdoptionRepositoryFacade interface {
	Gateway[domain.ConsumerAdoption]
}

// DecisionTypeRepositoryFacade is the storage gateway for decision types.
type DecisionTypeRepositoryFacade interface {
	Gateway[domain.DecisionType]
}

// DecisionRepositoryFacade is the storage gateway for decisions.
type DecisionRepositoryFacade interface {
	Gateway[domain.Decision]
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ConsumerAdoptionRepo ConsumerAdoptionRepositoryFacade
	DecisionTypeRepo     DecisionTypeRepositoryFacade
	DecisionRepo         DecisionRepositoryFacade
}
