package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	"github.com/SscSPs/patient_decisions_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/services"
	"github.com/SscSPs/patient_decisions_app/internal/dto"
	"github.com/SscSPs/patient_decisions_app/internal/middleware"
	"github.com/SscSPs/patient_decisions_app/internal/platform/clock"
	"github.com/SscSPs/patient_decisions_app/internal/platform/config"
	"github.com/SscSPs/patient_decisions_app/internal/platform/identity"
	"github.com/SscSPs/patient_decisions_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/patient_decisions_app/internal/repositories/memory"
	"github.com/SscSPs/patient_decisions_app/pkg/database"
	"github.com/spf13/cobra"
)

const (
	kindConsumerAdoptions = "consumer-adoptions"
	kindDecisionTypes     = "decision-types"
	kindDecisions         = "decisions"
)

func newImportCmd() *cobra.Command {
	var (
		file      string
		batchSize int
		actor     string
	)

	cmd := &cobra.Command{
		Use:       "import <consumer-adoptions|decision-types|decisions>",
		Short:     "Bulk add or modify records from a JSON file",
		ValidArgs: []string{kindConsumerAdoptions, kindDecisionTypes, kindDecisions},
		Long: `Read a JSON array of records and upsert it through the bulk pipeline.
Records whose id already exists are modified, the rest are added. Batches
committed before a failure stay committed.`,
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if batchSize <= 0 {
				batchSize = cfg.BulkBatchSize
			}
			return runImport(cmd.Context(), args[0], file, batchSize, actor)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file to import, - for stdin (required)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Records per batch (defaults to BULK_BATCH_SIZE)")
	cmd.Flags().StringVar(&actor, "actor", "", "Actor id recorded in the audit fields (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("actor")

	return cmd
}

func runImport(ctx context.Context, kind, file string, batchSize int, actor string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = middleware.WithLogger(ctx, log.With(slog.String("actor_id", actor)))

	in, err := openInput(file)
	if err != nil {
		return err
	}
	defer in.Close()

	repos, closeRepos, err := openRepositories(ctx)
	if err != nil {
		return err
	}
	defer closeRepos()

	container := services.NewServiceContainer(cfg, repos, clock.System{}, identity.NewStatic(actor), nil)

	start := time.Now()
	var count int
	switch kind {
	case kindConsumerAdoptions:
		count, err = importRecords[domain.ConsumerAdoption, dto.ConsumerAdoptionRequest](ctx, in, container.ConsumerAdoption, batchSize)
	case kindDecisionTypes:
		count, err = importRecords[domain.DecisionType, dto.DecisionTypeRequest](ctx, in, container.DecisionType, batchSize)
	case kindDecisions:
		count, err = importRecords[domain.Decision, dto.DecisionRequest](ctx, in, container.Decision, batchSize)
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d %s in %s\n", count, kind, time.Since(start).Round(time.Millisecond))
	return nil
}

// importRecords decodes a JSON array of R and bulk upserts it.
func importRecords[T any, R interface{ ToDomain() T }](
	ctx context.Context,
	in io.Reader,
	svc portssvc.BulkWriterSvc[T],
	batchSize int,
) (int, error) {
	var requests []R
	if err := json.NewDecoder(in).Decode(&requests); err != nil {
		return 0, fmt.Errorf("decoding input: %w", err)
	}
	if requests == nil {
		requests = []R{}
	}

	entities := make([]T, 0, len(requests))
	for _, req := range requests {
		entities = append(entities, req.ToDomain())
	}
	if err := svc.BulkAddOrModifyBatch(ctx, entities, batchSize); err != nil {
		return 0, err
	}
	return len(entities), nil
}

func openInput(file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	return f, nil
}

func openRepositories(ctx context.Context) (repositories.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("Importing into in-memory storage; records are discarded on exit")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool, log) }, nil
}
