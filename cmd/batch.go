package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/export"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/fetcher"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/resolver"
)

var (
	batchInput  string
	batchOutput string
	batchMode   string
	batchLimit  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Resolve a spreadsheet of company names",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		records, extraHeaders, err := fetcher.ReadInput(batchInput)
		if err != nil {
			return err
		}

		env, err := buildResolvers(cfg)
		if err != nil {
			return err
		}
		res, err := env.pickResolver(batchMode)
		if err != nil {
			return err
		}

		results, err := processBatch(ctx, records, batchLimit, res)
		if err != nil {
			return err
		}

		return export.WriteResults(batchOutput, extraHeaders, results)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "input spreadsheet (.xlsx or .csv)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "CorpNorm_Output.xlsx", "output file (.xlsx or .csv)")
	batchCmd.Flags().StringVar(&batchMode, "mode", "free", "resolution mode: free or premium")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of records to process (0 = all)")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

// processBatch resolves records one at a time. Search backends throttle per
// client, so sequential processing keeps the engine inside their budgets;
// cancellation stops between records and returns what finished so far.
func processBatch(ctx context.Context, records []model.RawRecord, limit int, res resolver.Resolver) ([]model.OutputRecord, error) {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("processing batch", zap.Int("records", len(records)))
	start := time.Now()

	results := make([]model.OutputRecord, 0, len(records))
	for i, rec := range records {
		if ctx.Err() != nil {
			log.Warn("batch cancelled", zap.Int("completed", len(results)))
			return results, eris.Wrap(ctx.Err(), "batch cancelled")
		}

		out := res.Resolve(ctx, rec)
		results = append(results, out)

		log.Info("record resolved",
			zap.Int("index", i+1),
			zap.Int("total", len(records)),
			zap.String("raw_name", rec.RawName),
			zap.String("website", out.Website),
			zap.String("confidence", out.ConfidenceScore),
		)
	}

	log.Info("batch complete",
		zap.Int("records", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}
