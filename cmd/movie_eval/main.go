package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/pool"
	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/report"
	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/runner"
	"github.com/DjordjeVuckovic/movie-hunter/internal/eval/suite"
	"github.com/DjordjeVuckovic/movie-hunter/internal/ranking"
	"github.com/DjordjeVuckovic/movie-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/movie-hunter/pkg/config/env"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/movie_eval/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, storageCfg, os.Stdout); err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, storageCfg *factory.StorageConfig, out io.Writer) error {
	kValues, err := cfg.parseKValues()
	if err != nil {
		return err
	}

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		return err
	}

	candidates, err := loadCandidates(cfg.profilePaths())
	if err != nil {
		return err
	}

	backend, err := factory.NewBackend(ctx, storageCfg)
	if err != nil {
		return fmt.Errorf("failed to create search backend: %w", err)
	}
	defer backend.Close()

	r := runner.New(runner.Config{
		KValues:            kValues,
		MaxK:               cfg.MaxK,
		RelevanceThreshold: runner.DefaultRelevanceThreshold,
		WarmupRuns:         cfg.Warmup,
		Runs:               max(cfg.Runs, 1),
	})

	result, err := r.Run(ctx, s, backend, candidates)
	if err != nil {
		return err
	}

	if cfg.Mode == modePool {
		if err := pool.Write(pool.Build(s, result, cfg.MaxK), cfg.Output); err != nil {
			return err
		}
		slog.Info("Pool file written", "path", cfg.Output)
		return nil
	}

	rpt := report.Generate(result, string(storageCfg.Type))
	if err := report.WriteTable(rpt, out); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			return err
		}
		slog.Info("Report written", "path", cfg.Output)
	}
	return nil
}

// loadCandidates names each candidate after its profile version.
func loadCandidates(paths []string) ([]runner.Candidate, error) {
	if len(paths) == 0 {
		p := ranking.Default()
		return []runner.Candidate{{Name: p.Version, Profile: p}}, nil
	}

	candidates := make([]runner.Candidate, 0, len(paths))
	for _, path := range paths {
		p, err := ranking.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load profile %s: %w", path, err)
		}
		candidates = append(candidates, runner.Candidate{Name: p.Version, Profile: p})
	}
	return candidates, nil
}
