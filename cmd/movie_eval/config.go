package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/movie-hunter/pkg/utils"
)

const (
	modeEval = "eval"
	modePool = "pool"
)

type cliConfig struct {
	SuitePath string
	Profiles  string
	KValues   string
	MaxK      int
	Warmup    int
	Runs      int
	Output    string
	Mode      string
}

func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs.StringVar(&cfg.SuitePath, "suite", "testdata/eval/movies_v1.yaml", "Path to the judged query suite YAML")
	fs.StringVar(&cfg.Profiles, "profiles", "", "Ranking profile YAML files to compare, comma-separated (empty: built-in profile)")
	fs.StringVar(&cfg.KValues, "k", "1,3,5", "K values for metrics, comma-separated")
	fs.IntVar(&cfg.MaxK, "max-k", 10, "Number of ranked results scored per query")
	fs.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	fs.IntVar(&cfg.Runs, "runs", 1, "Number of measured iterations per query")
	fs.StringVar(&cfg.Output, "output", "", "Output path: JSON report in eval mode, pool YAML in pool mode")
	fs.StringVar(&cfg.Mode, "mode", modeEval, "Run mode: eval or pool")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	switch cfg.Mode {
	case modeEval:
	case modePool:
		if cfg.Output == "" {
			return cliConfig{}, fmt.Errorf("pool mode requires -output")
		}
	default:
		return cliConfig{}, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return cfg, nil
}

func (c cliConfig) parseKValues() ([]int, error) {
	parts := utils.SplitList(c.KValues, ",")
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one k value is required")
	}

	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid k value %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("k value must be positive, got %d", v)
		}
		if v > c.MaxK {
			return nil, fmt.Errorf("k value %d exceeds max-k %d", v, c.MaxK)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (c cliConfig) profilePaths() []string {
	return utils.SplitList(c.Profiles, ",")
}
