package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"linear_collections/src/harness"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var errScenariosFailed = errors.New("some scenarios failed")

var rootCmd = &cobra.Command{
	Use:   "adtcheck",
	Short: "Check Stack and Deque against scripted scenarios",
	Long: `adtcheck replays YAML scenarios against the Stack and Deque containers
and their reference models, and generates random scenarios.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Replay scenario files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd.OutOrStdout(), logger, args)
	},
}

var genOpts struct {
	kind   string
	name   string
	steps  int
	seed   uint64
	mean   float64
	stddev float64
	out    string
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random scenario",
	Long: `Generate a random scenario whose expectations come from the reference model.

When --steps is negative, the length is drawn from a normal distribution
with --mean and --stddev.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := generate(logger)
		if err != nil {
			return err
		}
		if genOpts.out == "" {
			return sc.Write(cmd.OutOrStdout())
		}
		return writeFile(genOpts.out, sc)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every replayed step")

	genCmd.Flags().StringVar(&genOpts.kind, "kind", string(harness.KindStack), "Container kind: stack or deque")
	genCmd.Flags().StringVar(&genOpts.name, "name", "", "Scenario name (default: <kind>-<seed>)")
	genCmd.Flags().IntVar(&genOpts.steps, "steps", -1, "Number of steps (negative: random length)")
	genCmd.Flags().Uint64Var(&genOpts.seed, "seed", 1, "Random seed")
	genCmd.Flags().Float64Var(&genOpts.mean, "mean", 50, "Mean number of steps when --steps is negative")
	genCmd.Flags().Float64Var(&genOpts.stddev, "stddev", 15, "Standard deviation of the number of steps when --steps is negative")
	genCmd.Flags().StringVarP(&genOpts.out, "out", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(runCmd, genCmd)
}

func runScenarios(w io.Writer, logger *zap.Logger, paths []string) error {
	failed := false
	for _, p := range paths {
		sc, err := harness.LoadScenarioFile(p)
		if err != nil {
			logger.Error("cannot load scenario, skipping", zap.String("path", p), zap.Error(err))
			failed = true
			continue
		}

		report, err := harness.Replay(sc, logger)
		if err != nil {
			logger.Error("cannot replay scenario, skipping", zap.String("path", p), zap.Error(err))
			failed = true
			continue
		}

		logger.Info(
			"scenario replayed",
			zap.String("path", p),
			zap.String("scenario", report.Scenario),
			zap.String("kind", string(report.Kind)),
			zap.Int("steps", report.Steps),
			zap.Int("failures", len(report.Failures)),
		)
		if report.OK() {
			fmt.Fprintf(w, "PASS %s (%d steps)\n", p, report.Steps)
			continue
		}
		failed = true
		fmt.Fprintf(w, "FAIL %s\n", p)
		for _, f := range report.Failures {
			fmt.Fprintf(w, "\t%v\n", f)
		}
	}
	if failed {
		return errScenariosFailed
	}
	return nil
}

func generate(logger *zap.Logger) (*harness.Scenario, error) {
	rng := harness.NewRand(genOpts.seed)
	kind := harness.Kind(genOpts.kind)

	steps := genOpts.steps
	if steps < 0 {
		steps = rng.Length(genOpts.mean, genOpts.stddev, 1, 1000)
	}
	name := genOpts.name
	if name == "" {
		name = fmt.Sprintf("%s-%d", kind, rng.Seed())
	}

	sc, err := harness.Generate(rng, kind, name, steps)
	if err != nil {
		return nil, err
	}
	logger.Info("scenario generated", zap.String("scenario", name), zap.Int("steps", steps))
	return sc, nil
}

// writeFile creates path only once sc is ready, so a failed generation
// never truncates an existing file.
func writeFile(path string, sc *harness.Scenario) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return sc.Write(f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
