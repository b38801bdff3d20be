package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/tidewater-labs/chemcalc/internal/calwatch"
	"github.com/tidewater-labs/chemcalc/internal/cliconfig"
	"github.com/tidewater-labs/chemcalc/pkg/conc"
)

const helpDescription = `
Convert spectrophotometric absorbance readings to nutrient concentrations
using fitted calibration curves, with propagated measurement uncertainty.

Calibration coefficients are read from a TOML file (default
$HOME/.chemcalc/calibration.toml, or $CHEMCALC_CONFIG), and individual
values can be overridden per invocation with flags. The dilution
subcommand solves the stock-dilution identity c1*v1 = c2*v2.
`

var exampleUsage = strings.TrimSpace(`
  chemcalc silicate --abs 0.4702
  chemcalc phosphate --replicates 0.251,0.249,0.253
  chemcalc phosphate --watch < /dev/tty
  chemcalc dilution --c1 4000.65 --c2 5 --v2 50
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	log := cliconfig.Logger()
	var cfgPath string

	root := &cobra.Command{
		Use:     "chemcalc",
		Short:   "Absorbance-to-concentration conversions with uncertainty",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to calibration file (default: $HOME/.chemcalc/calibration.toml)")

	root.AddCommand(newSilicateCmd(log, &cfgPath))
	root.AddCommand(newPhosphateCmd(log, &cfgPath))
	root.AddCommand(newDilutionCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("chemcalc")
		os.Exit(1)
	}
}

// resolveConfigPath picks the calibration file path: flag, then
// environment, then the default location.
func resolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(cliconfig.EnvConfigPath); p != "" {
		return p
	}
	return cliconfig.DefaultConfigPath()
}

// loadConfig layers the calibration file and environment onto cfg,
// leaving explicitly-set flags untouched.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, path string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if path != "" && cliconfig.FileExists(path) {
		fc, err := cliconfig.LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load calibration: %w", err)
		}
		cliconfig.ApplyFileConfig(cfg, fc, changed)
	}
	return cliconfig.ApplyEnvConfig(cfg, changed)
}

func parseReplicates(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse replicate %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// resolveAbs returns the average absorbance for a one-shot conversion:
// the mean of --replicates when given, otherwise the --abs value.
func resolveAbs(cmd *cobra.Command, abs float64, replicates string, log zerolog.Logger) (float64, error) {
	if replicates != "" {
		vals, err := parseReplicates(replicates)
		if err != nil {
			return 0, err
		}
		mean, stddev, err := conc.SummarizeReplicates(vals)
		if err != nil {
			return 0, err
		}
		log.Debug().Int("n", len(vals)).Float64("mean", mean).Float64("stddev", stddev).Msg("replicate summary")
		return mean, nil
	}
	if !cmd.Flags().Changed("abs") {
		return 0, fmt.Errorf("either --abs or --replicates is required")
	}
	return abs, nil
}

func printResult(analyte string, res conc.Result) {
	fmt.Printf("%s: %.4f ± %.4f µmol/L\n", analyte, res.Conc, res.Uncertainty)
}

func newSilicateCmd(log zerolog.Logger, cfgPath *string) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		abs        float64
		replicates string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "silicate",
		Short: "Convert absorbance to silicate concentration (linear calibration)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveConfigPath(*cfgPath)
			flagBase := cfg // flag values only; reloads re-layer onto this
			if err := loadConfig(cmd, &cfg, path); err != nil {
				return err
			}
			if err := cfg.ValidateSilicate(); err != nil {
				return err
			}

			if watch {
				cur := cfg
				var mu sync.Mutex
				reload := func() error {
					next := flagBase
					if err := loadConfig(cmd, &next, path); err != nil {
						return err
					}
					if err := next.ValidateSilicate(); err != nil {
						return err
					}
					mu.Lock()
					cur = next
					mu.Unlock()
					return nil
				}
				convert := func(a float64) (conc.Result, error) {
					mu.Lock()
					c := cur
					mu.Unlock()
					return c.Silicate.Concentration(a, c.SilicateBlankScatter)
				}
				return runWatchLoop(cmd.Context(), log, path, "silicate", reload, convert)
			}

			avgAbs, err := resolveAbs(cmd, abs, replicates, log)
			if err != nil {
				return err
			}
			res, err := cfg.Silicate.Concentration(avgAbs, cfg.SilicateBlankScatter)
			if err != nil {
				return err
			}
			printResult("silicate", res)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&abs, "abs", 0, "average absorbance reading")
	f.StringVar(&replicates, "replicates", "", "comma-separated replicate absorbance readings (averaged)")
	f.Float64Var(&cfg.Silicate.Slope, "slope", cfg.Silicate.Slope, "calibration slope")
	f.Float64Var(&cfg.Silicate.Intercept, "intercept", cfg.Silicate.Intercept, "calibration y-intercept")
	f.Float64Var(&cfg.Silicate.SlopeErr, "slope-err", cfg.Silicate.SlopeErr, "standard error of the slope")
	f.Float64Var(&cfg.Silicate.InterceptErr, "intercept-err", cfg.Silicate.InterceptErr, "standard error of the intercept")
	f.Float64Var(&cfg.SilicateBlankScatter, "blank-scatter", cfg.SilicateBlankScatter, "standard deviation of blank absorbance")
	f.BoolVar(&watch, "watch", false, "read absorbances from stdin, reloading the calibration file on change")
	return cmd
}

func newPhosphateCmd(log zerolog.Logger, cfgPath *string) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		abs        float64
		replicates string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "phosphate",
		Short: "Convert absorbance to phosphate concentration (quadratic calibration)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveConfigPath(*cfgPath)
			flagBase := cfg
			if err := loadConfig(cmd, &cfg, path); err != nil {
				return err
			}
			if err := cfg.ValidatePhosphate(); err != nil {
				return err
			}

			if watch {
				cur := cfg
				var mu sync.Mutex
				reload := func() error {
					next := flagBase
					if err := loadConfig(cmd, &next, path); err != nil {
						return err
					}
					if err := next.ValidatePhosphate(); err != nil {
						return err
					}
					mu.Lock()
					cur = next
					mu.Unlock()
					return nil
				}
				convert := func(a float64) (conc.Result, error) {
					mu.Lock()
					c := cur
					mu.Unlock()
					return c.Phosphate.Concentration(a, c.PhosphateBlankScatter)
				}
				return runWatchLoop(cmd.Context(), log, path, "phosphate", reload, convert)
			}

			avgAbs, err := resolveAbs(cmd, abs, replicates, log)
			if err != nil {
				return err
			}
			res, err := cfg.Phosphate.Concentration(avgAbs, cfg.PhosphateBlankScatter)
			if err != nil {
				return err
			}
			printResult("phosphate", res)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&abs, "abs", 0, "average absorbance reading")
	f.StringVar(&replicates, "replicates", "", "comma-separated replicate absorbance readings (averaged)")
	f.Float64Var(&cfg.Phosphate.A, "coef-a", cfg.Phosphate.A, "quadratic coefficient a")
	f.Float64Var(&cfg.Phosphate.B, "coef-b", cfg.Phosphate.B, "quadratic coefficient b")
	f.Float64Var(&cfg.Phosphate.C, "coef-c", cfg.Phosphate.C, "quadratic coefficient c")
	f.Float64Var(&cfg.PhosphateBlankScatter, "blank-scatter", cfg.PhosphateBlankScatter, "standard deviation of blank absorbance")
	f.BoolVar(&watch, "watch", false, "read absorbances from stdin, reloading the calibration file on change")
	return cmd
}

func newDilutionCmd() *cobra.Command {
	var c1, v1, c2, v2 float64

	cmd := &cobra.Command{
		Use:   "dilution",
		Short: "Solve the dilution identity c1*v1 = c2*v2 for the omitted variable",
		Long: strings.TrimSpace(`
Solve the stock-dilution identity c1*v1 = c2*v2. Supply exactly three of
--c1 --v1 --c2 --v2 and the fourth is solved for. Concentrations must
share units, as must volumes.`),
		Example: "  chemcalc dilution --c1 4000.65 --c2 5 --v2 50",
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := func(name string, v *float64) *float64 {
				if cmd.Flags().Changed(name) {
					return v
				}
				return nil
			}

			solved, val, err := conc.SolveDilution(
				opt("c1", &c1), opt("v1", &v1), opt("c2", &c2), opt("v2", &v2))
			if err != nil {
				return err
			}
			fmt.Printf("%s = %.6g\n", solved, val)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&c1, "c1", 0, "stock concentration")
	f.Float64Var(&v1, "v1", 0, "stock (spike) volume")
	f.Float64Var(&c2, "c2", 0, "diluted concentration")
	f.Float64Var(&v2, "v2", 0, "diluted volume")
	return cmd
}

// runWatchLoop converts absorbances read one per line from stdin while
// calwatch refreshes the calibration in the background. Exits on EOF,
// SIGINT, or SIGTERM.
func runWatchLoop(parent context.Context, log zerolog.Logger, path, analyte string, reload func() error, convert func(float64) (conc.Result, error)) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := calwatch.New(path, reload, log)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := w.Run(ctx); err != nil {
			log.Error().Err(err).Msg("calibration watcher stopped")
		}
	}()

	log.Info().Str("analyte", analyte).Str("calibration", path).Msg("watch mode: one absorbance per line, ctrl-d to exit")

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			stop()
			wg.Wait()
			return nil
		case line, ok := <-lines:
			if !ok {
				stop()
				wg.Wait()
				return nil
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			a, err := strconv.ParseFloat(text, 64)
			if err != nil {
				log.Warn().Str("input", text).Msg("not a number")
				continue
			}
			res, err := convert(a)
			if err != nil {
				log.Error().Err(err).Float64("abs", a).Msg("conversion failed")
				continue
			}
			printResult(analyte, res)
		}
	}
}
