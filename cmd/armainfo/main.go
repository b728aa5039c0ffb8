// Command armainfo prints the derived representations of an ARMA process:
// spectral density, autocovariances, impulse response, and simulated paths.
//
// The process is described either inline via --phi/--theta/--sigma or by
// naming a preset (built-in or from a YAML file given with --config).
//
// Examples:
//
//	armainfo impulse --phi 0.5 --theta 0,-0.8 --horizon 10
//	armainfo spectrum --preset ar1 --plot
//	armainfo simulate --preset arma12 --seed 7 --horizon 200 --plot
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-arma/arma"
	"github.com/cwbudde/algo-arma/autocov"
	"github.com/cwbudde/algo-arma/config"
	"github.com/cwbudde/algo-arma/sim"
	"github.com/cwbudde/algo-arma/spectral"
	"github.com/cwbudde/algo-arma/stats"
	"github.com/cwbudde/algo-arma/wold"
)

var (
	phiFlag    string
	thetaFlag  string
	sigmaFlag  float64
	presetFlag string
	configFlag string

	resolution int
	oneSided   bool
	lagCount   int
	horizon    int
	impulseLen int
	seed       int64
	plot       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "armainfo",
		Short: "characterize a scalar ARMA(p,q) process",
	}

	rootCmd.PersistentFlags().StringVar(&phiFlag, "phi", "", "AR coefficients, comma separated")
	rootCmd.PersistentFlags().StringVar(&thetaFlag, "theta", "", "MA coefficients, comma separated")
	rootCmd.PersistentFlags().Float64Var(&sigmaFlag, "sigma", 1, "innovation standard deviation")
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "", "named process preset")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "YAML file with process presets")
	rootCmd.PersistentFlags().BoolVar(&plot, "plot", false, "render an ASCII plot")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "print the power spectral density",
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().IntVar(&resolution, "res", spectral.DefaultResolution, "frequency samples")
	spectrumCmd.Flags().BoolVar(&oneSided, "one-sided", false, "restrict the grid to [0, pi)")

	autocovCmd := &cobra.Command{
		Use:   "autocov",
		Short: "print the autocovariance sequence",
		RunE:  runAutocov,
	}
	autocovCmd.Flags().IntVar(&lagCount, "lags", autocov.DefaultLagCount, "number of lags")

	impulseCmd := &cobra.Command{
		Use:   "impulse",
		Short: "print the impulse-response coefficients",
		RunE:  runImpulse,
	}
	impulseCmd.Flags().IntVar(&impulseLen, "horizon", wold.DefaultHorizon, "coefficient count")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "sample a realization of the process",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&horizon, "horizon", sim.DefaultHorizon, "path length")
	simulateCmd.Flags().IntVar(&impulseLen, "impulse-horizon", sim.DefaultImpulseHorizon, "convolution kernel length")
	simulateCmd.Flags().Int64Var(&seed, "seed", 1, "noise seed")

	rootCmd.AddCommand(spectrumCmd, autocovCmd, impulseCmd, simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildProcess resolves the process description from flags or presets.
func buildProcess() (*arma.Process, error) {
	if presetFlag != "" {
		cfg := config.Default()
		if configFlag != "" {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}

		def, err := cfg.Get(presetFlag)
		if err != nil {
			return nil, err
		}
		return def.Build()
	}

	phi, err := parseCoeffs(phiFlag)
	if err != nil {
		return nil, fmt.Errorf("parsing --phi: %w", err)
	}

	theta, err := parseCoeffs(thetaFlag)
	if err != nil {
		return nil, fmt.Errorf("parsing --theta: %w", err)
	}

	opts := []arma.Option{arma.WithNoiseScale(sigmaFlag)}
	if len(theta) > 0 {
		opts = append(opts, arma.WithMA(theta...))
	}
	return arma.New(phi, opts...)
}

// parseCoeffs parses a comma-separated coefficient list.
func parseCoeffs(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func describe(proc *arma.Process) {
	fmt.Printf("ARMA(%d,%d)  phi=%v  theta=%v  sigma=%v\n\n", proc.P(), proc.Q(), proc.AR(), proc.MA(), proc.NoiseScale())
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	proc, err := buildProcess()
	if err != nil {
		return err
	}

	opts := []spectral.Option{spectral.WithResolution(resolution)}
	if oneSided {
		opts = append(opts, spectral.WithOneSided())
	}

	freqs, dens, err := spectral.Density(proc, opts...)
	if err != nil {
		return err
	}

	describe(proc)

	if plot {
		fmt.Println(asciigraph.Plot(dens,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("spectral density"),
		))
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "w\tf(w)")
	step := len(freqs) / 16
	if step < 1 {
		step = 1
	}
	for i := 0; i < len(freqs); i += step {
		fmt.Fprintf(tw, "%.4f\t%.6g\n", freqs[i], dens[i])
	}
	return tw.Flush()
}

func runAutocov(cmd *cobra.Command, args []string) error {
	proc, err := buildProcess()
	if err != nil {
		return err
	}

	acov, err := autocov.Autocovariance(proc, autocov.WithLagCount(lagCount))
	if err != nil {
		return err
	}

	describe(proc)

	if plot {
		fmt.Println(asciigraph.Plot(acov,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("autocovariance"),
		))
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "lag\tgamma")
	for k, v := range acov {
		fmt.Fprintf(tw, "%d\t%.6g\n", k, v)
	}
	return tw.Flush()
}

func runImpulse(cmd *cobra.Command, args []string) error {
	proc, err := buildProcess()
	if err != nil {
		return err
	}

	psi, err := wold.Coefficients(proc, wold.WithHorizon(impulseLen))
	if err != nil {
		return err
	}

	describe(proc)

	if plot {
		fmt.Println(asciigraph.Plot(psi,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("impulse response"),
		))
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "lag\tpsi")
	for j, v := range psi {
		fmt.Fprintf(tw, "%d\t%.6g\n", j, v)
	}
	return tw.Flush()
}

func runSimulate(cmd *cobra.Command, args []string) error {
	proc, err := buildProcess()
	if err != nil {
		return err
	}

	path, err := sim.Simulate(proc, sim.NewGaussian(seed),
		sim.WithHorizon(horizon),
		sim.WithImpulseHorizon(impulseLen),
	)
	if err != nil {
		return err
	}

	describe(proc)

	if plot {
		fmt.Println(asciigraph.Plot(path,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("simulated path"),
		))
	}

	s := stats.Summarize(path)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "samples\t%d\n", s.Length)
	fmt.Fprintf(tw, "mean\t%.6g\n", s.Mean)
	fmt.Fprintf(tw, "variance\t%.6g\n", s.Variance)
	fmt.Fprintf(tw, "min\t%.6g\n", s.Min)
	fmt.Fprintf(tw, "max\t%.6g\n", s.Max)
	return tw.Flush()
}
