package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ecoroute/config"
	"github.com/kilianp07/ecoroute/core/regression"
	"github.com/kilianp07/ecoroute/infra/logger"
)

var (
	trainSamples int
	trainSeed    int64
	trainOut     string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit a linear model on the synthetic trip dataset and write the artifact",
	Args:  cobra.NoArgs,
	RunE:  runTrain,
}

func init() {
	f := trainCmd.Flags()
	f.IntVar(&trainSamples, "samples", 5000, "number of synthetic trips")
	f.Int64Var(&trainSeed, "seed", 42, "random seed")
	f.StringVarP(&trainOut, "out", "o", "", "artifact path (defaults to model.path)")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	out := trainOut
	if out == "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		out = cfg.Model.Path
	}
	log := logger.New("train-command")

	samples := regression.Synthesize(trainSamples, rand.New(rand.NewSource(trainSeed)))
	conf, err := regression.FitLinear(samples)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	if err := regression.Save(out, regression.LinearArtifact(conf)); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	log.Infof("trained on %d samples, artifact written to %s", len(samples), out)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out); err != nil {
		return err
	}
	return nil
}
