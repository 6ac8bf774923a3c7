package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"weightscope/internal/testkit"
)

// genweights writes synthetic weight files for exercising the analyzer
// without a simulation run.
func main() {
	rootCmd := &cobra.Command{
		Use:   "genweights",
		Short: "Generate synthetic weight files for analyzer testing",
	}

	rootCmd.AddCommand(newBinaryCmd(), newTextCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newBinaryCmd() *cobra.Command {
	var (
		dir     string
		name    string
		count   int
		seed    int64
		uniform float64
		mean    float64
		spread  float64
	)

	cmd := &cobra.Command{
		Use:   "binary",
		Short: "Write a packed binary weight file",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := makeValues(cmd, count, seed, uniform, mean, spread)
			path := filepath.Join(dir, name)
			if err := testkit.WriteBinaryFile(path, values); err != nil {
				return err
			}
			fmt.Printf("Wrote %d weights to %s\n", len(values), path)
			return nil
		},
	}

	addCommonFlags(cmd, &dir, &count, &seed, &uniform, &mean, &spread)
	cmd.Flags().StringVar(&name, "name", "synthetic_weights.bin", "Output file name")

	return cmd
}

func newTextCmd() *cobra.Command {
	var (
		dir     string
		name    string
		count   int
		seed    int64
		uniform float64
		mean    float64
		spread  float64
	)

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Write a delimited text weight file with labeled connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := makeValues(cmd, count, seed, uniform, mean, spread)
			records := testkit.LabeledRecords(values,
				"cortical_pyramidal", "cortical_interneuron", "dopaminergic")
			path := filepath.Join(dir, name)
			if err := testkit.WriteTextFile(path, records); err != nil {
				return err
			}
			fmt.Printf("Wrote %d weights to %s\n", len(records), path)
			return nil
		},
	}

	addCommonFlags(cmd, &dir, &count, &seed, &uniform, &mean, &spread)
	cmd.Flags().StringVar(&name, "name", "synthetic_weights.txt", "Output file name")

	return cmd
}

func addCommonFlags(cmd *cobra.Command, dir *string, count *int, seed *int64, uniform, mean, spread *float64) {
	cmd.Flags().StringVar(dir, "dir", ".", "Output directory")
	cmd.Flags().IntVar(count, "count", 1000, "Number of weights to write")
	cmd.Flags().Int64Var(seed, "seed", 42, "Random seed")
	cmd.Flags().Float64Var(uniform, "uniform", 0, "Write this exact value for every weight (degenerate fixture)")
	cmd.Flags().Float64Var(mean, "mean", 0.4, "Mean of generated weights")
	cmd.Flags().Float64Var(spread, "spread", 0.15, "Standard deviation of generated weights")
}

func makeValues(cmd *cobra.Command, count int, seed int64, uniform, mean, spread float64) []float64 {
	if cmd.Flags().Changed("uniform") {
		return testkit.UniformValues(count, uniform)
	}
	return testkit.New(seed).DiverseValues(count, mean, spread)
}
