package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqkit/parasail-go/envconfig"
	"github.com/seqkit/parasail-go/logutil"
	"github.com/seqkit/parasail-go/parasail"
	"github.com/seqkit/parasail-go/version"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "parasail",
		Short: "Pairwise sequence alignment with SIMD acceleration",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			level := slog.LevelInfo
			if envconfig.Debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(logutil.NewLogger(os.Stderr, level))
		},
		Version: version.Version,
	}

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewAlignCmd(),
		NewMatricesCmd(),
		NewStatsCmd(),
		NewInfoCmd(),
	)

	return rootCmd
}

// openMatrix resolves a matrix flag value, falling back to the
// PARASAIL_MATRIX default.
func openMatrix(name string) (*parasail.Matrix, error) {
	if name == "" {
		name = envconfig.Matrix
	}
	m, err := parasail.NewMatrix(name)
	if err != nil {
		return nil, fmt.Errorf("resolving matrix %q: %w", name, err)
	}
	return m, nil
}
