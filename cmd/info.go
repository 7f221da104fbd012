package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqkit/parasail-go/envconfig"
	"github.com/seqkit/parasail-go/parasail"
)

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show native library version and CPU dispatch capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			major, minor, patch, err := parasail.Version()
			if err != nil {
				return err
			}
			p := cmd.OutOrStdout()
			fmt.Fprintf(p, "parasail %d.%d.%d\n", major, minor, patch)
			if envconfig.Library != "" {
				fmt.Fprintf(p, "library:  %s\n", envconfig.Library)
			}
			fmt.Fprintf(p, "avx2:     %v\n", parasail.CanUseAVX2())
			fmt.Fprintf(p, "sse4.1:   %v\n", parasail.CanUseSSE41())
			fmt.Fprintf(p, "sse2:     %v\n", parasail.CanUseSSE2())
			fmt.Fprintf(p, "altivec:  %v\n", parasail.CanUseAltivec())
			return nil
		},
	}
}
