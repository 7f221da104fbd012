package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seqkit/parasail-go/envconfig"
	"github.com/seqkit/parasail-go/format"
	"github.com/seqkit/parasail-go/parasail"
)

func NewAlignCmd() *cobra.Command {
	var (
		matrixName string
		algorithm  string
		mode       string
		strategy   string
		width      int
		open       int
		extend     int
		queryFile  string
		refFile    string
	)

	cmd := &cobra.Command{
		Use:   "align [QUERY] [REF]",
		Short: "Align two sequences",
		Long: `Align two sequences given as arguments, or read from FASTA/FASTQ files
with --query-file and --ref-file (the first record of each is used).`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, ref, err := resolveSequences(args, queryFile, refFile)
			if err != nil {
				return err
			}

			cfg, err := parseConfig(algorithm, mode, strategy, width)
			if err != nil {
				return err
			}

			m, err := openMatrix(matrixName)
			if err != nil {
				return err
			}
			defer m.Close()

			start := time.Now()
			r, err := parasail.Align(cfg, query, ref, open, extend, m)
			if err != nil {
				return err
			}
			defer r.Close()
			elapsed := time.Since(start)

			p := cmd.OutOrStdout()
			fmt.Fprintf(p, "score:     %d\n", r.Score())
			fmt.Fprintf(p, "end_query: %d\n", r.EndQuery())
			fmt.Fprintf(p, "end_ref:   %d\n", r.EndRef())
			if r.Saturated() {
				fmt.Fprintln(p, "saturated: true (retry with a wider lane width)")
			}
			if matches, err := r.Matches(); err == nil {
				similar, _ := r.Similar()
				length, _ := r.Length()
				fmt.Fprintf(p, "matches:   %d\n", matches)
				fmt.Fprintf(p, "similar:   %d\n", similar)
				fmt.Fprintf(p, "length:    %d\n", length)
			}
			if c, err := r.Cigar(); err == nil {
				fmt.Fprintf(p, "cigar:     %s\n", c.Decode())
				fmt.Fprintf(p, "beg_query: %d\n", c.BegQuery())
				fmt.Fprintf(p, "beg_ref:   %d\n", c.BegRef())
			}
			cells := uint64(len(query)) * uint64(len(ref))
			fmt.Fprintf(p, "throughput: %s in %v\n", format.HumanCUPS(cells, elapsed), elapsed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&matrixName, "matrix", "m", "", "Substitution matrix name or file (default $PARASAIL_MATRIX or blosum62)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "nw", "Alignment algorithm: nw, sg or sw")
	cmd.Flags().StringVar(&mode, "mode", "score", "Output mode: score, stats, table, stats_table, rowcol, stats_rowcol or trace")
	cmd.Flags().StringVar(&strategy, "strategy", "striped", "Vectorization strategy: serial, scan, striped or diag")
	cmd.Flags().IntVar(&width, "width", 16, "SIMD lane width: 8, 16, 32, 64, or 0 for saturation fallback")
	cmd.Flags().IntVar(&open, "open", envconfig.GapOpen, "Gap open penalty")
	cmd.Flags().IntVar(&extend, "extend", envconfig.GapExtend, "Gap extend penalty")
	cmd.Flags().StringVar(&queryFile, "query-file", "", "Read the query from a FASTA/FASTQ file")
	cmd.Flags().StringVar(&refFile, "ref-file", "", "Read the reference from a FASTA/FASTQ file")

	return cmd
}

func resolveSequences(args []string, queryFile, refFile string) (query, ref string, err error) {
	next := 0
	pick := func(file string) (string, error) {
		if file != "" {
			s, err := parasail.SequencesFromFile(file)
			if err != nil {
				return "", err
			}
			defer s.Close()
			rec, err := s.Get(0)
			if err != nil {
				return "", fmt.Errorf("%s: no records", file)
			}
			return rec.Seq(), nil
		}
		if next < len(args) {
			next++
			return args[next-1], nil
		}
		return "", fmt.Errorf("missing sequence: pass QUERY and REF arguments or --query-file/--ref-file")
	}
	if query, err = pick(queryFile); err != nil {
		return "", "", err
	}
	if ref, err = pick(refFile); err != nil {
		return "", "", err
	}
	return query, ref, nil
}

func parseConfig(algorithm, mode, strategy string, width int) (parasail.Config, error) {
	var cfg parasail.Config

	switch algorithm {
	case "nw":
		cfg.Algorithm = parasail.Global
	case "sg":
		cfg.Algorithm = parasail.SemiGlobal
	case "sw":
		cfg.Algorithm = parasail.Local
	default:
		return cfg, fmt.Errorf("unknown algorithm %q", algorithm)
	}

	switch mode {
	case "score":
		cfg.Mode = parasail.Score
	case "stats":
		cfg.Mode = parasail.Stats
	case "table":
		cfg.Mode = parasail.ModeTable
	case "stats_table":
		cfg.Mode = parasail.StatsTable
	case "rowcol":
		cfg.Mode = parasail.Rowcol
	case "stats_rowcol":
		cfg.Mode = parasail.StatsRowcol
	case "trace":
		cfg.Mode = parasail.Trace
	default:
		return cfg, fmt.Errorf("unknown mode %q", mode)
	}

	switch strategy {
	case "serial":
		cfg.Strategy = parasail.Serial
		return cfg, nil
	case "scan":
		cfg.Strategy = parasail.Scan
	case "striped":
		cfg.Strategy = parasail.Striped
	case "diag":
		cfg.Strategy = parasail.Diag
	default:
		return cfg, fmt.Errorf("unknown strategy %q", strategy)
	}

	switch width {
	case 0:
		cfg.Width = parasail.WidthSat
	case 8:
		cfg.Width = parasail.Width8
	case 16:
		cfg.Width = parasail.Width16
	case 32:
		cfg.Width = parasail.Width32
	case 64:
		cfg.Width = parasail.Width64
	default:
		return cfg, fmt.Errorf("unknown lane width %d", width)
	}
	return cfg, nil
}
