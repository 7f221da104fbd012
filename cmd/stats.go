package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seqkit/parasail-go/format"
	"github.com/seqkit/parasail-go/parasail"
)

func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "Summarize FASTA/FASTQ files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data [][]string
			for _, path := range args {
				s, err := parasail.SequencesFromFile(path)
				if err != nil {
					return err
				}
				var size int64
				if fi, err := os.Stat(path); err == nil {
					size = fi.Size()
				}
				data = append(data, []string{
					path,
					format.HumanBytes(size),
					strconv.Itoa(s.Len()),
					format.HumanNumber(uint64(s.Characters())),
					strconv.Itoa(s.Shortest()),
					strconv.Itoa(s.Longest()),
					strconv.FormatFloat(s.Mean(), 'f', 1, 64),
					strconv.FormatFloat(s.StdDev(), 'f', 1, 64),
				})
				s.Close()
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"FILE", "SIZE", "RECORDS", "CHARS", "SHORTEST", "LONGEST", "MEAN", "STDDEV"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()

			return nil
		},
	}
}
