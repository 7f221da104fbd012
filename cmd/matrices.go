package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seqkit/parasail-go/parasail"
)

func NewMatricesCmd() *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:     "matrices",
		Aliases: []string{"mat"},
		Short:   "List built-in substitution matrices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if show != "" {
				return showMatrix(show)
			}

			var data [][]string
			for _, name := range parasail.BuiltinMatrices() {
				m, err := parasail.MatrixLookup(name)
				if err != nil {
					return err
				}
				data = append(data, []string{
					name,
					strconv.Itoa(m.Size()),
					strconv.Itoa(m.Min()),
					strconv.Itoa(m.Max()),
				})
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"NAME", "SIZE", "MIN", "MAX"})
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

	cmd.Flags().StringVar(&show, "show", "", "Print the full score table of one matrix")

	return cmd
}

func showMatrix(name string) error {
	m, err := parasail.NewMatrix(name)
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Printf("%s (%dx%d, min %d, max %d)\n", m.Name(), m.Size(), m.Size(), m.Min(), m.Max())
	for _, row := range m.Values() {
		for _, v := range row {
			fmt.Printf("%4d", v)
		}
		fmt.Println()
	}
	return nil
}
