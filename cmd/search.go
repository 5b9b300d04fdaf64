package cmd

import (
	"fmt"

	"github.com/matthunz/staff/constants"
	"github.com/matthunz/staff/index"
	"github.com/matthunz/staff/util"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of results to print")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <symbol>",
	Short: "Finds a chord symbol in the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchLimit < 0 {
			return fmt.Errorf("limit must not be negative, got %v", searchLimit)
		}
		idx, err := index.Load(constants.GetIndexFile())
		if err != nil {
			return err
		}
		symbol, found, err := index.Search(idx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%v: %v matches\n", symbol, len(found))
		for _, o := range found[:util.Min(searchLimit, len(found))] {
			fmt.Fprintf(out, "%v @ %.3fs %v\n", idx.Files[o.FileNum], float32(o.Offset)/1000, o.Notes)
		}
		return nil
	},
}
