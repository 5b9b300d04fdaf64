package cmd

import (
	"fmt"
	"strings"

	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(exportCmd)
}

var notesCmd = &cobra.Command{
	Use:     "notes <symbol>",
	Short:   "Prints the notes of a chord symbol",
	Example: "  staff notes Cm7\n  staff notes 'Em/C(no5)'",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(args[0])
		if err != nil {
			return err
		}
		var names []string
		for _, n := range c.Notes() {
			names = append(names, n.String())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", c, strings.Join(names, " "))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <symbol> <file.mid>",
	Short: "Writes a chord symbol as a MIDI file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(args[0])
		if err != nil {
			return err
		}
		return midi.WriteChordFile(args[1], c)
	},
}
