package cmd

import (
	"fmt"

	"github.com/matthunz/staff/midi"
	"github.com/matthunz/staff/sonority"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <file.mid>",
	Short: "Names every chord held in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		sonorities, err := sonority.Extract(parsed)
		if err != nil {
			return err
		}
		for _, so := range sonorities {
			if !sonority.Nameable(so) {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%8.3fs  %-12v %v\n", float32(so.Offset)/1000, sonority.Name(so), so.Notes)
		}
		return nil
	},
}
