package cmd

import (
	"github.com/matthunz/staff/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staff",
	Short: "Names chords from notes and notes from chords",
	Long: `staff infers chord symbols (Cm7, Gm/C, Em/C(no5)) from MIDI notes,
parses chord symbols back into notes, and indexes chords found in MIDI files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(constants.GetLogLevel())
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
