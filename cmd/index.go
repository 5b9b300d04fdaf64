package cmd

import (
	"strconv"

	"github.com/matthunz/staff/constants"
	"github.com/matthunz/staff/index"
	"github.com/matthunz/staff/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [dir] [max]",
	Short: "Indexes the chords of every MIDI file under dir",
	Long: `Indexes the chords of every MIDI file under dir (MEDIA_PATH by default)
into INDEX_PATH. max limits the number of files, 0 meaning all.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetMediaDir()
		if len(args) > 0 {
			dir = args[0]
		}
		var maxNum int
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = n
		}
		return Index(dir, maxNum)
	},
}

func Index(dir string, maxNum int) error {
	paths, err := util.GatherAllMidiPaths(dir, maxNum)
	if err != nil {
		return err
	}
	idx := index.Build(index.CreateFileNumMap(paths))
	return index.Save(constants.GetIndexFile(), idx)
}
