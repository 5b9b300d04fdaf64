package cmd

import (
	"fmt"

	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/pitch"
	"github.com/spf13/cobra"
)

var (
	nameRoot string
	nameAll  bool
)

func init() {
	nameCmd.Flags().StringVar(&nameRoot, "root", "", "root note, defaults to the first note")
	nameCmd.Flags().BoolVar(&nameAll, "all", false, "print a reading for every note as the root")
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:     "name <note>...",
	Short:   "Names the chord formed by notes, lowest first",
	Example: "  staff name E3 G3 C4 --root C4\n  staff name 60 64 67 --all",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := nameNotes(args, nameRoot, nameAll)
		if err != nil {
			return err
		}
		for _, c := range chords {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func parseNotes(args []string) ([]pitch.MidiNote, error) {
	notes := make([]pitch.MidiNote, 0, len(args))
	for _, arg := range args {
		n, err := pitch.ParseMidiNote(arg)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func nameNotes(args []string, root string, all bool) ([]chord.Chord, error) {
	notes, err := parseNotes(args)
	if err != nil {
		return nil, err
	}
	if all {
		return chord.Chords(notes), nil
	}

	r := notes[0]
	if root != "" {
		if r, err = pitch.ParseMidiNote(root); err != nil {
			return nil, err
		}
	}
	c, ok := chord.FromMIDI(r, notes)
	if !ok {
		return nil, fmt.Errorf("no notes given")
	}
	return []chord.Chord{c}, nil
}
