package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/constants"
	"github.com/matthunz/staff/pitch"
	"github.com/matthunz/staff/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gm "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", constants.GetMidiPort(), "MIDI input port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI input until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return listen(ctx, cmd.OutOrStdout(), listenPort, constants.GetDebounce())
	},
}

// heldNotes tracks the keys currently down. The MIDI callback and the
// debounced reporter run on different goroutines.
type heldNotes struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeldNotes() *heldNotes {
	return &heldNotes{keys: make(map[uint8]bool)}
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

// chord reads the held keys with the lowest as root.
func (h *heldNotes) chord() (chord.Chord, bool) {
	h.mu.Lock()
	keys := util.GetSortedKeys(h.keys)
	h.mu.Unlock()

	if len(keys) < constants.MinSonoritySize {
		return chord.Chord{}, false
	}
	notes := make([]pitch.MidiNote, len(keys))
	for i, k := range keys {
		notes[i] = pitch.MidiNote(k)
	}
	return chord.FromNotes(notes), true
}

// handle applies one message and reports whether the held keys changed.
func (h *heldNotes) handle(msg gm.Message) bool {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.press(key)
	case msg.GetNoteEnd(&ch, &key):
		h.release(key)
	default:
		return false
	}
	return true
}

func listen(ctx context.Context, out io.Writer, port int, wait time.Duration) error {
	defer gm.CloseDriver()
	in, err := gm.InPort(port)
	if err != nil {
		return fmt.Errorf("can't find MIDI input port %v: %w", port, err)
	}

	held := newHeldNotes()
	debounced := debounce.New(wait)
	report := func() {
		if c, ok := held.chord(); ok {
			fmt.Fprintln(out, c)
		}
	}

	stopListening, err := gm.ListenTo(in, func(msg gm.Message, timestampms int32) {
		if held.handle(msg) {
			debounced(report)
		}
	})
	if err != nil {
		return err
	}
	logrus.WithField("port", in.String()).Info("Listening")

	<-ctx.Done()
	stopListening()
	return nil
}
