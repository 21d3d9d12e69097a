package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ribgsilva/note-board/app/cmd/export"
	"github.com/ribgsilva/note-board/app/cmd/schema"
	"github.com/ribgsilva/note-board/persistence/v1/slot"
	"github.com/ribgsilva/note-board/platform/logger"
	"github.com/ribgsilva/note-board/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

func main() {
	if err := newRoot().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	// empty logger unless -v
	sys.R.Log = zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:           "noteboard",
		Short:         "Administration commands of the note board storage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				log, err := logger.New("Note-Board-Cmd")
				if err != nil {
					return err
				}
				sys.R.Log = log
			}
			sys.LoadStorage(sys.R.Log)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout")

	open := func(cmd *cobra.Command) (slot.Slot, error) {
		return slot.Open(cmd.Context(), sys.R.Log)
	}

	root.AddCommand(schema.Command())
	root.AddCommand(export.NotesCommand(open))
	root.AddCommand(export.ChartCommand(open))
	return root
}
