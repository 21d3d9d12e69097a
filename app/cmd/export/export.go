// Package export prints the stored note collection and its chart.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ribgsilva/note-board/business/v1/note"
	persistence "github.com/ribgsilva/note-board/persistence/v1/note"
	"github.com/ribgsilva/note-board/persistence/v1/slot"
	"github.com/ribgsilva/note-board/sys"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Opener returns the slot the commands read from
type Opener func(cmd *cobra.Command) (slot.Slot, error)

// NotesCommand prints every stored note
func NotesCommand(open Opener) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closer, err := load(cmd, open)
			if err != nil {
				return err
			}
			defer closer()
			return write(cmd.OutOrStdout(), format, store.All())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

// ChartCommand prints the number of notes per day
func ChartCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the number of notes created per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closer, err := load(cmd, open)
			if err != nil {
				return err
			}
			defer closer()
			for _, p := range store.Chart() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.Date, p.Count)
			}
			return nil
		},
	}
}

func load(cmd *cobra.Command, open Opener) (*note.Store, func(), error) {
	log := sys.R.Log
	s, err := open(cmd)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := s.Close(); err != nil {
			log.Errorf("could not close slot gracefully: %s", err)
		}
	}

	store := note.NewStore(log, persistence.NewAdapter(log, s, sys.Configs.Storage.SlotKey))
	store.Initialize(cmd.Context())
	return store, closer, nil
}

func write(w io.Writer, format string, notes []note.Note) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(notes)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
