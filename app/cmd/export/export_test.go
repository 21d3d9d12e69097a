package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ribgsilva/note-board/business/v1/note"
	persistence "github.com/ribgsilva/note-board/persistence/v1/note"
	"github.com/ribgsilva/note-board/persistence/v1/slot"
	"github.com/ribgsilva/note-board/sys"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
	"gopkg.in/yaml.v3"
)

// seeded returns an opener over a memory bucket holding records
func seeded(t *testing.T, records []persistence.Record) Opener {
	t.Helper()
	sys.R.Log = zap.NewNop().Sugar()
	sys.Configs.Storage.SlotKey = persistence.DefaultSlotKey

	bucket := memblob.OpenBucket(nil)
	s := slot.NewBucket(bucket, time.Second)
	a := persistence.NewAdapter(zap.NewNop().Sugar(), s, persistence.DefaultSlotKey)
	require.NoError(t, a.Save(context.Background(), records))

	return func(*cobra.Command) (slot.Slot, error) {
		return s, nil
	}
}

var records = []persistence.Record{
	{Id: 3, Title: "Groceries", Content: "Milk, eggs", Color: note.ColorYellow, Date: "2024-11-14"},
	{Id: 4, Title: "Call Bob", Content: "re: taxes", Color: note.ColorBlue, Date: "2024-11-14"},
	{Id: 1, Title: "Old", Content: "from before", Color: note.ColorGreen, Date: "2024-10-01"},
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNotesCommand_JSON(t *testing.T) {
	out, err := run(t, NotesCommand(seeded(t, records)))
	require.NoError(t, err)

	var got []note.Note
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	require.Equal(t, "Groceries", got[0].Title)
	require.Equal(t, int64(1), got[2].Id)
}

func TestNotesCommand_YAML(t *testing.T) {
	out, err := run(t, NotesCommand(seeded(t, records)), "--format", "yaml")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	require.Equal(t, "Call Bob", got[1]["title"])
}

func TestNotesCommand_UnknownFormat(t *testing.T) {
	_, err := run(t, NotesCommand(seeded(t, records)), "--format", "xml")
	require.Error(t, err)
}

func TestChartCommand(t *testing.T) {
	out, err := run(t, ChartCommand(seeded(t, records)))
	require.NoError(t, err)
	require.Equal(t, "2024-11-14\t2\n2024-10-01\t1\n", out)
}

func TestChartCommand_EmptySlot(t *testing.T) {
	out, err := run(t, ChartCommand(seeded(t, nil)))
	require.NoError(t, err)
	require.Empty(t, out)
}
